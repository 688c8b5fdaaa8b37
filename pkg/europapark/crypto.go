/*
 * Copyright 2026 the tp-api authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package europapark

import (
	"crypto/cipher"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/blowfish"
)

// decryptConfigEntry decodes one base64 remote-config value and
// decrypts it with Blowfish in CBC mode under the configured key/IV,
// stripping PKCS#5 padding. Every malformed input path returns a
// wrapped errDecryptFailed; partial plaintext is never returned.
func decryptConfigEntry(value, key, iv string) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base64: %w", errDecryptFailed, err)
	}

	block, err := blowfish.NewCipher([]byte(key))
	if err != nil {
		return "", fmt.Errorf("%w: %w", errDecryptFailed, err)
	}

	if len(iv) != blowfish.BlockSize {
		return "", fmt.Errorf("%w: iv must be %d bytes", errDecryptFailed, blowfish.BlockSize)
	}

	if len(ciphertext) == 0 || len(ciphertext)%blowfish.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext length %d not a multiple of block size",
			errDecryptFailed, len(ciphertext))
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, []byte(iv)).CryptBlocks(plaintext, ciphertext)

	unpadded, err := stripPKCS5(plaintext)
	if err != nil {
		return "", err
	}

	return string(unpadded), nil
}

func stripPKCS5(data []byte) ([]byte, error) {
	pad := int(data[len(data)-1])
	if pad < 1 || pad > blowfish.BlockSize || pad > len(data) {
		return nil, fmt.Errorf("%w: bad padding", errDecryptFailed)
	}

	for _, b := range data[len(data)-pad:] {
		if int(b) != pad {
			return nil, fmt.Errorf("%w: bad padding", errDecryptFailed)
		}
	}

	return data[:len(data)-pad], nil
}
