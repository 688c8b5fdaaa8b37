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
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecryptConfigEntry_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext string
	}{
		{name: "short value", plaintext: "abc"},
		{name: "block sized value", plaintext: "12345678"},
		{name: "long value", plaintext: "a-client-id-with-some-length-to-it"},
		{name: "empty value", plaintext: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encrypted := encryptConfigEntry(t, tt.plaintext, testKey, testIV)

			decrypted, err := decryptConfigEntry(encrypted, testKey, testIV)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, decrypted)
		})
	}
}

func TestDecryptConfigEntry_Failures(t *testing.T) {
	valid := encryptConfigEntry(t, "abc", testKey, testIV)

	tests := []struct {
		name  string
		value string
		key   string
		iv    string
	}{
		{name: "invalid base64", value: "%%%not-base64%%%", key: testKey, iv: testIV},
		{name: "empty ciphertext", value: "", key: testKey, iv: testIV},
		{name: "truncated ciphertext", value: base64.StdEncoding.EncodeToString([]byte("abc")), key: testKey, iv: testIV},
		{name: "short iv", value: valid, key: testKey, iv: "short"},
		{name: "empty key", value: valid, key: "", iv: testIV},
		{name: "padding byte zero", value: encryptRaw(t, []byte("1234567\x00")), key: testKey, iv: testIV},
		{name: "padding byte too large", value: encryptRaw(t, []byte("1234567\x09")), key: testKey, iv: testIV},
		{name: "padding bytes disagree", value: encryptRaw(t, []byte("123456\x02\x03")), key: testKey, iv: testIV},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decryptConfigEntry(tt.value, tt.key, tt.iv)
			require.ErrorIs(t, err, errDecryptFailed)
		})
	}
}
