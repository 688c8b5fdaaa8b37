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
	"crypto/rand"
	"encoding/base64"
	"regexp"
)

const (
	identityByteLen = 17
	identityLen     = 22
)

// identityPattern is the shape of a valid install id: base64url, 22
// characters, first character forced into c-f by the nibble mask below.
var identityPattern = regexp.MustCompile(`^[cdef][\w-]{21}$`)

// generateDeviceIdentity produces a pseudo-random client instance id
// mimicking the mobile SDK's install-id format: 17 random bytes with
// the high nibble of the first byte forced to 0111, base64url encoded
// and truncated to 22 characters.
//
// On any failure it returns the empty string. The empty sentinel is
// non-fatal by contract; callers pass it along and let the remote
// config step fail on its own terms.
func generateDeviceIdentity() string {
	buf := make([]byte, identityByteLen)
	if _, err := rand.Read(buf); err != nil {
		return ""
	}

	buf[0] = 0x70 | (buf[0] & 0x0f)

	id := base64.RawURLEncoding.EncodeToString(buf)
	if len(id) < identityLen {
		return ""
	}

	id = id[:identityLen]
	if !identityPattern.MatchString(id) {
		return ""
	}

	return id
}
