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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blowfish"
)

const (
	testKey = "s3cr3t-t3st-k3y"
	testIV  = "abcdefgh"

	testClientID     = "abc"
	testClientSecret = "def"
	testAccessToken  = "test-access-token"
)

func testConfig(baseURL string) Config {
	if baseURL == "" {
		baseURL = "http://unused.invalid"
	}

	return Config{
		BaseURL:       baseURL,
		ConfigURL:     baseURL,
		AppID:         "1:23456:android:abcdef",
		PackageName:   "com.example.park",
		APIKey:        "test-api-key",
		ProjectID:     "test-project",
		EncryptionKey: testKey,
		EncryptionIV:  testIV,
	}
}

func newTestAdapter(t *testing.T, cfg Config, opts ...Option) *Adapter {
	t.Helper()

	adapter, err := New(cfg, opts...)
	require.NoError(t, err)

	return adapter
}

// encryptConfigEntry is the inverse of decryptConfigEntry, used to
// build remote-config fixtures.
func encryptConfigEntry(t *testing.T, plaintext, key, iv string) string {
	t.Helper()

	block, err := blowfish.NewCipher([]byte(key))
	require.NoError(t, err)

	pad := blowfish.BlockSize - len(plaintext)%blowfish.BlockSize
	padded := []byte(plaintext)

	for i := 0; i < pad; i++ {
		padded = append(padded, byte(pad))
	}

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, []byte(iv)).CryptBlocks(ciphertext, padded)

	return base64.StdEncoding.EncodeToString(ciphertext)
}

// encryptRaw encrypts a pre-padded block sequence as-is, used to build
// fixtures with deliberately broken padding.
func encryptRaw(t *testing.T, padded []byte) string {
	t.Helper()

	require.Zero(t, len(padded)%blowfish.BlockSize)

	block, err := blowfish.NewCipher([]byte(testKey))
	require.NoError(t, err)

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, []byte(testIV)).CryptBlocks(ciphertext, padded)

	return base64.StdEncoding.EncodeToString(ciphertext)
}

// vendorServer is a fake of the whole vendor API surface: remote
// config, login, POIs, waiting times and seasons. Counters track how
// often each upstream resource was actually hit.
type vendorServer struct {
	*httptest.Server

	configCalls  atomic.Int32
	loginCalls   atomic.Int32
	poiCalls     atomic.Int32
	queueCalls   atomic.Int32
	seasonsCalls atomic.Int32

	pois         []poiEntity
	waitingTimes []waitingTime
	seasons      []season
}

func newVendorServer(t *testing.T) *vendorServer {
	t.Helper()

	vs := &vendorServer{}

	mux := http.NewServeMux()

	mux.HandleFunc("/v1/projects/test-project/namespaces/firebase:fetch",
		func(w http.ResponseWriter, r *http.Request) {
			vs.configCalls.Add(1)

			var req remoteConfigRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.NotEmpty(t, req.AppID)

			writeJSON(t, w, remoteConfigResponse{
				State: "UPDATE",
				Entries: map[string]string{
					configEntryClientID:     encryptConfigEntry(t, testClientID, testKey, testIV),
					configEntryClientSecret: encryptConfigEntry(t, testClientSecret, testKey, testIV),
					"unrelated_flag":        "true",
				},
			})
		})

	mux.HandleFunc("/api/v1/login", func(w http.ResponseWriter, r *http.Request) {
		vs.loginCalls.Add(1)

		var creds Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))

		if creds.ClientID != testClientID || creds.ClientSecret != testClientSecret ||
			creds.GrantType != "client_credentials" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		writeJSON(t, w, accessTokenResponse{
			AccessToken: testAccessToken,
			TokenType:   "Bearer",
			ExpiresIn:   3600,
		})
	})

	authed := func(next func(w http.ResponseWriter, r *http.Request)) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer "+testAccessToken {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next(w, r)
		}
	}

	mux.HandleFunc("/api/v1/pois/", authed(func(w http.ResponseWriter, _ *http.Request) {
		vs.poiCalls.Add(1)
		writeJSON(t, w, poiResponse{POIs: vs.pois})
	}))

	mux.HandleFunc("/api/v1/waitingtimes", authed(func(w http.ResponseWriter, _ *http.Request) {
		vs.queueCalls.Add(1)
		writeJSON(t, w, waitingTimesResponse{WaitingTimes: vs.waitingTimes})
	}))

	mux.HandleFunc("/api/v1/seasons/", authed(func(w http.ResponseWriter, _ *http.Request) {
		vs.seasonsCalls.Add(1)
		writeJSON(t, w, seasonsResponse{Seasons: vs.seasons})
	}))

	vs.Server = httptest.NewServer(mux)
	t.Cleanup(vs.Close)

	return vs
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func intPtr(v int) *int { return &v }
