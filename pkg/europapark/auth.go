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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// getAccessToken trades the decrypted credentials for a bearer token.
// Tokens are deliberately never cached: every authenticated call pays
// for a fresh login. Callers batching several authenticated requests
// into one logical operation should obtain the token once and reuse it
// within that operation; invoking this in a tight loop is a known
// rate-limit risk.
func (a *Adapter) getAccessToken(ctx context.Context) (string, error) {
	creds, err := a.getConfig(ctx)
	if err != nil {
		return "", err
	}

	reqBody, err := json.Marshal(creds)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		a.cfg.BaseURL+"/api/v1/login", bytes.NewReader(reqBody))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: %d, response: %s", errUnexpectedStatusCode,
			resp.StatusCode, string(bodyBytes))
	}

	var tokenResp accessTokenResponse

	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", err
	}

	if tokenResp.AccessToken == "" {
		return "", errAuthFailed
	}

	return "Bearer " + tokenResp.AccessToken, nil
}
