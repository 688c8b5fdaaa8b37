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

	"github.com/AlexVV13/tp-api-sub000/pkg/cache"
)

const (
	// Remote-config entry names carrying the encrypted credentials.
	configEntryClientID     = "oauth_client_id"
	configEntryClientSecret = "oauth_client_secret"

	grantClientCredentials = "client_credentials"
)

// fetchRemoteConfig issues one remote-configuration request carrying
// the device identity plus the fixed app identifiers and decrypts the
// two credential entries. Network and decryption failures propagate
// unchanged; there is no fallback and no partial credential set.
func (a *Adapter) fetchRemoteConfig(ctx context.Context, identity string) (Credentials, error) {
	reqBody, err := json.Marshal(remoteConfigRequest{
		AppInstanceID: identity,
		AppID:         a.cfg.AppID,
		PackageName:   a.cfg.PackageName,
		LanguageCode:  "en",
	})
	if err != nil {
		return Credentials{}, err
	}

	url := fmt.Sprintf("%s/v1/projects/%s/namespaces/firebase:fetch?key=%s",
		a.cfg.ConfigURL, a.cfg.ProjectID, a.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return Credentials{}, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return Credentials{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return Credentials{}, fmt.Errorf("%w: %d, response: %s", errUnexpectedStatusCode,
			resp.StatusCode, string(bodyBytes))
	}

	var configResp remoteConfigResponse

	if err := json.NewDecoder(resp.Body).Decode(&configResp); err != nil {
		return Credentials{}, err
	}

	clientID, err := a.decryptEntry(configResp.Entries, configEntryClientID)
	if err != nil {
		return Credentials{}, err
	}

	clientSecret, err := a.decryptEntry(configResp.Entries, configEntryClientSecret)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		GrantType:    grantClientCredentials,
	}, nil
}

func (a *Adapter) decryptEntry(entries map[string]string, name string) (string, error) {
	value, ok := entries[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", errConfigEntryMissing, name)
	}

	return decryptConfigEntry(value, a.cfg.EncryptionKey, a.cfg.EncryptionIV)
}

// getConfig returns the decrypted vendor credentials, serving them from
// the scoped cache for up to six hours.
func (a *Adapter) getConfig(ctx context.Context) (Credentials, error) {
	return cache.Wrap(ctx, a.store, scopeRemoteConfig, "credentials", remoteConfigTTL,
		func(ctx context.Context) (Credentials, error) {
			identity := a.getDeviceIdentity(ctx)

			return a.fetchRemoteConfig(ctx, identity)
		})
}
