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
	"fmt"
	"time"
)

// Cache TTLs for the credential pipeline. The identity TTL mirrors the
// vendor's own install-id rotation; re-deriving identities faster risks
// vendor-side throttling, so it must not be lowered as a tuning knob.
const (
	identityTTL     = 8 * 24 * time.Hour
	remoteConfigTTL = 6 * time.Hour

	defaultPOICacheHours = 12
	defaultHTTPTimeout   = 15 * time.Second
)

// Config carries every externally supplied value the adapter family
// needs. All string fields are opaque to this package; provenance and
// secret handling are the caller's concern.
type Config struct {
	// BaseURL is the root of the mobile-app API.
	BaseURL string `json:"base_url"`
	// ConfigURL is the root of the remote-configuration service.
	ConfigURL string `json:"config_url"`
	// AppID and PackageName identify the mobile app build.
	AppID       string `json:"app_id"`
	PackageName string `json:"package_name"`
	// APIKey authorizes remote-config fetches; ProjectID scopes them.
	APIKey    string `json:"api_key"`
	ProjectID string `json:"project_id"`
	// EncryptionKey and EncryptionIV decrypt the credential entries of
	// the remote-config response.
	EncryptionKey string `json:"encryption_key"`
	EncryptionIV  string `json:"encryption_iv"`
	// POICacheHours bounds how long built POI maps are served from
	// cache. Zero selects the default of 12 hours.
	POICacheHours int `json:"poi_cache_hours"`
}

// Validate checks that every required value is present. Called at
// adapter construction; a failure here is fatal and nothing runs with
// partial configuration.
func (c *Config) Validate() error {
	required := map[string]string{
		"base_url":       c.BaseURL,
		"config_url":     c.ConfigURL,
		"app_id":         c.AppID,
		"package_name":   c.PackageName,
		"api_key":        c.APIKey,
		"project_id":     c.ProjectID,
		"encryption_key": c.EncryptionKey,
		"encryption_iv":  c.EncryptionIV,
	}

	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%w: %s", errMissingConfig, name)
		}
	}

	return nil
}

// poiTTL returns the configured POI cache duration.
func (c *Config) poiTTL() time.Duration {
	hours := c.POICacheHours
	if hours <= 0 {
		hours = defaultPOICacheHours
	}

	return time.Duration(hours) * time.Hour
}
