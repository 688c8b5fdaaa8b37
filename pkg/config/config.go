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

// Package config loads adapter configuration from JSON files with an
// optional .env overlay for local development.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var errInvalidConfigPtr = errors.New("config must be a non-nil pointer")

// Validator is implemented by config structs that can check themselves
// after loading. Validation failures are fatal at construction; no
// component attempts to run with partial configuration.
type Validator interface {
	Validate() error
}

// Load reads the JSON file at path into cfg without validating it.
// Useful when values are overlaid from the environment before the
// owning component validates at construction.
func Load(path string, cfg any) error {
	if cfg == nil {
		return errInvalidConfigPtr
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return nil
}

// LoadAndValidate reads the JSON file at path into cfg and, when cfg
// implements Validator, validates it. cfg must be a non-nil pointer.
func LoadAndValidate(path string, cfg any) error {
	if err := Load(path, cfg); err != nil {
		return err
	}

	if v, ok := cfg.(Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", path, err)
		}
	}

	return nil
}

// LoadEnv overlays variables from the given .env files (default ".env")
// onto the process environment. A missing file is not an error.
func LoadEnv(files ...string) error {
	if err := godotenv.Overload(files...); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return err
	}

	return nil
}
