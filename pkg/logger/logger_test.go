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

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_DefaultConfig(t *testing.T) {
	log, err := NewLogger(Config{})
	require.NoError(t, err)
	require.NotNil(t, log)
}

func TestNewLogger_ParsesLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		_, err := NewLogger(Config{Level: level})
		assert.NoError(t, err, "level %q should parse", level)
	}
}

func TestNewLogger_RejectsUnknownLevel(t *testing.T) {
	_, err := NewLogger(Config{Level: "chatty"})
	require.Error(t, err)
}

func TestNewTestLogger_Discards(t *testing.T) {
	log := NewTestLogger()

	// Must not panic or write anywhere.
	log.Info().Str("key", "value").Msg("dropped")
	log.Error().Msg("dropped")

	component := log.WithComponent("test")
	component.Debug().Msg("dropped")
}
