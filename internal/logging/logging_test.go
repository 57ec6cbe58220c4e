// This file is part of llama - https://github.com/Renelvon/llama
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Renelvon/llama/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, zerolog.InfoLevel, true)
	log.Debug().Msg("hidden")
	log.Info().Int("n", 4).Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "n=4")
	assert.Contains(t, out, "app=llamart")
}

func TestDisabled(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, zerolog.Disabled, true)
	log.Error().Msg("nothing")
	assert.Zero(t, buf.Len())
}

func TestFileNoColor(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "log"))
	require.NoError(t, err)
	defer f.Close()

	log := logging.New(f, zerolog.InfoLevel, false)
	log.Info().Msg("plain")
	require.NoError(t, f.Sync())

	b, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(b), "plain")
	assert.NotContains(t, string(b), "\x1b[")
}
