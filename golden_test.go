/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package caseid

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type endpoint struct {
	Host string          `yaml:"host"`
	Port int             `yaml:"port"`
	Tags []string        `yaml:"tags"`
	Opts map[string]bool `yaml:"opts"`
	Note string          `yaml:"note"`
}

type goldenRow struct {
	Name   string   `yaml:"name"`
	Record endpoint `yaml:"record"`
	Want   string   `yaml:"want"`
}

func loadGolden(t *testing.T, path string) []goldenRow {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var rows []goldenRow
	require.NoError(t, yaml.Unmarshal(data, &rows))
	require.NotEmpty(t, rows)
	return rows
}

func TestIdentify_Golden(t *testing.T) {
	restoreDefaults(t)

	for _, row := range loadGolden(t, "testdata/identifiers.yaml") {
		t.Run(row.Name, func(t *testing.T) {
			got, err := Identify(row.Record)
			require.NoError(t, err)
			assert.Equal(t, row.Want, got)
		})
	}
}

func TestPrepare_Golden(t *testing.T) {
	captureLog(t, zerolog.Disabled)

	rows := loadGolden(t, "testdata/identifiers.yaml")
	cases := make([]*Case[endpoint], len(rows))
	for i, row := range rows {
		cases[i] = Wrap(row.Record)
	}

	keys, entries, err := Prepare(cases)
	require.NoError(t, err)
	assert.Equal(t, "Host, Port, Tags, Opts, Note", keys)
	for i, e := range entries {
		assert.Equal(t, rows[i].Want, e.Name)
	}
}
