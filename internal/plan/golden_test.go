package plan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Every YAML document under testdata/plans compiles and must match its
// golden SAQL output. Regenerate with:
//
//	go test ./internal/plan -update
func TestGolden_CompiledPlans(t *testing.T) {
	entries, err := os.ReadDir("testdata/plans")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		t.Run(name, func(t *testing.T) {
			raw, err := os.ReadFile(filepath.Join("testdata/plans", entry.Name()))
			require.NoError(t, err)

			var doc Document
			require.NoError(t, yaml.Unmarshal(raw, &doc))

			s, err := Compile(&doc)
			require.NoError(t, err)

			g.Assert(t, name, []byte(s.String()))
		})
	}
}
