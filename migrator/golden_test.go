package migrator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goldenConfigForPath(path string) Config {
	cfg := Config{}

	base := filepath.Base(path)
	if strings.Contains(base, "_preview") {
		cfg.MediaPreview = true
	}
	if strings.Contains(base, "_classless_leave") {
		cfg.ClasslessFigures = ClasslessLeave
	}

	return cfg
}

func TestGoldenFiles(t *testing.T) {
	inputs, err := filepath.Glob(filepath.Join("testdata", "*.html"))
	require.NoError(t, err)

	count := 0
	for _, input := range inputs {
		if strings.HasSuffix(input, ".golden.html") {
			continue
		}
		count++

		t.Run(filepath.Base(input), func(t *testing.T) {
			source, err := os.ReadFile(input)
			require.NoError(t, err)
			expected, err := os.ReadFile(strings.TrimSuffix(input, ".html") + ".golden.html")
			require.NoError(t, err)

			m := newTestMigrator(t, goldenConfigForPath(input))
			result := m.Migrate(string(source))
			assert.Equal(t, string(expected), result.HTML)

			again := m.Migrate(result.HTML)
			assert.Equal(t, result.HTML, again.HTML, "migration must be idempotent")
		})
	}
	assert.NotZero(t, count)
}
