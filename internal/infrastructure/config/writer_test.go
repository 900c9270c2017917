package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionHeaders(content string) []string {
	var sections []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, strings.Trim(line, "[]"))
		}
	}
	return sections
}

func TestWriteConfigOrdered(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), configPath))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	sections := sectionHeaders(string(content))
	require.NotEmpty(t, sections)
	for i := 1; i < len(sections); i++ {
		assert.LessOrEqual(t, sections[i-1], sections[i], "sections not sorted")
	}
	assert.Contains(t, string(content), "debounce_ms = 300")
}

func TestEncodeOrdered_MatchesWrittenFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteConfigOrdered(DefaultConfig(), configPath))

	written, err := os.ReadFile(configPath)
	require.NoError(t, err)
	encoded, err := EncodeOrdered(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, string(written), string(encoded))
}

func TestWriteConfigOrdered_NilConfig(t *testing.T) {
	assert.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "config.toml")))
}

func TestSortTOMLSections(t *testing.T) {
	input := `[suggest]
debounce_ms = 500

[database]
driver = 'sqlite'

[search]
debounce_ms = 300

[database.postgres]
host = 'localhost'
`

	result := sortTOMLSections(input)

	assert.Equal(t, []string{
		"database",
		"database.postgres",
		"search",
		"suggest",
	}, sectionHeaders(result))
	assert.True(t, strings.HasSuffix(result, "\n"))
	assert.False(t, strings.HasSuffix(result, "\n\n"))
}
