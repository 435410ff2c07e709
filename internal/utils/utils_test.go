package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionFilter(t *testing.T) {
	f := NewSuggestionFilter("str")
	assert.True(t, f.Seen("str"))
	assert.False(t, f.ShouldInclude(" str "))
	assert.True(t, f.ShouldInclude("list"))
	assert.True(t, f.ShouldInclude("List["), "case matters")
	assert.False(t, f.ShouldInclude("list"))
	assert.False(t, f.ShouldInclude("  "))
	assert.True(t, f.Seen("List["))
}

func TestIsIdentifier(t *testing.T) {
	valid := []string{"x", "_private", "count2", "蟒蛇", "Δx"}
	for _, s := range valid {
		assert.True(t, IsIdentifier(s), s)
	}
	invalid := []string{"", "2x", "a.b", "a b", "a(b", "a-b", "x*"}
	for _, s := range invalid {
		assert.False(t, IsIdentifier(s), s)
	}
}

func TestIsDottedName(t *testing.T) {
	assert.True(t, IsDottedName("os.path.join"))
	assert.True(t, IsDottedName("numpy"))
	assert.False(t, IsDottedName("os..path"))
	assert.False(t, IsDottedName(".os"))
	assert.False(t, IsDottedName(""))
}

func TestIsValidInput(t *testing.T) {
	assert.True(t, IsValidInput("count", 0))
	assert.True(t, IsValidInput("count", 5))
	assert.False(t, IsValidInput("count", 4))
	assert.False(t, IsValidInput("", 10))
	assert.False(t, IsValidInput("a.b", 10))
}

func TestHasSuffixIgnoreCase(t *testing.T) {
	assert.True(t, HasSuffixIgnoreCase("user_LIST", "list"))
	assert.True(t, HasSuffixIgnoreCase("list", "List"))
	assert.False(t, HasSuffixIgnoreCase("ls", "list"))
}

func TestLineBounds(t *testing.T) {
	text := "first\nsecond\nthird"
	start, end := LineBounds(text, 8)
	assert.Equal(t, "second", text[start:end])
	start, end = LineBounds(text, len(text))
	assert.Equal(t, "third", text[start:end])
	start, end = LineBounds(text, -3)
	assert.Equal(t, "first", text[start:end])
}

func TestExtractValues(t *testing.T) {
	data := map[string]any{
		"int":   int64(7),
		"float": 7.6,
		"str":   "x",
		"bool":  true,
		"table": map[string]any{"k": int64(1)},
	}
	n, ok := ExtractNumber(data, "int")
	assert.True(t, ok)
	assert.Equal(t, 7, n)
	n, ok = ExtractNumber(data, "float")
	assert.True(t, ok)
	assert.Equal(t, 8, n)
	_, ok = ExtractNumber(data, "str")
	assert.False(t, ok)

	s, ok := ExtractString(data, "str")
	assert.True(t, ok)
	assert.Equal(t, "x", s)
	b, ok := ExtractBool(data, "bool")
	assert.True(t, ok)
	assert.True(t, b)
	_, ok = ExtractBool(data, "missing")
	assert.False(t, ok)

	section, ok := ExtractSection(data, "table")
	assert.True(t, ok)
	assert.Len(t, section, 1)
	_, ok = ExtractSection(data, "str")
	assert.False(t, ok)
}

func TestPlatformConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("APPDATA", "")
	dir := PlatformConfigDir("/home/u", "typehint")
	assert.Contains(t, dir, "typehint")
	assert.True(t, filepath.IsAbs(dir) || filepath.VolumeName(dir) != "")
}

func TestWriteTOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")
	type section struct {
		Limit int `toml:"limit"`
	}
	require.NoError(t, WriteTOMLFile(map[string]section{"workspace": {Limit: 3}}, path))
	assert.True(t, FileExists(path))

	data, err := ParseTOMLWithRecovery(path)
	require.NoError(t, err)
	ws, ok := ExtractSection(data, "workspace")
	require.True(t, ok)
	n, _ := ExtractNumber(ws, "limit")
	assert.Equal(t, 3, n)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
	assert.True(t, WritableDir(filepath.Join(dir, "other")))
}
