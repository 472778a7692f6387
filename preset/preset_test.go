package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sonnes/rangoli/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinValid(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Builtin().All() {
		require.NoError(t, p.Validate(), p.Name)
		assert.Contains(t, Categories, p.Category, p.Name)
		assert.False(t, seen[p.Name], "duplicate %s", p.Name)
		seen[p.Name] = true
	}
}

func TestFlagsAreDiscrete(t *testing.T) {
	flags := Builtin().InCategory("Countries")
	require.NotEmpty(t, flags)
	for _, p := range flags {
		assert.Equal(t, core.Discrete, p.Style().Interpolation, p.Name)
	}
}

func TestLookup(t *testing.T) {
	c := Builtin()

	p, err := c.Lookup("deep sea")
	require.NoError(t, err)
	assert.Equal(t, "Deep Sea", p.Name)
	assert.Equal(t, core.Smooth, p.Style().Interpolation)

	_, err = c.Lookup("Frnce")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "France")

	_, err = c.Lookup("zzzzzz")
	assert.EqualError(t, err, `unknown preset "zzzzzz"`)
}

func TestLookupReturnsCopy(t *testing.T) {
	c := Builtin()
	p, err := c.Lookup("Fire")
	require.NoError(t, err)
	p.Colors[0] = "#000000"

	again, err := c.Lookup("Fire")
	require.NoError(t, err)
	assert.Equal(t, "#FF4500", again.Colors[0])
}

func TestSearch(t *testing.T) {
	c := Builtin()
	got := c.Search("chr")
	require.NotEmpty(t, got)
	var names []string
	for _, p := range got {
		names = append(names, p.Name)
	}
	assert.Contains(t, names, "Cherry")
	assert.Nil(t, c.Search("  "))
}

func TestUpsert(t *testing.T) {
	c := Builtin()
	before := len(c.All())

	c.Upsert(Preset{Name: "fire", Colors: []string{"#111111", "#222222"}})
	assert.Len(t, c.All(), before)
	p, err := c.Lookup("Fire")
	require.NoError(t, err)
	assert.Equal(t, []string{"#111111", "#222222"}, p.Colors)

	c.Upsert(Preset{Name: "Mine", Colors: []string{"#111111", "#222222"}})
	assert.Len(t, c.All(), before+1)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		preset  Preset
		wantErr string
	}{
		{"ok", Preset{Name: "a", Colors: []string{"#000000", "FFFFFF"}}, ""},
		{"no name", Preset{Colors: []string{"#000000", "#FFFFFF"}}, "no name"},
		{"one color", Preset{Name: "a", Colors: []string{"#000000"}}, "at least 2"},
		{"bad color", Preset{Name: "a", Colors: []string{"#000000", "#GGGGGG"}}, "invalid hex"},
		{"bad mode", Preset{Name: "a", Colors: []string{"#000000", "#FFFFFF"}, Interpolation: "wobbly"}, "unknown interpolation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.preset.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFileRoundTrip(t *testing.T) {
	presets := []Preset{
		{Name: "Flame", Colors: []string{"#FF0000", "#FFCC00"}, Category: "warm"},
		{Name: "Tricolor", Colors: []string{"#0000FF", "#FFFFFF", "#FF0000"}, Interpolation: core.Discrete},
	}
	for _, ext := range []string{".toml", ".yaml", ".yml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", "presets"+ext)
			require.NoError(t, WriteFile(path, presets))

			got, err := ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, presets, got)
		})
	}
}

func TestReadFileTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	data := `
[[preset]]
name = "Mint"
colors = ["#98FB98", "#FFFFFF"]

[[preset]]
name = "Flag"
colors = ["#000000", "#FF0000", "#FFFF00"]
interpolation = "discrete"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	got, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Mint", got[0].Name)
	assert.Equal(t, core.Discrete, got[1].Interpolation)
}

func TestReadFileYAMLInvalidEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	data := "presets:\n  - name: Broken\n    colors: [\"#000000\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := ReadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 1")
}

func TestReadFileMissing(t *testing.T) {
	got, err := ReadFile(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadFileUnsupportedExtension(t *testing.T) {
	_, err := ReadFile("presets.json")
	assert.Error(t, err)
}

func TestLoadMergesOverBuiltins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.toml")
	require.NoError(t, WriteFile(path, []Preset{
		{Name: "Ocean", Colors: []string{"#000080", "#00FFFF"}},
		{Name: "Lava", Colors: []string{"#330000", "#FF3300"}},
	}))

	c, err := Load(path)
	require.NoError(t, err)

	ocean, err := c.Lookup("ocean")
	require.NoError(t, err)
	assert.Equal(t, []string{"#000080", "#00FFFF"}, ocean.Colors)

	_, err = c.Lookup("Lava")
	assert.NoError(t, err)
	assert.Len(t, c.All(), len(Builtin().All())+1)
}
