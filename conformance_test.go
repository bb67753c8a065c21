package goutf8_test

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	goutf8 "github.com/reoring/goutf8"
)

type vectorFile struct {
	Valid   []vector `yaml:"valid"`
	Invalid []vector `yaml:"invalid"`
}

type vector struct {
	Name   string   `yaml:"name"`
	Bytes  string   `yaml:"bytes"`
	Runes  []rune   `yaml:"runes"`
	Issues []string `yaml:"issues"`
}

func (v vector) input(t *testing.T) []byte {
	t.Helper()
	raw, err := hex.DecodeString(strings.ReplaceAll(v.Bytes, " ", ""))
	require.NoError(t, err, "fixture %q has malformed bytes", v.Name)
	return raw
}

// TestConformanceVectors runs the shared fixture corpus through the Checker
// and compares decoded code points and issue codes byte for byte.
func TestConformanceVectors(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "utf8_vectors.yaml"))
	require.NoError(t, err)

	var file vectorFile
	require.NoError(t, yaml.Unmarshal(raw, &file))
	require.NotEmpty(t, file.Valid)
	require.NotEmpty(t, file.Invalid)

	run := func(t *testing.T, vec vector) ([]rune, goutf8.Report) {
		input := vec.input(t)

		var runes []rune
		ck := goutf8.NewChecker(goutf8.CheckOpt{
			OnRune: func(r rune, _ goutf8.Position, _ int) { runes = append(runes, r) },
		})
		for _, b := range input {
			ck.Feed(b)
		}
		rep := ck.Finish()

		var codes []string
		for _, it := range rep.Issues {
			codes = append(codes, it.Code)
		}
		assert.Equal(t, vec.Issues, codes, "issue codes")
		assert.Equal(t, vec.Runes, runes, "decoded runes")
		assert.Equal(t, int64(len(input)), rep.Bytes)
		assert.Equal(t, int64(len(runes)), rep.Runes)
		return runes, rep
	}

	for _, vec := range file.Valid {
		t.Run("valid/"+vec.Name, func(t *testing.T) {
			require.Empty(t, vec.Issues, "valid fixtures must not expect issues")
			input := vec.input(t)
			require.True(t, utf8.Valid(input), "fixture disagrees with unicode/utf8")

			runes, rep := run(t, vec)
			assert.True(t, rep.Valid())
			assert.Equal(t, string(input), string(runes), "re-encoding must reproduce the input")
		})
	}

	for _, vec := range file.Invalid {
		t.Run("invalid/"+vec.Name, func(t *testing.T) {
			require.NotEmpty(t, vec.Issues, "invalid fixtures must expect issues")
			input := vec.input(t)
			require.False(t, utf8.Valid(input), "fixture disagrees with unicode/utf8")

			_, rep := run(t, vec)
			assert.False(t, rep.Valid())
			assert.Error(t, rep.Err())
		})
	}
}
