package argparse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readTestdata(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func TestParseDescriptions(t *testing.T) {
	set, err := Parse(readTestdata(t, "descriptions.json"), DialectCLI)
	require.NoError(t, err)

	// cmd005 is rest-only and must be filtered under cli.
	assert.Equal(t, 5, set.Len())
	assert.Equal(t, []string{"cmd000", "cmd001", "cmd002", "cmd003", "cmd004"}, set.Tags())

	sig, ok := set.Get("cmd002")
	require.True(t, ok)
	assert.Equal(t, "osd", sig.Module)
	assert.Equal(t, "rw", sig.Perm)
	require.Len(t, sig.Args, 3)
	assert.Equal(t, KindPrefix, sig.Args[0].Kind)
	assert.Equal(t, "setmaxosd", sig.Args[1].Prefix)
	newmax := sig.Args[2]
	assert.Equal(t, KindInt, newmax.Kind)
	assert.True(t, newmax.Req)
	require.NotNil(t, newmax.RangeMin)
	assert.Equal(t, 0.0, *newmax.RangeMin)
	assert.Nil(t, newmax.RangeMax)
}

func TestParseDialectREST(t *testing.T) {
	set, err := Parse(readTestdata(t, "descriptions.json"), DialectREST)
	require.NoError(t, err)

	// cmd004 is cli-only, cmd005 rest-only.
	assert.Equal(t, []string{"cmd000", "cmd001", "cmd002", "cmd003", "cmd005"}, set.Tags())
	assert.Equal(t, DialectREST, set.Dialect())
}

func TestParsePull585Regression(t *testing.T) {
	// Historical emitter bug: sig arrived as a bare string instead of an
	// array. This must surface as a shape error, not succeed and not panic.
	_, err := Parse(readTestdata(t, "pull585.json"), DialectCLI)
	require.Error(t, err)

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "cmd000", shapeErr.Tag)

	var syntaxErr *SyntaxError
	assert.NotErrorAs(t, err, &syntaxErr, "shape error must not double as a syntax error")
}

func TestParseShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "top level not an object",
			text: `["cmd000"]`,
		},
		{
			name: "top level null",
			text: `null`,
		},
		{
			name: "null sig",
			text: `{"cmd000": {"sig": null}}`,
		},
		{
			name: "missing sig",
			text: `{"cmd000": {"help": "no signature here"}}`,
		},
		{
			name: "command entry not an object",
			text: `{"cmd000": 42}`,
		},
		{
			name: "descriptor missing type",
			text: `{"cmd000": {"sig": [{"name": "epoch"}]}}`,
		},
		{
			name: "unknown argument type",
			text: `{"cmd000": {"sig": [{"name": "epoch", "type": "CephEpoch"}]}}`,
		},
		{
			name: "descriptor missing name",
			text: `{"cmd000": {"sig": [{"type": "CephInt"}]}}`,
		},
		{
			name: "sig entry neither string nor object",
			text: `{"cmd000": {"sig": [7]}}`,
		},
		{
			name: "bad req value",
			text: `{"cmd000": {"sig": [{"name": "id", "type": "CephInt", "req": "maybe"}]}}`,
		},
		{
			name: "bad n value",
			text: `{"cmd000": {"sig": [{"name": "id", "type": "CephInt", "n": 3}]}}`,
		},
		{
			name: "choices without strings",
			text: `{"cmd000": {"sig": [{"name": "format", "type": "CephChoices"}]}}`,
		},
		{
			name: "bad range",
			text: `{"cmd000": {"sig": [{"name": "id", "type": "CephInt", "range": "low|high"}]}}`,
		},
		{
			name: "inverted range",
			text: `{"cmd000": {"sig": [{"name": "id", "type": "CephInt", "range": "10|0"}]}}`,
		},
		{
			name: "bad goodchars class",
			text: `{"cmd000": {"sig": [{"name": "pool", "type": "CephString", "goodchars": "z-a"}]}}`,
		},
		{
			name: "default fails coercion",
			text: `{"cmd000": {"sig": [{"name": "id", "type": "CephInt", "req": false, "default": "many"}]}}`,
		},
		{
			name: "prefix object without word",
			text: `{"cmd000": {"sig": [{"type": "CephPrefix"}]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text, DialectCLI)
			var shapeErr *ShapeError
			require.ErrorAs(t, err, &shapeErr, "want shape error, got %v", err)
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse(`{"cmd000": {"sig"`, DialectCLI)
	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)

	var shapeErr *ShapeError
	assert.NotErrorAs(t, err, &shapeErr)
}

func TestParseReqAndCountSpellings(t *testing.T) {
	text := `{"cmd000": {"sig": [
		{"name": "a", "type": "CephString", "req": "false"},
		{"name": "b", "type": "CephString", "req": true},
		{"name": "c", "type": "CephString", "n": "N"},
		{"name": "d", "type": "CephString", "n": 1}
	]}}`
	set, err := Parse(text, DialectCLI)
	require.NoError(t, err)

	sig, ok := set.Get("cmd000")
	require.True(t, ok)
	assert.False(t, sig.Args[0].Req)
	assert.True(t, sig.Args[1].Req)
	assert.True(t, sig.Args[2].Repeated)
	assert.False(t, sig.Args[3].Repeated)
}

func TestParseDialect(t *testing.T) {
	d, err := ParseDialect("cli")
	require.NoError(t, err)
	assert.Equal(t, DialectCLI, d)

	d, err = ParseDialect("rest")
	require.NoError(t, err)
	assert.Equal(t, DialectREST, d)

	_, err = ParseDialect("grpc")
	assert.Error(t, err)
}
