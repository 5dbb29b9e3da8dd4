package generator

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevr/gensrc/internal/templates"
)

func TestExtension(t *testing.T) {
	tests := []struct {
		output string
		want   string
		ok     bool
	}{
		{"hello.py", "py", true},
		{"src/hello.cpp", "cpp", true},
		{"archive.tar.gz", "gz", true},
		{"./dir.d/out", "", false},
		{"out", "", false},
		{"out.", "", false},
		{"", "", false},
		{".bashrc", "bashrc", true},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			got, ok := Extension(tt.output)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve(t *testing.T) {
	h, err := Resolve(templates.Bundled(), "main", "dir/hello.cpp")
	require.NoError(t, err)
	assert.Equal(t, "main.cpp", h.Key)
	assert.Equal(t, "cpp", h.Ext)
	assert.Contains(t, h.Source, "int main")
}

func TestResolve_NoExtension(t *testing.T) {
	_, err := Resolve(templates.Bundled(), "main", "out")
	require.ErrorIs(t, err, ErrNoExtension)

	var rerr *ResolutionError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "supported language extension is required, supported extensions: c, cpp, go, py, sh", err.Error())
}

func TestResolve_Unsupported(t *testing.T) {
	_, err := Resolve(templates.Bundled(), "main", "out.rs")
	require.ErrorIs(t, err, ErrUnsupportedExtension)
	assert.Equal(t, "invalid language extension used: rs; supported extensions: c, cpp, go, py, sh", err.Error())
}

func TestResolve_SupportedListFollowsTemplateSet(t *testing.T) {
	set := templates.New(fstest.MapFS{
		"main.py.tmpl":  {Data: []byte("py")},
		"main.lua.tmpl": {Data: []byte("lua")},
	})

	h, err := Resolve(set, "main", "x.lua")
	require.NoError(t, err)
	assert.Equal(t, "lua", h.Source)

	_, err = Resolve(set, "main", "x.cpp")
	assert.EqualError(t, err, "invalid language extension used: cpp; supported extensions: lua, py")
}

func TestRequestValidate(t *testing.T) {
	require.NoError(t, Request{Type: "main", Output: "a.py"}.Validate())

	err := Request{Type: "lib", Output: "a.py"}.Validate()
	require.ErrorIs(t, err, ErrUnknownType)
	assert.Contains(t, err.Error(), "allowed: main")

	_, err = Resolve(templates.Bundled(), "main", "")
	assert.ErrorIs(t, err, ErrNoExtension)
}
