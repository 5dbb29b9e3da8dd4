package generator

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevr/gensrc/internal/identity"
	"github.com/kevr/gensrc/internal/templates"
)

func newTestGenerator(id identity.Provider) *Generator {
	return &Generator{
		Identity:  id,
		Templates: templates.Bundled(),
		Now:       func() time.Time { return time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC) },
	}
}

var jane = identity.Static{Name: "Jane Doe", Email: "jane@example.com"}

func TestGenerate_AllBundledExtensions(t *testing.T) {
	exts, err := templates.Bundled().Extensions("main")
	require.NoError(t, err)
	require.NotEmpty(t, exts)

	g := newTestGenerator(jane)
	for _, ext := range exts {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "hello."+ext)

			res, err := g.Generate(Request{Type: "main", Output: path})
			require.NoError(t, err)
			assert.Equal(t, "main."+ext, res.Key)
			assert.False(t, res.Replaced)

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(got), "Jane Doe <jane@example.com>")
			assert.Contains(t, string(got), "2024")
		})
	}
}

func TestGenerate_DefaultsToCurrentYear(t *testing.T) {
	g := &Generator{Identity: jane}
	path := filepath.Join(t.TempDir(), "hello.py")

	_, err := g.Generate(Request{Type: "main", Output: path})
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(got), strconv.Itoa(time.Now().Year()))
}

func TestGenerate_ConflictLeavesFileUntouched(t *testing.T) {
	g := newTestGenerator(jane)
	path := filepath.Join(t.TempDir(), "hello.py")
	require.NoError(t, os.WriteFile(path, []byte("keep me"), 0644))

	_, err := g.Generate(Request{Type: "main", Output: path})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(got))

	res, err := g.Generate(Request{Type: "main", Output: path, Force: true})
	require.NoError(t, err)
	assert.True(t, res.Replaced)
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(got), "Jane Doe <jane@example.com>")
}

func TestGenerate_ConflictCheckedBeforeResolution(t *testing.T) {
	g := newTestGenerator(jane)
	path := filepath.Join(t.TempDir(), "out.rs")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, err := g.Generate(Request{Type: "main", Output: path})
	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestGenerate_NoExtensionRegardlessOfForce(t *testing.T) {
	g := newTestGenerator(jane)
	for _, force := range []bool{false, true} {
		path := filepath.Join(t.TempDir(), "out")
		_, err := g.Generate(Request{Type: "main", Output: path, Force: force})
		require.ErrorIs(t, err, ErrNoExtension)

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	}
}

func TestGenerate_MissingIdentityCreatesNothing(t *testing.T) {
	g := newTestGenerator(identity.Static{Name: "Jane Doe"})
	path := filepath.Join(t.TempDir(), "hello.py")

	_, err := g.Generate(Request{Type: "main", Output: path})
	require.ErrorIs(t, err, identity.ErrMissingConfig)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
