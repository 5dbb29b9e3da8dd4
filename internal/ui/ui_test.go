package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter_NoColorForBuffers(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)
	assert.False(t, p.Color)

	p.Error("file already exists: hello.py")
	p.Plain("see above")
	assert.Equal(t, "error: file already exists: hello.py\nsee above\n", buf.String())
}

func TestPrinter_Color(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{W: &buf, Color: true}

	p.Warning("careful")
	assert.Equal(t, ColorYellow+"warning:"+ColorReset+" careful\n", buf.String())
}

func TestPrinter_Check(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Check(true, "identity", "Jane Doe <jane@example.com>")
	p.Check(false, "templates", "none")
	assert.Equal(t, "  ✔ identity        Jane Doe <jane@example.com>\n  ✘ templates       none\n", buf.String())
}
