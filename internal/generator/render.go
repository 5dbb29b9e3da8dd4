package generator

import (
	"bytes"
	"fmt"
	"text/template"
)

// Render executes the template in h against ctx.
func Render(h *Handle, ctx Context) (string, error) {
	t, err := template.New(h.Key).Funcs(FuncMap()).Parse(h.Source)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", h.Key, err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, ctx); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", h.Key, err)
	}
	return buf.String(), nil
}
