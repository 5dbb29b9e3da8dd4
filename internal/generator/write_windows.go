//go:build windows

package generator

import (
	"fmt"

	"github.com/google/renameio/v2/maybe"
)

// writeFile writes content to path. Windows has no atomic replace, so
// maybe.WriteFile writes the file in place.
func writeFile(path, content string) error {
	if err := maybe.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
