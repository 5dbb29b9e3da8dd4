//go:build !windows

package generator

import (
	"fmt"
	"log/slog"

	"github.com/google/renameio/v2"
)

// writeFile stages content in a pending file next to path and renames it
// into place, keeping the mode of a file it replaces.
func writeFile(path, content string) error {
	pending, err := renameio.NewPendingFile(path,
		renameio.WithPermissions(0644),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return fmt.Errorf("create pending file for %s: %w", path, err)
	}
	defer func() {
		if err := pending.Cleanup(); err != nil {
			slog.Debug("cleanup pending file", "path", path, "error", err)
		}
	}()

	if _, err := pending.WriteString(content); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}
	return nil
}
