package identity

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-git/go-git/v5/config"
)

// GitConfig reads user.name and user.email from the global Git configuration.
type GitConfig struct {
	// Path points at a specific gitconfig file. When empty, GIT_CONFIG_GLOBAL
	// is honoured, then the usual ~/.gitconfig and $XDG_CONFIG_HOME/git/config.
	Path string
}

// Identity implements Provider.
func (g GitConfig) Identity() (Identity, error) {
	cfg, err := g.load()
	if err != nil {
		return Identity{}, err
	}

	id := Identity{
		Name:  strings.TrimSpace(cfg.User.Name),
		Email: strings.TrimSpace(cfg.User.Email),
	}
	if err := id.Validate(); err != nil {
		return Identity{}, err
	}
	return id, nil
}

func (g GitConfig) load() (*config.Config, error) {
	path := g.Path
	if path == "" {
		path = os.Getenv("GIT_CONFIG_GLOBAL")
	}
	if path == "" {
		cfg, err := config.LoadConfig(config.GlobalScope)
		if err != nil {
			return nil, fmt.Errorf("failed to load global git config: %w", err)
		}
		return cfg, nil
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.NewConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open git config %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := config.ReadConfig(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse git config %s: %w", path, err)
	}
	return cfg, nil
}
