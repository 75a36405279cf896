package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/tilekit/grid2"
)

// LoadLayout parses the layout stored at path into g; on failure g is
// unchanged. A *grid2.ParseError is reachable through errors.Cause.
func LoadLayout(path string, g *grid2.Grid) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read layout %s", path)
	}
	if err := grid2.Parse(strings.TrimSpace(string(data)), g); err != nil {
		return errors.Wrapf(err, "layout %s", path)
	}
	return nil
}

// SaveLayout writes g's encoding to path followed by a newline
func SaveLayout(path string, g *grid2.Grid) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return errors.Wrapf(err, "create layout directory for %s", path)
		}
	}
	return errors.Wrapf(os.WriteFile(path, []byte(g.String()+"\n"), 0644), "write layout %s", path)
}

// RestoreLayout loads the configured layout file, or parses Initial when
// the file does not exist yet
func (c Config) RestoreLayout(g *grid2.Grid) error {
	if c.Layout.File != "" {
		if _, err := os.Stat(c.Layout.File); err == nil {
			return LoadLayout(c.Layout.File, g)
		}
	}
	if c.Layout.Initial == "" {
		return nil
	}
	return errors.Wrap(grid2.Parse(c.Layout.Initial, g), "layout.initial")
}
