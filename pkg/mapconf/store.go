// Package mapconf loads named map configurations (KeplerGL map styles and
// similar presentation settings) stored as .conf files in one directory.
//
// Contents are parsed as YAML mappings. The historical format was a raw
// dictionary literal handed to an expression evaluator; evaluating
// arbitrary expressions from files is a security liability, so this store
// only accepts structured data.
package mapconf

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Common errors.
var (
	ErrConfigNotFound  = errors.New("config not found")
	ErrConfigMalformed = errors.New("config is not a mapping")
)

// Store resolves config names to files in a single directory.
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore opens a store over dir, which must be an existing directory
// containing the .conf files.
func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%q should be an existing folder with at least one .conf file", dir)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Dir returns the store's directory.
func (s *Store) Dir() string { return s.dir }

// Get returns the mapping stored under <dir>/<name>.conf. The requested
// name is reduced to its extension-less base name first, so path traversal
// in untrusted input cannot escape the directory.
func (s *Store) Get(name string) (map[string]any, error) {
	name = sanitize(name)
	path := filepath.Join(s.dir, name+".conf")

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q has no %s.conf", ErrConfigNotFound, s.dir, name)
	}
	if err != nil {
		return nil, err
	}

	var conf map[string]any
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigMalformed, path, err)
	}
	if conf == nil {
		return nil, fmt.Errorf("%w: %s is empty", ErrConfigMalformed, path)
	}
	return conf, nil
}

// List returns the names of the available configs, sorted.
func (s *Store) List() ([]string, error) {
	matches, err := doublestar.FilepathGlob(filepath.Join(s.dir, "*.conf"))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		names = append(names, sanitize(path))
	}
	sort.Strings(names)
	return names, nil
}

// sanitize strips directories and the extension from a requested name.
func sanitize(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
