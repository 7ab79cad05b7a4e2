package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// Loader reads level files from a file system tree.
type Loader struct {
	FS     fs.FS
	Prefix string // Prepended to Level.Source

	// OnSkip, when set, is called for every file that fails to parse.
	// Such files are skipped either way.
	OnSkip func(path string, err error)
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{FS: os.DirFS(root), Prefix: root}
}

// BuiltinLoader returns a loader over the embedded default levels.
func BuiltinLoader() *Loader {
	sub, err := fs.Sub(defaultsFS, "defaults")
	if err != nil {
		panic(fmt.Sprintf("levels: embedded defaults: %v", err))
	}
	return &Loader{FS: sub, Prefix: "builtin:"}
}

// LoadAll recursively loads every level file. Invalid files are skipped.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !slices.Contains(Extensions(), strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			if l.OnSkip != nil {
				l.OnSkip(p, err)
			}
			return nil
		}

		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking %s: %w", l.Prefix, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single level file by its path inside the loader's tree.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	level, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	level.Source = l.source(p)
	return level, nil
}

func (l *Loader) source(p string) string {
	if strings.HasSuffix(l.Prefix, ":") {
		return l.Prefix + p
	}
	return filepath.Join(l.Prefix, filepath.FromSlash(p))
}

// LoadPath loads a level file from an arbitrary path on disk.
func LoadPath(p string) (Level, error) {
	dir, file := filepath.Split(p)
	if dir == "" {
		dir = "."
	}
	return NewLoader(dir).LoadFile(file)
}
