// Package library manages the quiz directory: locating, loading, listing,
// renaming, and deleting quiz files. Quizzes are JSON or YAML documents;
// both decode to the same raw form before parsing.
package library

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quizdrill/quizdrill/internal/quiz"
)

// quizExtensions lists the recognized quiz file extensions, in resolution
// priority order.
var quizExtensions = []string{".json", ".yaml", ".yml"}

// Library provides access to the quizzes in one directory.
type Library struct {
	dir string
}

// New creates a Library rooted at dir.
func New(dir string) *Library {
	return &Library{dir: dir}
}

// Dir returns the library's root directory.
func (l *Library) Dir() string {
	return l.dir
}

// DefaultDir resolves the quiz directory in priority order:
// 1. QUIZDRILL_DIR environment variable
// 2. $XDG_DATA_HOME/quizdrill/quizzes
// 3. ~/.local/share/quizdrill/quizzes
func DefaultDir() (string, error) {
	if p := os.Getenv("QUIZDRILL_DIR"); p != "" {
		return p, os.MkdirAll(p, 0o755)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "quizdrill", "quizzes")
	return p, os.MkdirAll(p, 0o755)
}

// Resolve returns the path of the named quiz. The name may include the
// extension; without one, each recognized extension is tried in order.
func (l *Library) Resolve(name string) (string, error) {
	if ext := filepath.Ext(name); ext != "" {
		p := filepath.Join(l.dir, name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	for _, ext := range quizExtensions {
		p := filepath.Join(l.dir, name+ext)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("no quiz named %q in %s", name, l.dir)
}

// Load reads, decodes, schema-checks, and parses the named quiz.
func (l *Library) Load(name string) (*quiz.Quiz, error) {
	path, err := l.Resolve(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quiz file: %w", err)
	}
	return loadBytes(path, data)
}

func loadBytes(path string, data []byte) (*quiz.Quiz, error) {
	var doc any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
		}
		doc = normalizeYAML(doc)
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
		}
	}

	if err := validateDocument(doc); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	qz, err := quiz.ParseDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return qz, nil
}

// List returns the names of all quizzes in the library, sorted, with
// extensions stripped.
func (l *Library) List() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("read quiz dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		for _, known := range quizExtensions {
			if ext == known {
				names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
				break
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

// Rename moves a quiz to a new name, keeping its extension.
func (l *Library) Rename(oldName, newName string) error {
	oldPath, err := l.Resolve(oldName)
	if err != nil {
		return err
	}
	newPath := filepath.Join(l.dir, newName+filepath.Ext(oldPath))
	if _, err := os.Stat(newPath); err == nil {
		return fmt.Errorf("quiz %q already exists", newName)
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("rename quiz: %w", err)
	}
	return nil
}

// Remove deletes a quiz file.
func (l *Library) Remove(name string) error {
	path, err := l.Resolve(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove quiz: %w", err)
	}
	return nil
}

// normalizeYAML converts yaml.v3's decoded form into the JSON-style form
// the parser expects (map[string]any keys, []any sequences).
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeYAML(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalizeYAML(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeYAML(item)
		}
		return out
	default:
		return v
	}
}
