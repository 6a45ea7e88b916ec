// Package models loads trained model resources: a binary blob plus an
// optional key/value properties file describing it.
package models

import (
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/namecorpus/core/errors"
	"github.com/FocuswithJustin/namecorpus/internal/logging"
)

// Entry names the files of one model resource. Relative paths resolve
// against the loader's root.
type Entry struct {
	Model      string `json:"model"`
	Properties string `json:"properties,omitempty"`
}

// Model is a loaded model resource.
type Model struct {
	Path       string            `json:"path"`
	Size       int               `json:"size"`
	Digest     string            `json:"blake3"`
	Properties map[string]string `json:"properties,omitempty"`
	Data       []byte            `json:"-"`
}

// Property returns the value for key, or def when it is not set.
func (m *Model) Property(key, def string) string {
	if v, ok := m.Properties[key]; ok {
		return v
	}
	return def
}

// Loader reads model resources from a root directory.
type Loader struct {
	root   string
	logger *slog.Logger
}

// NewLoader creates a loader resolving relative paths against root. An empty
// root means the working directory. logger may be nil.
func NewLoader(root string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Loader{root: root, logger: logger}
}

// Load reads the model blob fully and, when set, its properties file.
func (l *Loader) Load(e Entry) (*Model, error) {
	if e.Model == "" {
		return nil, errors.NewValidation("model", "model path is required")
	}

	path := l.resolve(e.Model)
	data, err := readResource("model", path)
	if err != nil {
		return nil, err
	}

	m := &Model{
		Path:   path,
		Size:   len(data),
		Digest: Digest(data),
		Data:   data,
	}

	if e.Properties != "" {
		propsPath := l.resolve(e.Properties)
		raw, err := readResource("properties", propsPath)
		if err != nil {
			return nil, err
		}
		if m.Properties, err = ParseProperties(propsPath, raw); err != nil {
			return nil, err
		}
	}

	l.logger.Debug("model_loaded", "path", path, "size", m.Size, "blake3", m.Digest, "properties", len(m.Properties))
	return m, nil
}

func (l *Loader) resolve(p string) string {
	if l.root == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(l.root, p)
}

func readResource(kind, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.NewNotFound(kind, path)
	}
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	return data, nil
}

// Digest returns the hex BLAKE3-256 digest of data.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
