package source

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/FocuswithJustin/namecorpus/core/errors"
	"github.com/FocuswithJustin/namecorpus/internal/validation"
)

// Directory serves the files under a root directory as documents, in lexical
// path order. It is restartable.
type Directory struct {
	root  string
	files []string
	pos   int
}

// NewDirectory lists the files under root whose names end in ext. The listing
// is taken once; files are read lazily.
func NewDirectory(root, ext string) (*Directory, error) {
	d := &Directory{root: root}
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.Type().IsRegular() && matches(entry.Name(), ext) {
			d.files = append(d.files, path)
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.NewNotFound("corpus directory", root)
	}
	if err != nil {
		return nil, errors.NewIO("walk", root, err)
	}
	return d, nil
}

// Read returns the content of the next file. The file is closed before Read
// returns.
func (d *Directory) Read() (string, error) {
	if d.pos >= len(d.files) {
		return "", io.EOF
	}
	path := d.files[d.pos]
	d.pos++

	info, err := os.Stat(path)
	if err != nil {
		return "", errors.NewIO("stat", path, err)
	}
	if err := validation.CheckDocumentSize(path, info.Size()); err != nil {
		return "", errors.NewIO("read", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.NewIO("read", path, err)
	}
	return string(data), nil
}

func (d *Directory) Reset() error {
	d.pos = 0
	return nil
}

func (d *Directory) Close() error {
	d.pos = len(d.files)
	return nil
}

// Files returns the paths the directory serves, in order.
func (d *Directory) Files() []string {
	return append([]string(nil), d.files...)
}
