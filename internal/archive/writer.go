package archive

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ulikunitz/xz"
)

// Create packs the files under srcDir whose names end in ext (all files when
// ext is empty) into an archive at dstPath. The compression follows dstPath's
// suffix. Entries are stored relative to srcDir, in lexical order, with a
// fixed modification time so the output is reproducible.
func Create(srcDir, dstPath, ext string) (n int, err error) {
	comp := DetectCompression(dstPath)
	if comp == Unknown {
		return 0, fmt.Errorf("unsupported archive format: %s", dstPath)
	}

	outFile, err := os.Create(dstPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create archive file: %w", err)
	}
	defer func() {
		if cerr := outFile.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	var w io.Writer = outFile
	var compressor io.Closer
	switch comp {
	case XZ:
		xzw, err := xz.NewWriter(outFile)
		if err != nil {
			return 0, fmt.Errorf("xz writer: %w", err)
		}
		w, compressor = xzw, xzw
	case Gzip:
		gzw := gzip.NewWriter(outFile)
		w, compressor = gzw, gzw
	}

	tw := tar.NewWriter(w)
	modTime := time.Unix(0, 0).UTC()

	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if ext != "" && !strings.HasSuffix(d.Name(), ext) {
			return nil
		}

		relPath, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}

		header := &tar.Header{
			Name:     filepath.ToSlash(relPath),
			Mode:     0644,
			Size:     info.Size(),
			ModTime:  modTime,
			Typeflag: tar.TypeReg,
		}
		if err := tw.WriteHeader(header); err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if _, err := io.Copy(tw, f); err != nil {
			return err
		}
		n++
		return nil
	})
	if err != nil {
		return n, fmt.Errorf("failed to create archive: %w", err)
	}

	if err := tw.Close(); err != nil {
		return n, fmt.Errorf("close tar: %w", err)
	}
	if compressor != nil {
		if err := compressor.Close(); err != nil {
			return n, fmt.Errorf("close compressor: %w", err)
		}
	}
	return n, nil
}
