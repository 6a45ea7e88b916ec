package archive

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ulikunitz/xz"
)

type entry struct {
	name string
	body string
	dir  bool
}

var corpusEntries = []entry{
	{name: "data/", dir: true},
	{name: "data/a.name", body: "<DOC DOCNO=\"a\">\nHello\n</DOC>\n"},
	{name: "data/readme.txt", body: "not a corpus file"},
	{name: "data/b.name", body: "<DOC DOCNO=\"b\">\nWorld\n</DOC>\n"},
}

func writeTar(t *testing.T, w io.Writer, entries []entry) {
	t.Helper()
	tw := tar.NewWriter(w)
	for _, e := range entries {
		hdr := &tar.Header{Name: e.name, Mode: 0644, Size: int64(len(e.body)), Typeflag: tar.TypeReg}
		if e.dir {
			hdr = &tar.Header{Name: e.name, Mode: 0755, Typeflag: tar.TypeDir}
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("write header: %v", err)
		}
		if _, err := tw.Write([]byte(e.body)); err != nil {
			t.Fatalf("write content: %v", err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("close tar: %v", err)
	}
}

func createTestTarGz(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "corpus.tar.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	defer f.Close()

	gw := gzip.NewWriter(f)
	writeTar(t, gw, corpusEntries)
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	return path
}

func createTestTarXz(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "corpus.tar.xz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	defer f.Close()

	xw, err := xz.NewWriter(f)
	if err != nil {
		t.Fatalf("xz writer: %v", err)
	}
	writeTar(t, xw, corpusEntries)
	if err := xw.Close(); err != nil {
		t.Fatalf("close xz: %v", err)
	}
	return path
}

func collectNames(t *testing.T, path string) []string {
	t.Helper()
	var names []string
	err := Walk(path, func(h *tar.Header, r io.Reader) (bool, error) {
		names = append(names, h.Name)
		return false, nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	return names
}

func TestDetectCompression(t *testing.T) {
	tests := []struct {
		path string
		want Compression
	}{
		{"corpus.tar.xz", XZ},
		{"corpus.TXZ", XZ},
		{"corpus.tar.gz", Gzip},
		{"corpus.tgz", Gzip},
		{"corpus.tar", None},
		{"corpus.zip", Unknown},
		{"corpus", Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := DetectCompression(tt.path); got != tt.want {
				t.Errorf("DetectCompression(%q) = %v, want %v", tt.path, got, tt.want)
			}
			if got := IsArchive(tt.path); got != (tt.want != Unknown) {
				t.Errorf("IsArchive(%q) = %v", tt.path, got)
			}
		})
	}
}

func TestWalk_SkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	for _, path := range []string{createTestTarGz(t, dir), createTestTarXz(t, dir)} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			names := collectNames(t, path)
			want := []string{"data/a.name", "data/readme.txt", "data/b.name"}
			if len(names) != len(want) {
				t.Fatalf("entries = %v, want %v", names, want)
			}
			for i := range want {
				if names[i] != want[i] {
					t.Errorf("entry %d = %q, want %q", i, names[i], want[i])
				}
			}
		})
	}
}

func TestIterate_Stop(t *testing.T) {
	path := createTestTarXz(t, t.TempDir())
	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}
	defer r.Close()

	var body []byte
	err = r.Iterate(func(h *tar.Header, content io.Reader) (bool, error) {
		body, err = io.ReadAll(content)
		return true, err
	})
	if err != nil {
		t.Fatalf("Iterate() error = %v", err)
	}
	if string(body) != corpusEntries[1].body {
		t.Errorf("first body = %q, want %q", body, corpusEntries[1].body)
	}
}

func TestNextFile_EOF(t *testing.T) {
	path := createTestTarGz(t, t.TempDir())
	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}
	defer r.Close()

	n := 0
	for {
		_, err := r.NextFile()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("NextFile() error = %v", err)
		}
		n++
	}
	if n != 3 {
		t.Errorf("files = %d, want 3", n)
	}
}

func TestNewReader_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := NewReader(filepath.Join(dir, "corpus.zip")); err == nil {
		t.Error("NewReader() should reject unknown formats")
	}
	if _, err := NewReader(filepath.Join(dir, "missing.tar.gz")); err == nil {
		t.Error("NewReader() should fail for a missing file")
	}

	bad := filepath.Join(dir, "bad.tar.xz")
	if err := os.WriteFile(bad, []byte("not xz data"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewReader(bad); err == nil {
		t.Error("NewReader() should fail for corrupt xz data")
	}
}
