package discovery

import (
	"io/fs"
	"time"

	"github.com/doeshing/shellpick/internal/pkg/filesystem"
)

// fakeFS answers Stat for a fixed set of paths and ReadFile from a map.
type fakeFS struct {
	files   map[string]string
	statted []string
	readErr error
}

func newFakeFS(paths ...string) *fakeFS {
	f := &fakeFS{files: map[string]string{}}
	for _, p := range paths {
		f.files[p] = ""
	}
	return f
}

func (f *fakeFS) Stat(name string) (fs.FileInfo, error) {
	f.statted = append(f.statted, name)
	if _, ok := f.files[name]; ok {
		return fakeInfo{name: name}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

func (f *fakeFS) ReadFile(name string) ([]byte, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	data, ok := f.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return []byte(data), nil
}

type fakeInfo struct{ name string }

func (i fakeInfo) Name() string       { return i.name }
func (i fakeInfo) Size() int64        { return 0 }
func (i fakeInfo) Mode() fs.FileMode  { return 0o644 }
func (i fakeInfo) ModTime() time.Time { return time.Time{} }
func (i fakeInfo) IsDir() bool        { return false }
func (i fakeInfo) Sys() any           { return nil }

func pathEnv(value string) filesystem.MapEnv {
	return filesystem.MapEnv{"PATH": value}
}
