package testutil

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/arthur-debert/renamer/pkg/types"
)

// FailFS wraps a filesystem and fails selected operations, for
// exercising mid-batch failure handling.
type FailFS struct {
	types.FS

	// FailRename makes Rename on this old path return an error.
	FailRename string
	// FailMkdirAll makes MkdirAll on this path return an error.
	FailMkdirAll string
	// FailRemove makes Remove and RemoveAll on this path return an error.
	FailRemove string
}

// NewFailFS wraps base.
func NewFailFS(base types.FS) *FailFS {
	return &FailFS{FS: base}
}

func (f *FailFS) Rename(oldpath, newpath string) error {
	if f.FailRename != "" && oldpath == f.FailRename {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: fmt.Errorf("injected failure")}
	}
	return f.FS.Rename(oldpath, newpath)
}

func (f *FailFS) MkdirAll(path string, perm fs.FileMode) error {
	if f.FailMkdirAll != "" && path == f.FailMkdirAll {
		return &os.PathError{Op: "mkdir", Path: path, Err: fmt.Errorf("injected failure")}
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *FailFS) Remove(path string) error {
	if f.FailRemove != "" && path == f.FailRemove {
		return &os.PathError{Op: "remove", Path: path, Err: fmt.Errorf("injected failure")}
	}
	return f.FS.Remove(path)
}

func (f *FailFS) RemoveAll(path string) error {
	if f.FailRemove != "" && path == f.FailRemove {
		return &os.PathError{Op: "removeall", Path: path, Err: fmt.Errorf("injected failure")}
	}
	return f.FS.RemoveAll(path)
}
