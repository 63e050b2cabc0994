package testutil

import (
	"path"
	"testing"

	"github.com/arthur-debert/renamer/pkg/filesystem"
	"github.com/arthur-debert/renamer/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// Env provides a filesystem rooted in a scratch directory for plan and
// execution tests.
type Env struct {
	Root string
	FS   types.FS
	Type EnvType

	t *testing.T
}

// NewEnv creates a test environment of the given type. Memory
// environments are deterministic and case sensitive; isolated
// environments exercise the real filesystem under t.TempDir().
func NewEnv(t *testing.T, envType EnvType) *Env {
	t.Helper()

	env := &Env{t: t, Type: envType}
	switch envType {
	case EnvIsolated:
		env.Root = t.TempDir()
		env.FS = filesystem.NewOS()
	default:
		env.Root = "/work"
		env.FS = filesystem.NewMemory()
		if err := env.FS.MkdirAll(env.Root, 0755); err != nil {
			t.Fatalf("Failed to create root dir: %v", err)
		}
	}
	return env
}

// Path joins rel onto the environment root. Slash separators are used
// throughout so memory and isolated environments behave alike.
func (e *Env) Path(rel string) string {
	return path.Join(e.Root, rel)
}

// File creates a file with content under the root, creating parents.
func (e *Env) File(rel, content string) string {
	e.t.Helper()

	p := e.Path(rel)
	if err := e.FS.MkdirAll(path.Dir(p), 0755); err != nil {
		e.t.Fatalf("Failed to create parent of %s: %v", rel, err)
	}
	if err := e.FS.WriteFile(p, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to create file %s: %v", rel, err)
	}
	return p
}

// Dir creates a directory under the root.
func (e *Env) Dir(rel string) string {
	e.t.Helper()

	p := e.Path(rel)
	if err := e.FS.MkdirAll(p, 0755); err != nil {
		e.t.Fatalf("Failed to create dir %s: %v", rel, err)
	}
	return p
}

// Exists reports whether rel exists under the root.
func (e *Env) Exists(rel string) bool {
	_, err := e.FS.Stat(e.Path(rel))
	return err == nil
}

// Content returns the content of a file under the root.
func (e *Env) Content(rel string) string {
	e.t.Helper()

	data, err := e.FS.ReadFile(e.Path(rel))
	if err != nil {
		e.t.Fatalf("Failed to read %s: %v", rel, err)
	}
	return string(data)
}
