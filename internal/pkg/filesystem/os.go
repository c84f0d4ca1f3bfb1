package filesystem

import (
	"io/fs"
	"os"
)

// OS is the host filesystem.
type OS struct{}

// Stat implements ports.FileSystem.
func (OS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile implements ports.FileSystem.
func (OS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Env is the process environment.
type Env struct{}

// Getenv implements ports.Environment.
func (Env) Getenv(key string) string {
	return os.Getenv(key)
}

// MapEnv is a fixed environment, handy for tests and dry runs.
type MapEnv map[string]string

// Getenv implements ports.Environment.
func (m MapEnv) Getenv(key string) string {
	return m[key]
}
