package util

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Env looks up configuration variables.
type Env interface {
	Lookup(key string) (string, bool)
}

// OSEnv reads from the process environment.
type OSEnv struct{}

func (OSEnv) Lookup(key string) (string, bool) { return os.LookupEnv(key) }

// MapEnv is a fixed set of variables.
type MapEnv map[string]string

func (m MapEnv) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// LoadDotEnv loads variables from files (default ".env") into the process
// environment. Files that do not exist are skipped and variables that are
// already set keep their value.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return errors.Wrapf(err, "stat %s", f)
		}
		if err := godotenv.Load(f); err != nil {
			return errors.Wrapf(err, "load %s", f)
		}
	}
	return nil
}
