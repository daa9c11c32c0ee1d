package env

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// ReadDotenv parses a .env file into an Env without touching the process
// environment.
func ReadDotenv(path string) (Env, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open env file: %w", err)
	}
	defer f.Close()

	parsed, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse env file %s: %w", path, err)
	}
	return Env(parsed), nil
}

// LoadDotenv reads each file (see ReadFile) and merges them in order onto
// base. Later files win over earlier ones and over base.
func LoadDotenv(base Env, paths ...string) (Env, error) {
	layers := make([]Env, 0, len(paths))
	for _, path := range paths {
		layer, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		layers = append(layers, layer)
	}
	return base.Merge(layers...), nil
}
