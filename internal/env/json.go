package env

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriteJSON writes e as a single JSON object: {"KEY": "value", ...}.
func WriteJSON(e Env, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(e); err != nil {
		return fmt.Errorf("encode env json: %w", err)
	}
	return nil
}

// ParseJSON parses a JSON object of string values into an Env.
func ParseJSON(r io.Reader) (Env, error) {
	var result Env
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&result); err != nil {
		return nil, fmt.Errorf("decode env json: %w", err)
	}
	if result == nil {
		result = Env{}
	}
	return result, nil
}

// ReadFile reads an environment file. Files ending in .json are parsed with
// ParseJSON; anything else is read as dotenv.
func ReadFile(path string) (Env, error) {
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		return ReadDotenv(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open env file: %w", err)
	}
	defer f.Close()

	e, err := ParseJSON(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return e, nil
}
