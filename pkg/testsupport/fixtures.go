package testsupport

import (
	"encoding/json"
	"os"
)

// LoadFixture reads a test fixture file, typically a markdown article under a
// package's testdata directory.
func LoadFixture(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// LoadGolden unmarshals a JSON golden file into v.
func LoadGolden(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
