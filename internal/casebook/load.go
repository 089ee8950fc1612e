package casebook

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed tutorial.yaml
var tutorialYAML []byte

// Default returns the embedded tutorial casebook.
func Default() (*Book, error) {
	return Decode(bytes.NewReader(tutorialYAML), "embedded:tutorial.yaml")
}

// LoadFile reads and decodes the casebook at path.
func LoadFile(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open casebook: %w", err)
	}
	defer f.Close()

	return Decode(f, path)
}

// Decode reads one casebook from r. Unknown keys are rejected so that a
// misspelled "expect" does not silently turn a case into an error case.
func Decode(r io.Reader, source string) (*Book, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var book Book
	if err := dec.Decode(&book); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: %w", source, ErrEmptyBook)
		}
		return nil, fmt.Errorf("%s: decode casebook: %w", source, err)
	}
	if len(book.Cases) == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrEmptyBook)
	}
	book.Source = source
	if book.Name == "" {
		book.Name = source
	}

	return &book, nil
}
