// Package gen renders the per-element-type aliases and constructors of
// package tuple from a YAML table of kinds.
package gen

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"slices"

	"github.com/amp-labs/amp-tuple/errors"
	"gopkg.in/yaml.v3"
)

//nolint:gochecknoglobals
var identifier = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)

// Kind describes one element type.
type Kind struct {
	// Name prefixes the generated identifiers, e.g. "Int" gives Int2 and NewInt2.
	Name string `yaml:"name"`

	// Type is the Go element type, e.g. "int32" or "*big.Int".
	Type string `yaml:"type"`

	// Semantics is the elem type that gives the element its behavior.
	Semantics string `yaml:"semantics"`

	// TypeParams declares the type parameters of generic kinds, without
	// brackets, e.g. "T elem.Value[T]". Empty for concrete kinds.
	TypeParams string `yaml:"typeParams,omitempty"`

	// TypeArgs lists the arguments matching TypeParams, e.g. "T".
	TypeArgs string `yaml:"typeArgs,omitempty"`

	// Doc is a short description used in doc comments, e.g. "32-bit integer".
	Doc string `yaml:"doc"`
}

// Config is the content of a kinds file.
type Config struct {
	Package string   `yaml:"package"`
	Imports []string `yaml:"imports"`
	Arities []int    `yaml:"arities"`
	Kinds   []Kind   `yaml:"kinds"`
}

// Load reads and validates the kinds file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading kinds file: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a kinds file. Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config

	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing kinds file: %w", errors.ErrInvalidArgument, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports every problem in the configuration at once, prefixed
// with how many were found.
func (c *Config) Validate() error {
	var problems errors.Collection

	if c.Package == "" {
		problems.Add(invalid("package name is required"))
	}

	if len(c.Arities) == 0 {
		problems.Add(invalid("at least one arity is required"))
	}

	for i, arity := range c.Arities {
		if arity < 2 || arity > 4 {
			problems.Add(invalid("arity %d is not supported, use 2, 3 or 4", arity))
		}

		if slices.Contains(c.Arities[:i], arity) {
			problems.Add(invalid("arity %d is listed twice", arity))
		}
	}

	if len(c.Kinds) == 0 {
		problems.Add(invalid("at least one kind is required"))
	}

	seen := make(map[string]bool, len(c.Kinds))

	for i, kind := range c.Kinds {
		if !identifier.MatchString(kind.Name) {
			problems.Add(invalid("kind %d: name %q is not an exported identifier", i, kind.Name))
		}

		if seen[kind.Name] {
			problems.Add(invalid("kind %d: name %q is listed twice", i, kind.Name))
		}

		seen[kind.Name] = true

		if kind.Type == "" {
			problems.Add(invalid("kind %q: type is required", kind.Name))
		}

		if kind.Semantics == "" {
			problems.Add(invalid("kind %q: semantics is required", kind.Name))
		}

		if (kind.TypeParams == "") != (kind.TypeArgs == "") {
			problems.Add(invalid("kind %q: typeParams and typeArgs must be set together", kind.Name))
		}
	}

	if !problems.HasError() {
		return nil
	}

	return fmt.Errorf("kinds file has %d problem(s): %w", problems.Len(), problems.GetError())
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{errors.ErrInvalidArgument}, args...)...)
}
