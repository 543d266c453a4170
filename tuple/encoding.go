package tuple

import (
	"bytes"
	"fmt"

	"github.com/amp-labs/amp-tuple/validate"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// Tuples encode as a JSON or YAML sequence of their components, in
// declaration order. Only mutable tuples decode; an immutable tuple is
// obtained by decoding into a mutable one and calling Freeze. A null
// document leaves a mutable tuple unchanged.

//nolint:gochecknoglobals
var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

func marshalJSON[T any](values ...T) ([]byte, error) {
	return jsonAPI.Marshal(values)
}

func isJSONNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

func isYAMLNull(node *yaml.Node) bool {
	return node == nil || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null")
}

func unmarshalJSON[T any](data []byte, n int) ([]T, error) {
	var values []T

	if err := jsonAPI.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decoding tuple: %w", err)
	}

	if err := validate.ExactLen("decoded tuple", len(values), n); err != nil {
		return nil, err
	}

	return values, nil
}

func unmarshalYAML[T any](node *yaml.Node, n int) ([]T, error) {
	var values []T

	if err := node.Decode(&values); err != nil {
		return nil, fmt.Errorf("decoding tuple: %w", err)
	}

	if err := validate.ExactLen("decoded tuple", len(values), n); err != nil {
		return nil, err
	}

	return values, nil
}
