package tuple

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/amp-labs/amp-tuple/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestJSON_Marshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "int pair", value: NewInt2(1, 2), expected: `[1,2]`},
		{name: "mutable bool triple", value: NewMutableBool3(true, false, true), expected: `[true,false,true]`},
		{name: "string quadruple", value: NewString4("a", "b", "c", "d"), expected: `["a","b","c","d"]`},
		{name: "big decimal pair", value: NewBigDecimal2(dec("2.50"), dec("-1")), expected: `["2.5","-1"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

func TestJSON_MarshalNaNFails(t *testing.T) {
	t.Parallel()

	_, err := json.Marshal(NewDouble2(math.NaN(), 1))
	require.Error(t, err)
}

func TestJSON_Unmarshal(t *testing.T) {
	t.Parallel()

	t.Run("into a mutable tuple", func(t *testing.T) {
		t.Parallel()

		m := FillMutableInt2(0)

		require.NoError(t, json.Unmarshal([]byte(`[3, 4]`), m))
		assert.Equal(t, "int2(x=3, y=4)", m.String())
	})

	t.Run("nested field", func(t *testing.T) {
		t.Parallel()

		var doc struct {
			Origin *MutableDouble3 `json:"origin"`
		}

		require.NoError(t, json.Unmarshal([]byte(`{"origin": [0.5, 1, -2]}`), &doc))
		require.NotNil(t, doc.Origin)
		assert.True(t, doc.Origin.Freeze().Equals(NewDouble3(0.5, 1, -2)))
	})

	t.Run("big decimal round trip", func(t *testing.T) {
		t.Parallel()

		original := NewMutableBigDecimal2(dec("2.00"), dec("-0.125"))

		data, err := json.Marshal(original)
		require.NoError(t, err)

		decoded := FillMutableBigDecimal2(decimal.Zero)
		require.NoError(t, json.Unmarshal(data, decoded))
		assert.True(t, original.Equals(decoded))
	})

	t.Run("wrong length leaves the tuple unchanged", func(t *testing.T) {
		t.Parallel()

		m := NewMutableInt4(1, 2, 3, 4)

		for _, input := range []string{`[1]`, `[1, 2, 3, 4, 5]`, `[]`} {
			err := json.Unmarshal([]byte(input), m)
			require.ErrorIs(t, err, errors.ErrInvalidArgument, input)
		}

		assert.Equal(t, []int32{1, 2, 3, 4}, m.Slice())
	})

	t.Run("wrong element type", func(t *testing.T) {
		t.Parallel()

		m := NewMutableInt2(1, 2)

		require.Error(t, json.Unmarshal([]byte(`["a", "b"]`), m))
		assert.Equal(t, []int32{1, 2}, m.Slice())
	})
}

func TestYAML_RoundTrip(t *testing.T) {
	t.Parallel()

	data, err := yaml.Marshal(NewInt2(1, 2))
	require.NoError(t, err)
	assert.Equal(t, "- 1\n- 2\n", string(data))

	m := FillMutableInt2(0)
	require.NoError(t, yaml.Unmarshal(data, m))
	assert.True(t, m.Freeze().Equals(NewInt2(1, 2)))
}

func TestYAML_NestedDocument(t *testing.T) {
	t.Parallel()

	var doc struct {
		Name  string          `yaml:"name"`
		Scale *MutableDouble2 `yaml:"scale"`
		Tags  *MutableString3 `yaml:"tags"`
		Box   *MutableLong4   `yaml:"box"`
		Flags *MutableBool2   `yaml:"flags"`
	}

	input := `
name: sprite
scale: [2, 0.5]
tags:
  - a
  - b
  - c
box: [0, 0, 640, 480]
flags: [true, false]
`

	require.NoError(t, yaml.Unmarshal([]byte(input), &doc))

	assert.Equal(t, "sprite", doc.Name)
	assert.Equal(t, "double2(x=2, y=0.5)", doc.Scale.String())
	assert.Equal(t, "string3(x=a, y=b, z=c)", doc.Tags.String())
	assert.Equal(t, "long4(x=0, y=0, z=640, w=480)", doc.Box.String())
	assert.Equal(t, "bool2(x=true, y=false)", doc.Flags.String())

	out, err := yaml.Marshal(map[string]any{"box": doc.Box.Freeze()})
	require.NoError(t, err)
	assert.Equal(t, "box:\n    - 0\n    - 0\n    - 640\n    - 480\n", string(out))
}

func TestYAML_WrongLength(t *testing.T) {
	t.Parallel()

	m := NewMutableString2("keep", "me")

	err := yaml.Unmarshal([]byte(`[a, b, c]`), m)
	require.ErrorIs(t, err, errors.ErrInvalidArgument)
	assert.Equal(t, "string2(x=keep, y=me)", m.String())
}

func TestEncoding_FieldsHeldByValue(t *testing.T) {
	t.Parallel()

	type route struct {
		From Int2        `json:"from" yaml:"from"`
		To   MutableInt2 `json:"to" yaml:"to"`
	}

	r := route{From: *NewInt2(1, 2), To: *NewMutableInt2(3, 4)}

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		for name, marshal := range map[string]func(any) ([]byte, error){
			"encoding/json": json.Marshal,
			"jsoniter":      jsonAPI.Marshal,
		} {
			data, err := marshal(r)
			require.NoError(t, err, name)
			assert.JSONEq(t, `{"from":[1,2],"to":[3,4]}`, string(data), name)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		data, err := yaml.Marshal(r)
		require.NoError(t, err)

		var decoded map[string][]int

		require.NoError(t, yaml.Unmarshal(data, &decoded))
		assert.Equal(t, map[string][]int{"from": {1, 2}, "to": {3, 4}}, decoded)
	})

	t.Run("mutable field decodes back", func(t *testing.T) {
		t.Parallel()

		var back struct {
			To MutableInt2 `json:"to"`
		}

		require.NoError(t, json.Unmarshal([]byte(`{"from":[1,2],"to":[3,4]}`), &back))
		assert.True(t, back.To.Equals(NewMutableInt2(3, 4)))
	})
}

func TestEncoding_NullLeavesTupleUnchanged(t *testing.T) {
	t.Parallel()

	type holder struct {
		P MutableInt2 `json:"p" yaml:"p"`
	}

	decoders := map[string]func([]byte, any) error{
		"encoding/json": json.Unmarshal,
		"jsoniter":      jsonAPI.Unmarshal,
		"yaml":          yaml.Unmarshal,
	}

	docs := map[string]string{
		"encoding/json": `{"p":null}`,
		"jsoniter":      `{"p":null}`,
		"yaml":          "p: null\n",
	}

	for name, decode := range decoders {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var h holder

			h.P.SetAll(5, 6)

			require.NoError(t, decode([]byte(docs[name]), &h))
			assert.Equal(t, "int2(x=5, y=6)", h.P.String())
		})
	}

	t.Run("direct calls", func(t *testing.T) {
		t.Parallel()

		m := NewMutableLong3(1, 2, 3)

		require.NoError(t, m.UnmarshalJSON([]byte(" null ")))
		require.NoError(t, m.UnmarshalYAML(&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}))
		assert.Equal(t, "long3(x=1, y=2, z=3)", m.String())
	})
}
