package languages

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies the variant stored in a Value.
type Kind int

const (
	// KindInvalid is the zero Kind; only the zero Value has it.
	KindInvalid Kind = iota
	KindString
	KindInteger
	KindFloat
	KindBoolean
	KindMapping
	KindSequence
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "invalid"
	}
}

// Value is a closed tagged union over the types a language file can hold:
// string, integer, float, boolean, nested mapping and sequence.
// A Value is immutable after construction; accessors for the wrong variant
// return ErrTypeMismatch instead of panicking.
type Value struct {
	kind     Kind
	str      string
	integer  int64
	float    float64
	boolean  bool
	mapping  map[string]Value
	sequence []Value
}

// NewString creates a string Value.
func NewString(s string) Value {
	return Value{kind: KindString, str: s}
}

// NewInteger creates an integer Value.
func NewInteger(i int64) Value {
	return Value{kind: KindInteger, integer: i}
}

// NewFloat creates a float Value.
func NewFloat(f float64) Value {
	return Value{kind: KindFloat, float: f}
}

// NewBoolean creates a boolean Value.
func NewBoolean(b bool) Value {
	return Value{kind: KindBoolean, boolean: b}
}

// NewMapping creates a mapping Value. The input map is copied so later
// mutations of it do not leak into the Value.
func NewMapping(m map[string]Value) Value {
	return Value{kind: KindMapping, mapping: maps.Clone(m)}
}

// NewSequence creates a sequence Value. The input slice is copied so later
// mutations of it do not leak into the Value.
func NewSequence(s []Value) Value {
	return Value{kind: KindSequence, sequence: slices.Clone(s)}
}

// newValue converts a decoded parser tree into a Value. The decoders feed it
// the concrete types encoding/json, BurntSushi/toml and yaml.v3 produce.
func newValue(raw any) (Value, error) {
	switch v := raw.(type) {
	case string:
		return NewString(v), nil
	case bool:
		return NewBoolean(v), nil
	case int:
		return NewInteger(int64(v)), nil
	case int64:
		return NewInteger(v), nil
	case uint64:
		return NewInteger(int64(v)), nil
	case float32:
		return NewFloat(float64(v)), nil
	case float64:
		return NewFloat(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return NewInteger(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return Value{}, errors.Join(ErrUnsupportedValue, err)
		}
		return NewFloat(f), nil
	case map[string]any:
		mapping := make(map[string]Value, len(v))
		for key, elem := range v {
			val, err := newValue(elem)
			if err != nil {
				return Value{}, err
			}
			mapping[key] = val
		}
		return Value{kind: KindMapping, mapping: mapping}, nil
	case []any:
		sequence := make([]Value, 0, len(v))
		for _, elem := range v {
			val, err := newValue(elem)
			if err != nil {
				return Value{}, err
			}
			sequence = append(sequence, val)
		}
		return Value{kind: KindSequence, sequence: sequence}, nil
	case []map[string]any:
		// BurntSushi/toml decodes an array of tables into this shape.
		sequence := make([]Value, 0, len(v))
		for _, elem := range v {
			val, err := newValue(elem)
			if err != nil {
				return Value{}, err
			}
			sequence = append(sequence, val)
		}
		return Value{kind: KindSequence, sequence: sequence}, nil
	default:
		return Value{}, fmt.Errorf("%w: unexpected type %T", ErrUnsupportedValue, raw)
	}
}

// Kind returns the variant stored in the Value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsString reports whether the Value holds a string.
func (v Value) IsString() bool { return v.kind == KindString }

// IsInteger reports whether the Value holds an integer.
func (v Value) IsInteger() bool { return v.kind == KindInteger }

// IsFloat reports whether the Value holds a float.
func (v Value) IsFloat() bool { return v.kind == KindFloat }

// IsBoolean reports whether the Value holds a boolean.
func (v Value) IsBoolean() bool { return v.kind == KindBoolean }

// IsMapping reports whether the Value holds a nested mapping.
func (v Value) IsMapping() bool { return v.kind == KindMapping }

// IsSequence reports whether the Value holds a sequence.
func (v Value) IsSequence() bool { return v.kind == KindSequence }

// GetString returns the string content or ErrTypeMismatch.
func (v Value) GetString() (string, error) {
	if v.kind != KindString {
		return "", v.mismatch(KindString)
	}
	return v.str, nil
}

// GetInteger returns the integer content or ErrTypeMismatch.
func (v Value) GetInteger() (int64, error) {
	if v.kind != KindInteger {
		return 0, v.mismatch(KindInteger)
	}
	return v.integer, nil
}

// GetFloat returns the float content or ErrTypeMismatch.
func (v Value) GetFloat() (float64, error) {
	if v.kind != KindFloat {
		return 0, v.mismatch(KindFloat)
	}
	return v.float, nil
}

// GetBoolean returns the boolean content or ErrTypeMismatch.
func (v Value) GetBoolean() (bool, error) {
	if v.kind != KindBoolean {
		return false, v.mismatch(KindBoolean)
	}
	return v.boolean, nil
}

// GetMapping returns a copy of the nested mapping or ErrTypeMismatch.
func (v Value) GetMapping() (map[string]Value, error) {
	if v.kind != KindMapping {
		return nil, v.mismatch(KindMapping)
	}
	return maps.Clone(v.mapping), nil
}

// GetSequence returns a copy of the sequence or ErrTypeMismatch.
func (v Value) GetSequence() ([]Value, error) {
	if v.kind != KindSequence {
		return nil, v.mismatch(KindSequence)
	}
	return slices.Clone(v.sequence), nil
}

func (v Value) mismatch(want Kind) error {
	return fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, want, v.kind)
}

// Equal reports structural equality: same variant and same contents.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindInteger:
		return v.integer == other.integer
	case KindFloat:
		return v.float == other.float
	case KindBoolean:
		return v.boolean == other.boolean
	case KindMapping:
		if len(v.mapping) != len(other.mapping) {
			return false
		}
		for key, elem := range v.mapping {
			otherElem, ok := other.mapping[key]
			if !ok || !elem.Equal(otherElem) {
				return false
			}
		}
		return true
	case KindSequence:
		return slices.EqualFunc(v.sequence, other.sequence, Value.Equal)
	default:
		return false
	}
}

// String renders the Value for display and debugging. Mapping keys are sorted
// so the output is deterministic.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInteger:
		return strconv.FormatInt(v.integer, 10)
	case KindFloat:
		return strconv.FormatFloat(v.float, 'g', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.boolean)
	case KindSequence:
		parts := make([]string, len(v.sequence))
		for i, elem := range v.sequence {
			parts[i] = elem.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMapping:
		keys := slices.Sorted(maps.Keys(v.mapping))
		parts := make([]string, len(keys))
		for i, key := range keys {
			parts[i] = key + ": " + v.mapping[key].String()
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	default:
		return ""
	}
}

// MarshalJSON re-encodes the Value so decoded bundles can be dumped back to
// JSON for client-side consumption.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindInteger:
		return json.Marshal(v.integer)
	case KindFloat:
		return json.Marshal(v.float)
	case KindBoolean:
		return json.Marshal(v.boolean)
	case KindMapping:
		return json.Marshal(v.mapping)
	case KindSequence:
		return json.Marshal(v.sequence)
	default:
		return nil, fmt.Errorf("%w: unknown kind %d", ErrFailedToMarshalJSON, v.kind)
	}
}
