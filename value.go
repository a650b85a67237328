package sqltpl

import (
	"fmt"
	"reflect"
	"sort"
)

// Kind discriminates the variants of Value.
type Kind int

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindText
	KindBool
	KindList
	KindMap
	KindSkip
)

var kindNames = map[Kind]string{
	KindNull:  "null",
	KindInt:   "int",
	KindFloat: "float",
	KindText:  "string",
	KindBool:  "bool",
	KindList:  "list",
	KindMap:   "map",
	KindSkip:  "skip",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Value is a tagged union over the argument types the template engine accepts.
// Construct values through the package constructors; the zero Value is Null.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	b    bool
	list []Value
	m    []MapEntry
}

// MapEntry is a single column-to-value pair of a Map value. Entry order is
// preserved in the rendered output.
type MapEntry struct {
	Key   string
	Value Value
}

func (v Value) Kind() Kind { return v.kind }

func Null() Value { return Value{kind: KindNull} }

func Int(i int64) Value { return Value{kind: KindInt, i: i} }

func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

func String(s string) Value { return Value{kind: KindText, s: s} }

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

func List(vs ...Value) Value { return Value{kind: KindList, list: vs} }

func Map(es ...MapEntry) Value { return Value{kind: KindMap, m: es} }

// Entry builds a MapEntry for Map.
func Entry(key string, v Value) MapEntry {
	return MapEntry{Key: key, Value: v}
}

// Skip returns the skip sentinel: the marker that drops the conditional block
// surrounding its placeholder. It is not an ordinary value and never renders
// as SQL text. This accessor is the only way to produce it.
func Skip() Value { return Value{kind: KindSkip} }

// Of converts a native Go value into a Value. Maps get their keys sorted so
// the rendered output is deterministic; use Map directly to control entry
// order. Values pass through unchanged.
func Of(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return val, nil
	case bool:
		return Bool(val), nil
	case string:
		return String(val), nil
	case int:
		return Int(int64(val)), nil
	case int8:
		return Int(int64(val)), nil
	case int16:
		return Int(int64(val)), nil
	case int32:
		return Int(int64(val)), nil
	case int64:
		return Int(val), nil
	case uint:
		return Int(int64(val)), nil
	case uint8:
		return Int(int64(val)), nil
	case uint16:
		return Int(int64(val)), nil
	case uint32:
		return Int(int64(val)), nil
	case uint64:
		return Int(int64(val)), nil
	case float32:
		return Float(float64(val)), nil
	case float64:
		return Float(val), nil
	case []string:
		list := make([]Value, 0, len(val))
		for _, s := range val {
			list = append(list, String(s))
		}
		return List(list...), nil
	case []int:
		list := make([]Value, 0, len(val))
		for _, i := range val {
			list = append(list, Int(int64(i)))
		}
		return List(list...), nil
	case []any:
		list := make([]Value, 0, len(val))
		for _, el := range val {
			cv, err := Of(el)
			if err != nil {
				return Value{}, err
			}
			list = append(list, cv)
		}
		return List(list...), nil
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]MapEntry, 0, len(keys))
		for _, k := range keys {
			cv, err := Of(val[k])
			if err != nil {
				return Value{}, err
			}
			entries = append(entries, Entry(k, cv))
		}
		return Map(entries...), nil
	default:
		return Value{}, UnsupportedValueTypeError{Got: reflect.TypeOf(v).String()}
	}
}

// Args converts a list of native Go values with Of.
func Args(vs ...any) ([]Value, error) {
	out := make([]Value, 0, len(vs))
	for _, v := range vs {
		cv, err := Of(v)
		if err != nil {
			return nil, err
		}
		out = append(out, cv)
	}
	return out, nil
}
