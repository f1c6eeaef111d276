package value

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"gopkg.in/yaml.v3"
)

// Fixture literals are written in YAML. Plain scalars, sequences and
// mappings become numbers, strings, booleans, null, dates, arrays and
// records; .nan and .inf give NaN and Infinity. Local tags cover the rest:
//
//	!undefined ~            !bigint 123          !symbol desc
//	!function name          !promise ~           !promise {state: fulfilled, value: 1}
//	!date 2024-01-02        !regexp /a/g         !boxed "12"
//	!map {a: 1}             !set [1, 2]          !null ~

// ErrUnknownTag is returned for a YAML tag that names no value variant.
var ErrUnknownTag = errors.New("unknown value tag")

// FromYAML decodes one YAML document into a Value. An empty document is
// undefined.
func FromYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}
	return FromYAMLNode(&doc)
}

// FromYAMLNode converts an already parsed node.
func FromYAMLNode(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case 0:
		return Undef, nil
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Undef, nil
		}
		return FromYAMLNode(node.Content[0])
	case yaml.AliasNode:
		return FromYAMLNode(node.Alias)
	case yaml.ScalarNode:
		return scalarFromYAML(node)
	case yaml.SequenceNode:
		return sequenceFromYAML(node)
	case yaml.MappingNode:
		return mappingFromYAML(node)
	}
	return nil, fmt.Errorf("line %d: unsupported YAML node kind %d", node.Line, node.Kind)
}

func scalarFromYAML(node *yaml.Node) (Value, error) {
	switch tag := node.ShortTag(); tag {
	case "!!null", "!null":
		return Nul, nil
	case "!undefined":
		return Undef, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return NewBoolean(b), nil
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return NewNumber(f), nil
	case "!!str":
		return NewString(node.Value), nil
	case "!!timestamp":
		var t time.Time
		if err := node.Decode(&t); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return NewDate(t), nil
	case "!date":
		t, err := parseDate(node.Value)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return NewDate(t), nil
	case "!bigint":
		i, ok := new(big.Int).SetString(node.Value, 0)
		if !ok {
			return nil, fmt.Errorf("line %d: invalid bigint %q", node.Line, node.Value)
		}
		return NewBigInt(i), nil
	case "!symbol":
		return NewSymbol(node.Value), nil
	case "!function":
		return NewFunction(node.Value), nil
	case "!promise":
		return NewPromise(PromisePending, nil), nil
	case "!regexp":
		re, err := ParseRegExp(node.Value)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return re, nil
	case "!boxed":
		return boxedFromYAML(node)
	default:
		return nil, fmt.Errorf("line %d: %w %q", node.Line, ErrUnknownTag, tag)
	}
}

// boxedFromYAML wraps the scalar the untagged node would have produced.
func boxedFromYAML(node *yaml.Node) (Value, error) {
	plain := *node
	plain.Tag = ""
	inner, err := scalarFromYAML(&plain)
	if err != nil {
		return nil, err
	}
	switch v := inner.(type) {
	case *String:
		return NewBoxedString(v.Value), nil
	case *Number:
		return &BoxedNumber{Value: v.Value}, nil
	case *Boolean:
		return &BoxedBoolean{Value: v.Value}, nil
	}
	return nil, fmt.Errorf("line %d: cannot box %s", node.Line, inner.Inspect())
}

func sequenceFromYAML(node *yaml.Node) (Value, error) {
	elements := make([]Value, len(node.Content))
	for i, child := range node.Content {
		v, err := FromYAMLNode(child)
		if err != nil {
			return nil, err
		}
		elements[i] = v
	}

	switch tag := node.ShortTag(); tag {
	case "!!seq":
		return &Array{Elements: elements}, nil
	case "!set":
		return NewSet(elements...), nil
	default:
		return nil, fmt.Errorf("line %d: %w %q", node.Line, ErrUnknownTag, tag)
	}
}

func mappingFromYAML(node *yaml.Node) (Value, error) {
	tag := node.ShortTag()
	switch tag {
	case "!!map", "!map", "!promise":
	default:
		return nil, fmt.Errorf("line %d: %w %q", node.Line, ErrUnknownTag, tag)
	}

	if tag == "!map" {
		m := NewMap()
		for i := 0; i+1 < len(node.Content); i += 2 {
			k, err := FromYAMLNode(node.Content[i])
			if err != nil {
				return nil, err
			}
			v, err := FromYAMLNode(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			m = m.Set(k, v)
		}
		return m, nil
	}

	fields := make(map[string]Value, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: record keys must be scalars", key.Line)
		}
		v, err := FromYAMLNode(node.Content[i+1])
		if err != nil {
			return nil, err
		}
		fields[key.Value] = v
	}

	if tag == "!promise" {
		return promiseFromFields(node, fields)
	}
	return NewObject(fields), nil
}

func promiseFromFields(node *yaml.Node, fields map[string]Value) (Value, error) {
	state := PromisePending
	if s, ok := fields["state"].(*String); ok {
		switch s.Value {
		case "pending":
		case "fulfilled":
			state = PromiseFulfilled
		case "rejected":
			state = PromiseRejected
		default:
			return nil, fmt.Errorf("line %d: unknown promise state %q", node.Line, s.Value)
		}
	}
	return NewPromise(state, fields["value"]), nil
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
