// Package classify assigns refined type labels to values and answers
// collection-level questions built on them.
package classify

import (
	"github.com/funvibe/refinedtype/internal/config"
	"github.com/funvibe/refinedtype/internal/value"
)

// Label is a refined type label.
type Label string

const (
	Number    Label = config.NativeNumber
	NaN       Label = config.LabelNaN
	Infinity  Label = config.LabelInfinity
	Boolean   Label = config.NativeBoolean
	String    Label = config.NativeString
	Undefined Label = config.NativeUndefined
	Symbol    Label = config.NativeSymbol
	Function  Label = config.NativeFunction
	BigInt    Label = config.NativeBigInt
	Array     Label = config.LabelArray
	Null      Label = config.LabelNull
	Date      Label = config.LabelDate
	Map       Label = config.LabelMap
	Set       Label = config.LabelSet
	Promise   Label = config.LabelPromise
	RegExp    Label = config.LabelRegExp
	Object    Label = config.NativeObject
)

// Labels is the full enumeration in lexicographic order.
var Labels = []Label{
	Infinity, NaN, Array, BigInt, Boolean, Date, Function, Map, Null,
	Number, Object, Promise, RegExp, Set, String, Symbol, Undefined,
}

// Classify returns the refined type label of v. The rules are ordered and
// the first match wins, so an array is never reported as object.
func Classify(v value.Value) Label {
	if v == nil {
		return Undefined
	}

	switch v.NativeType() {
	case config.NativeNumber:
		n := v.(*value.Number)
		switch {
		case n.IsNaN():
			return NaN
		case n.IsInf():
			return Infinity
		}
		return Number

	case config.NativeObject:
		switch v.(type) {
		case *value.Array:
			return Array
		case *value.Null:
			return Null
		case *value.Date:
			return Date
		case *value.Map:
			return Map
		case *value.Set:
			return Set
		case *value.Promise:
			return Promise
		case *value.RegExp:
			return RegExp
		}
		return Object
	}

	return Label(v.NativeType())
}

// ClassifyAll labels every element, preserving length and order.
func ClassifyAll(vs []value.Value) []Label {
	labels := make([]Label, len(vs))
	for i, v := range vs {
		labels[i] = Classify(v)
	}
	return labels
}

// AllSameNativeType reports whether every element shares the first
// element's native tag. Refined distinctions are ignored: NaN and 1 agree,
// a boxed string and a string do not. Vacuously true when empty.
func AllSameNativeType(vs []value.Value) bool {
	if len(vs) == 0 {
		return true
	}
	first := value.NativeTypeOf(vs[0])
	for _, v := range vs[1:] {
		if value.NativeTypeOf(v) != first {
			return false
		}
	}
	return true
}

// AllUniqueRefinedTypes reports whether no two elements share a refined
// label. True when empty.
func AllUniqueRefinedTypes(vs []value.Value) bool {
	labels := ClassifyAll(vs)
	seen := make(map[Label]struct{}, len(labels))
	for _, l := range labels {
		seen[l] = struct{}{}
	}
	return len(seen) == len(labels)
}
