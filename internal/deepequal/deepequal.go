// Package deepequal compares values structurally for result assertions.
package deepequal

import (
	"slices"
	"sort"
	"unicode/utf16"

	"github.com/funvibe/refinedtype/internal/value"
)

// Equal reports whether b matches a. Inspection follows a:
//
//   - arrays match arrays of the same length whose elements pair up after
//     both sides are sorted by the default ordering, so element order is
//     ignored;
//   - plain records match any b holding an equal value under each of a's
//     keys, where a key b lacks (or a b that is not a record) reads as
//     undefined. Keys only b has are not checked, so Equal(a, b) may differ
//     from Equal(b, a);
//   - maps and sets are checked the same directional way over a's entries;
//   - dates match by instant, regexps by source and flags, boxed wrappers by
//     the wrapped value;
//   - everything else uses strict equality, where NaN never matches.
func Equal(a, b value.Value) bool {
	if a == nil {
		a = value.Undef
	}
	if b == nil {
		b = value.Undef
	}

	switch aVal := a.(type) {
	case *value.Array:
		bVal, ok := b.(*value.Array)
		if !ok || aVal.Len() != bVal.Len() {
			return false
		}
		aSorted, bSorted := sorted(aVal.Elements), sorted(bVal.Elements)
		for i := range aSorted {
			if !Equal(aSorted[i], bSorted[i]) {
				return false
			}
		}
		return true

	case *value.Object:
		bVal, _ := b.(*value.Object)
		for _, f := range aVal.Fields {
			var bField value.Value = value.Undef
			if bVal != nil {
				if v, found := bVal.Get(f.Key); found {
					bField = v
				}
			}
			if !Equal(f.Value, bField) {
				return false
			}
		}
		return true

	case *value.Map:
		bVal, ok := b.(*value.Map)
		if !ok {
			return false
		}
		for _, e := range aVal.Entries() {
			bEntry, found := bVal.Get(e.Key)
			if !found || !Equal(e.Value, bEntry) {
				return false
			}
		}
		return true

	case *value.Set:
		bVal, ok := b.(*value.Set)
		if !ok {
			return false
		}
		for _, v := range aVal.Values() {
			if !bVal.Has(v) {
				return false
			}
		}
		return true

	case *value.Date:
		bVal, ok := b.(*value.Date)
		return ok && aVal.Time.Equal(bVal.Time)

	case *value.RegExp:
		bVal, ok := b.(*value.RegExp)
		return ok && aVal.Source == bVal.Source && aVal.Flags == bVal.Flags

	case *value.BoxedString:
		bVal, ok := b.(*value.BoxedString)
		return ok && aVal.Value == bVal.Value
	case *value.BoxedNumber:
		bVal, ok := b.(*value.BoxedNumber)
		return ok && aVal.Value == bVal.Value
	case *value.BoxedBoolean:
		bVal, ok := b.(*value.BoxedBoolean)
		return ok && aVal.Value == bVal.Value
	}

	return value.StrictEquals(a, b)
}

// sorted returns a copy of vs in default order: ascending by string
// conversion compared in UTF-16 code units, undefined last, ties kept in
// input order.
func sorted(vs []value.Value) []value.Value {
	type keyed struct {
		v     value.Value
		key   []uint16
		undef bool
	}
	ks := make([]keyed, len(vs))
	for i, v := range vs {
		if v == nil {
			v = value.Undef
		}
		_, undef := v.(*value.Undefined)
		ks[i] = keyed{v: v, key: utf16.Encode([]rune(value.ToString(v))), undef: undef}
	}
	sort.SliceStable(ks, func(i, j int) bool {
		if ks[i].undef || ks[j].undef {
			return !ks[i].undef && ks[j].undef
		}
		return slices.Compare(ks[i].key, ks[j].key) < 0
	})
	out := make([]value.Value, len(ks))
	for i, k := range ks {
		out[i] = k.v
	}
	return out
}
