package value

// StrictEquals compares without coercion. Primitives compare by value,
// NaN is unequal to everything including itself, and all object-tagged
// values, symbols and functions compare by identity.
func StrictEquals(a, b Value) bool {
	if an, ok := a.(*Number); ok {
		bn, ok := b.(*Number)
		return ok && an.Value == bn.Value
	}
	return SameValueZero(a, b)
}

// SameValueZero is StrictEquals except that NaN equals NaN. It is the key
// equality of Map and Set.
func SameValueZero(a, b Value) bool {
	a, b = orUndefined(a), orUndefined(b)
	if a.Kind() != b.Kind() {
		return false
	}

	switch av := a.(type) {
	case *Number:
		bv := b.(*Number)
		return av.Value == bv.Value || (av.IsNaN() && bv.IsNaN())
	case *BigInt:
		return av.Value.Cmp(b.(*BigInt).Value) == 0
	case *Boolean:
		return av.Value == b.(*Boolean).Value
	case *String:
		return av.Value == b.(*String).Value
	case *Undefined, *Null:
		return true
	case *Symbol:
		return av.ID == b.(*Symbol).ID
	case *Function:
		return av.ID == b.(*Function).ID
	case *Promise:
		return av.ID == b.(*Promise).ID
	}

	// Arrays, records, maps, sets, dates, regexps and boxed wrappers
	return a == b
}
