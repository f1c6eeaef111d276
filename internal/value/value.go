package value

import (
	"hash/fnv"
	"unsafe"
)

// Kind is the representational category of a value: one per variant.
type Kind string

const (
	NUMBER_VAL        = "NUMBER"
	BIG_INT_VAL       = "BIG_INT"
	BOOLEAN_VAL       = "BOOLEAN"
	STRING_VAL        = "STRING"
	UNDEFINED_VAL     = "UNDEFINED"
	NULL_VAL          = "NULL"
	SYMBOL_VAL        = "SYMBOL"
	FUNCTION_VAL      = "FUNCTION"
	ARRAY_VAL         = "ARRAY"
	MAP_VAL           = "MAP"
	SET_VAL           = "SET"
	DATE_VAL          = "DATE"
	REGEXP_VAL        = "REGEXP"
	PROMISE_VAL       = "PROMISE"
	OBJECT_VAL        = "OBJECT"
	BOXED_STRING_VAL  = "BOXED_STRING"  // String wrapper object
	BOXED_NUMBER_VAL  = "BOXED_NUMBER"  // Number wrapper object
	BOXED_BOOLEAN_VAL = "BOXED_BOOLEAN" // Boolean wrapper object
)

// Value is a runtime datum. The set of implementations is closed: every
// variant lives in this package.
type Value interface {
	Kind() Kind
	// NativeType is the coarse tag: number, bigint, boolean, string,
	// undefined, symbol, function or object.
	NativeType() string
	Inspect() string
	Hash() uint32
}

// NativeTypeOf is NativeType with a nil interface read as undefined.
func NativeTypeOf(v Value) string {
	if v == nil {
		return Undef.NativeType()
	}
	return v.NativeType()
}

// orUndefined replaces a nil interface with Undefined.
func orUndefined(v Value) Value {
	if v == nil {
		return Undef
	}
	return v
}

// Helper for hashing strings
func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

// hashIdentity hashes reference-typed values by address.
func hashIdentity(p unsafe.Pointer) uint32 {
	u := uint64(uintptr(p))
	return uint32(u ^ (u >> 32))
}
