package value

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"unsafe"

	"github.com/funvibe/refinedtype/internal/config"
	"github.com/google/uuid"
)

// Number is a double-precision number, including NaN and the infinities.
type Number struct {
	Value float64
}

func (n *Number) Kind() Kind         { return NUMBER_VAL }
func (n *Number) NativeType() string { return config.NativeNumber }
func (n *Number) Inspect() string    { return formatNumber(n.Value) }
func (n *Number) Hash() uint32 {
	f := n.Value
	switch {
	case math.IsNaN(f):
		return 0x7ff80000
	case f == 0:
		// -0 and +0 are the same key
		return 0
	}
	bits := math.Float64bits(f)
	return uint32(bits ^ (bits >> 32))
}

// IsNaN reports whether n is the not-a-number sentinel.
func (n *Number) IsNaN() bool { return math.IsNaN(n.Value) }

// IsInf reports whether n is positive or negative infinity.
func (n *Number) IsInf() bool { return math.IsInf(n.Value, 0) }

// BigInt is an arbitrary-precision integer.
type BigInt struct {
	Value *big.Int
}

func (bi *BigInt) Kind() Kind         { return BIG_INT_VAL }
func (bi *BigInt) NativeType() string { return config.NativeBigInt }
func (bi *BigInt) Inspect() string    { return bi.Value.String() + "n" }
func (bi *BigInt) Hash() uint32       { return hashString(bi.Value.String()) }

// Boolean
type Boolean struct {
	Value bool
}

func (b *Boolean) Kind() Kind         { return BOOLEAN_VAL }
func (b *Boolean) NativeType() string { return config.NativeBoolean }
func (b *Boolean) Inspect() string    { return strconv.FormatBool(b.Value) }
func (b *Boolean) Hash() uint32 {
	if b.Value {
		return 1
	}
	return 0
}

// String is a primitive text value.
type String struct {
	Value string
}

func (s *String) Kind() Kind         { return STRING_VAL }
func (s *String) NativeType() string { return config.NativeString }
func (s *String) Inspect() string    { return strconv.Quote(s.Value) }
func (s *String) Hash() uint32       { return hashString(s.Value) }

// Undefined is the absent-binding sentinel.
type Undefined struct{}

func (u *Undefined) Kind() Kind         { return UNDEFINED_VAL }
func (u *Undefined) NativeType() string { return config.NativeUndefined }
func (u *Undefined) Inspect() string    { return "undefined" }
func (u *Undefined) Hash() uint32       { return 2 }

// Null is the absent-object sentinel. Its native tag is object.
type Null struct{}

func (n *Null) Kind() Kind         { return NULL_VAL }
func (n *Null) NativeType() string { return config.NativeObject }
func (n *Null) Inspect() string    { return "null" }
func (n *Null) Hash() uint32       { return 3 }

var (
	Undef = &Undefined{}
	Nul   = &Null{}
	True  = &Boolean{Value: true}
	False = &Boolean{Value: false}
)

// Symbol is a unique token. Two symbols are the same only if they share an ID,
// whatever their descriptions.
type Symbol struct {
	ID          uuid.UUID
	Description string
}

func NewSymbol(description string) *Symbol {
	return &Symbol{ID: uuid.New(), Description: description}
}

func (s *Symbol) Kind() Kind         { return SYMBOL_VAL }
func (s *Symbol) NativeType() string { return config.NativeSymbol }
func (s *Symbol) Inspect() string    { return fmt.Sprintf("Symbol(%s)", s.Description) }
func (s *Symbol) Hash() uint32       { return s.ID.ID() }

// Function is an opaque callable. Only its identity and name are observable.
type Function struct {
	ID   uuid.UUID
	Name string
}

func NewFunction(name string) *Function {
	return &Function{ID: uuid.New(), Name: name}
}

func (f *Function) Kind() Kind         { return FUNCTION_VAL }
func (f *Function) NativeType() string { return config.NativeFunction }
func (f *Function) Inspect() string {
	if f.Name == "" {
		return "[Function (anonymous)]"
	}
	return "[Function: " + f.Name + "]"
}
func (f *Function) Hash() uint32 { return f.ID.ID() }

// BoxedString wraps text in an object. Its native tag is object, not string.
type BoxedString struct {
	Value string
}

func (b *BoxedString) Kind() Kind         { return BOXED_STRING_VAL }
func (b *BoxedString) NativeType() string { return config.NativeObject }
func (b *BoxedString) Inspect() string    { return "[String: " + strconv.Quote(b.Value) + "]" }
func (b *BoxedString) Hash() uint32       { return hashIdentity(unsafe.Pointer(b)) }

// BoxedNumber wraps a number in an object.
type BoxedNumber struct {
	Value float64
}

func (b *BoxedNumber) Kind() Kind         { return BOXED_NUMBER_VAL }
func (b *BoxedNumber) NativeType() string { return config.NativeObject }
func (b *BoxedNumber) Inspect() string    { return "[Number: " + formatNumber(b.Value) + "]" }
func (b *BoxedNumber) Hash() uint32       { return hashIdentity(unsafe.Pointer(b)) }

// BoxedBoolean wraps a boolean in an object.
type BoxedBoolean struct {
	Value bool
}

func (b *BoxedBoolean) Kind() Kind         { return BOXED_BOOLEAN_VAL }
func (b *BoxedBoolean) NativeType() string { return config.NativeObject }
func (b *BoxedBoolean) Inspect() string    { return "[Boolean: " + strconv.FormatBool(b.Value) + "]" }
func (b *BoxedBoolean) Hash() uint32       { return hashIdentity(unsafe.Pointer(b)) }

// Convenience constructors

func NewNumber(f float64) *Number          { return &Number{Value: f} }
func NewString(s string) *String           { return &String{Value: s} }
func NewBigInt(i *big.Int) *BigInt         { return &BigInt{Value: i} }
func NewBoxedString(s string) *BoxedString { return &BoxedString{Value: s} }

func NewBoolean(b bool) *Boolean {
	if b {
		return True
	}
	return False
}

// formatNumber renders f the way the default string conversion does:
// shortest round-trip digits, exponent form outside [1e-6, 1e21).
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		// Go pads the exponent to two digits: 1e-07 -> 1e-7
		for i := 0; i < len(s); i++ {
			if s[i] == 'e' && i+2 < len(s) && s[i+2] == '0' && i+3 < len(s) {
				return s[:i+2] + s[i+3:]
			}
		}
		return s
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
