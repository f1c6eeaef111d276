package config

// Native type tags, as reported by a value's NativeType().
const (
	NativeNumber    = "number"
	NativeBigInt    = "bigint"
	NativeBoolean   = "boolean"
	NativeString    = "string"
	NativeUndefined = "undefined"
	NativeSymbol    = "symbol"
	NativeFunction  = "function"
	NativeObject    = "object"
)

// Refined type labels that are not also native tags.
const (
	LabelNaN      = "NaN"
	LabelInfinity = "Infinity"
	LabelArray    = "array"
	LabelNull     = "null"
	LabelDate     = "date"
	LabelMap      = "map"
	LabelSet      = "set"
	LabelPromise  = "promise"
	LabelRegExp   = "regexp"
)

// Harness operation names
const (
	OpClassify              = "classify"
	OpClassifyAll           = "classifyAll"
	OpAllSameNativeType     = "allSameNativeType"
	OpAllUniqueRefinedTypes = "allUniqueRefinedTypes"
	OpCountByRefinedType    = "countByRefinedType"
	OpDeepEqual             = "deepEqual"
)

// NoColorEnv disables coloured output when present, whatever its value.
// See https://no-color.org/
const NoColorEnv = "NO_COLOR"
