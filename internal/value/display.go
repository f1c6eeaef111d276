package value

import (
	"strconv"
	"strings"
	"time"
)

// ToString is the default string conversion. It defines the default sort
// order of arrays and never fails.
func ToString(v Value) string {
	switch val := orUndefined(v).(type) {
	case *Number:
		return formatNumber(val.Value)
	case *BigInt:
		return val.Value.String()
	case *Boolean:
		return strconv.FormatBool(val.Value)
	case *String:
		return val.Value
	case *Undefined:
		return "undefined"
	case *Null:
		return "null"
	case *Symbol:
		return "Symbol(" + val.Description + ")"
	case *Function:
		return "function " + val.Name + "() { [native code] }"
	case *Array:
		parts := make([]string, len(val.Elements))
		for i, el := range val.Elements {
			switch orUndefined(el).(type) {
			case *Undefined, *Null:
				// rendered empty
			default:
				parts[i] = ToString(el)
			}
		}
		return strings.Join(parts, ",")
	case *Date:
		return val.Time.UTC().Format(time.RFC3339Nano)
	case *RegExp:
		return val.Inspect()
	case *Map:
		return "[object Map]"
	case *Set:
		return "[object Set]"
	case *Promise:
		return "[object Promise]"
	case *BoxedString:
		return val.Value
	case *BoxedNumber:
		return formatNumber(val.Value)
	case *BoxedBoolean:
		return strconv.FormatBool(val.Value)
	}
	return "[object Object]"
}

// Inspect is the literal-like debugging form of v, safe on a nil interface.
func Inspect(v Value) string {
	return orUndefined(v).Inspect()
}
