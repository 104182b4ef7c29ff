/*
File   : lox/internal/interpreter/value.go
Package: interpreter

Runtime values are plain Go values behind the `any` tagged union spec.md
section 3 describes: nil, bool, float64, string, *Function, or *Native.
Stringify/IsTruthy/IsEqual play the role go-mix's GoMixObject.ToString()
and friends play in objects/objects.go, generalized from a per-type
method into a type-switch over the Lox value set — Lox has a fixed,
closed set of runtime kinds, so a switch is the natural Go shape instead
of an interface with one implementation per kind.
*/
package interpreter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// IsTruthy implements Lox truthiness: nil and false are falsy, every
// other value — including 0 and "" — is truthy.
func IsTruthy(v any) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// IsEqual implements Lox's `==`. Values of different runtime kinds are
// never equal; numbers compare by IEEE-754 equality (so NaN != NaN);
// functions compare by declaration identity (pointer equality, since two
// distinct declarations are never the same *Function even with the same
// name).
func IsEqual(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case *Function:
		return a == b
	case *Native:
		return a == b
	default:
		return false
	}
}

// Stringify renders a Lox value in its `print`/display form (spec.md
// section 4.4): numbers drop a trailing ".0" for integral values,
// strings print raw (no quotes), functions print as "<fn NAME>".
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return formatNumber(val)
	case string:
		return val
	case *Function:
		return fmt.Sprintf("<fn %s>", val.Name())
	case *Native:
		return fmt.Sprintf("<native %s>", val.Name)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func formatNumber(n float64) string {
	if math.IsInf(n, 1) {
		return "inf"
	}
	if math.IsInf(n, -1) {
		return "-inf"
	}
	if math.IsNaN(n) {
		return "nan"
	}
	text := strconv.FormatFloat(n, 'f', -1, 64)
	return text
}

// TypeName names a value's runtime kind for error messages.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case *Function, *Native:
		return "function"
	default:
		return "value"
	}
}

// repeatString implements the `*` overload between a string and a
// number: repeat the string floor(n) times, empty for non-positive n.
func repeatString(s string, n float64) string {
	count := int(math.Floor(n))
	if count <= 0 {
		return ""
	}
	return strings.Repeat(s, count)
}
