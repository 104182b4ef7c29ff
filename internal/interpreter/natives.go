/*
File   : lox/internal/interpreter/natives.go
Package: interpreter

The native function/constant set is Lox's domain stack (SPEC_FULL.md):
a couple of small built-ins exercised directly by the evaluator, grounded
on go-mix/objects/builtins.go's pattern of installing a handful of
globals ahead of running any user code.
*/
package interpreter

import "fmt"

func defineNatives(globals *Environment) {
	globals.Define("pi", 3.14)

	// min compares either two numbers or two strings (lexicographically),
	// matching spec.md section 8's `min("a","b")` scenario.
	globals.Define("min", &Native{
		Name:  "min",
		Arity: 2,
		Fn: func(args []any) (any, error) {
			switch a := args[0].(type) {
			case float64:
				b, ok := args[1].(float64)
				if !ok {
					return nil, fmt.Errorf("min: arguments must be the same type")
				}
				if a < b {
					return a, nil
				}
				return b, nil
			case string:
				b, ok := args[1].(string)
				if !ok {
					return nil, fmt.Errorf("min: arguments must be the same type")
				}
				if a < b {
					return a, nil
				}
				return b, nil
			default:
				return nil, fmt.Errorf("min: arguments must be numbers or strings")
			}
		},
	})
}
