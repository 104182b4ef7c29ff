/*
File   : lox/internal/interpreter/visit_expr.go
Package: interpreter

Expression evaluation, grounded on go-mix/eval/evaluator.go's
VisitXExpr dispatch shape but carrying Lox's own operator semantics
(spec.md section 4.4): truthiness, per-kind equality, the `+` and `*`
operator overloads, and short-circuit logical operators.
*/
package interpreter

import (
	"fmt"

	"github.com/tzcl/lox/internal/ast"
	"github.com/tzcl/lox/internal/token"
)

// VisitLiteralExpr implements ast.ExprVisitor.
func (in *Interpreter) VisitLiteralExpr(e *ast.Literal) (any, error) {
	return e.Value, nil
}

// VisitVariableExpr implements ast.ExprVisitor.
func (in *Interpreter) VisitVariableExpr(e *ast.Variable) (any, error) {
	return in.lookupVariable(e.ID(), e.Name)
}

// VisitGroupExpr implements ast.ExprVisitor.
func (in *Interpreter) VisitGroupExpr(e *ast.Group) (any, error) {
	return in.evaluate(e.Expression)
}

// VisitAssignExpr implements ast.ExprVisitor.
func (in *Interpreter) VisitAssignExpr(e *ast.Assign) (any, error) {
	value, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if err := in.assignVariable(e.ID(), e.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

// VisitUnaryExpr implements ast.ExprVisitor: `!` negates truthiness,
// `-` negates a number (anything else is a runtime type error).
func (in *Interpreter) VisitUnaryExpr(e *ast.Unary) (any, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.Bang:
		return !IsTruthy(right), nil
	case token.Minus:
		n, ok := right.(float64)
		if !ok {
			return nil, runtimeTypeError(e.Operator, "operand must be a number")
		}
		return -n, nil
	}
	return nil, runtimeTypeError(e.Operator, "unknown unary operator")
}

// VisitLogicalExpr implements ast.ExprVisitor's short-circuit `and`/`or`
// (spec.md section 4.4): the operator's own truthy/falsy operand is
// returned as-is, not coerced to a boolean.
func (in *Interpreter) VisitLogicalExpr(e *ast.Logical) (any, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Operator.Kind == token.Or {
		if IsTruthy(left) {
			return left, nil
		}
	} else {
		if !IsTruthy(left) {
			return left, nil
		}
	}
	return in.evaluate(e.Right)
}

// VisitBinaryExpr implements ast.ExprVisitor. The comma operator
// evaluates both sides for effect and yields the right-hand value.
func (in *Interpreter) VisitBinaryExpr(e *ast.Binary) (any, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.Comma:
		return right, nil
	case token.EqualEqual:
		return IsEqual(left, right), nil
	case token.BangEqual:
		return !IsEqual(left, right), nil
	case token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		return in.compare(e.Operator, left, right)
	case token.Plus:
		return in.add(e.Operator, left, right)
	case token.Minus:
		ln, lok := left.(float64)
		rn, rok := right.(float64)
		if !lok || !rok {
			return nil, runtimeTypeError(e.Operator, "operands must be two numbers")
		}
		return ln - rn, nil
	case token.Slash:
		ln, lok := left.(float64)
		rn, rok := right.(float64)
		if !lok || !rok {
			return nil, runtimeTypeError(e.Operator, "operands must be two numbers")
		}
		if rn == 0 {
			return nil, runtimeTypeError(e.Operator, "division by zero")
		}
		return ln / rn, nil
	case token.Star:
		return in.multiply(e.Operator, left, right)
	}
	return nil, runtimeTypeError(e.Operator, "unknown binary operator")
}

// add implements `+`: number+number adds, string+string concatenates,
// and (the extension spec.md section 4.4 calls out) a string operand
// paired with a number coerces the number to its display form and
// concatenates — in either operand order.
func (in *Interpreter) add(op token.Token, left, right any) (any, error) {
	if ln, ok := left.(float64); ok {
		if rn, ok := right.(float64); ok {
			return ln + rn, nil
		}
	}
	if ls, ok := left.(string); ok {
		if rs, ok := right.(string); ok {
			return ls + rs, nil
		}
		if rn, ok := right.(float64); ok {
			return ls + Stringify(rn), nil
		}
	}
	if rn, ok := right.(string); ok {
		if ln, ok := left.(float64); ok {
			return Stringify(ln) + rn, nil
		}
	}
	return nil, runtimeTypeError(op, "operands must be two numbers or two strings")
}

// multiply implements `*`: number*number multiplies, and (the extension
// spec.md section 4.4 calls out) string*number repeats the string floor
// of the number times, in either operand order.
func (in *Interpreter) multiply(op token.Token, left, right any) (any, error) {
	if ln, ok := left.(float64); ok {
		if rn, ok := right.(float64); ok {
			return ln * rn, nil
		}
		if rs, ok := right.(string); ok {
			return repeatString(rs, ln), nil
		}
	}
	if ls, ok := left.(string); ok {
		if rn, ok := right.(float64); ok {
			return repeatString(ls, rn), nil
		}
	}
	return nil, runtimeTypeError(op, "operands must be two numbers, or a string and a number")
}

// compare implements `<`, `<=`, `>`, `>=`: two numbers compare
// numerically, two strings compare lexicographically (the same
// ordering natives.go's `min` uses), anything else is a type error.
func (in *Interpreter) compare(op token.Token, left, right any) (any, error) {
	if ln, lok := left.(float64); lok {
		rn, rok := right.(float64)
		if !rok {
			return nil, runtimeTypeError(op, "operands must be two numbers or two strings")
		}
		switch op.Kind {
		case token.Greater:
			return ln > rn, nil
		case token.GreaterEqual:
			return ln >= rn, nil
		case token.Less:
			return ln < rn, nil
		case token.LessEqual:
			return ln <= rn, nil
		}
		return nil, runtimeTypeError(op, "unknown comparison operator")
	}
	if ls, lok := left.(string); lok {
		rs, rok := right.(string)
		if !rok {
			return nil, runtimeTypeError(op, "operands must be two numbers or two strings")
		}
		switch op.Kind {
		case token.Greater:
			return ls > rs, nil
		case token.GreaterEqual:
			return ls >= rs, nil
		case token.Less:
			return ls < rs, nil
		case token.LessEqual:
			return ls <= rs, nil
		}
		return nil, runtimeTypeError(op, "unknown comparison operator")
	}
	return nil, runtimeTypeError(op, "operands must be two numbers or two strings")
}

// VisitCallExpr implements ast.ExprVisitor: evaluates the callee and
// arguments, checks arity, and invokes the callable (spec.md section
// 4.5). Calling a non-callable value is a runtime error.
func (in *Interpreter) VisitCallExpr(e *ast.Call) (any, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	arguments := make([]any, 0, len(e.Arguments))
	for _, arg := range e.Arguments {
		value, err := in.evaluate(arg)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, value)
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, &RuntimeError{Token: e.Paren, Message: "can only call functions and classes."}
	}
	if len(arguments) != callable.Arity() {
		return nil, &RuntimeError{
			Token: e.Paren,
			Message: fmt.Sprintf("%s: expected %d arguments but got %d",
				callableName(callable), callable.Arity(), len(arguments)),
		}
	}
	return callable.Call(in, arguments)
}

// VisitConditionalExpr implements ast.ExprVisitor's `cond ? then : else`.
func (in *Interpreter) VisitConditionalExpr(e *ast.Conditional) (any, error) {
	cond, err := in.evaluate(e.Cond)
	if err != nil {
		return nil, err
	}
	if IsTruthy(cond) {
		return in.evaluate(e.Then)
	}
	return in.evaluate(e.Else)
}

// VisitFunctionExpr implements ast.ExprVisitor, closing the anonymous
// function literal over the interpreter's currently active environment.
func (in *Interpreter) VisitFunctionExpr(e *ast.FunctionExpr) (any, error) {
	return NewAnonymousFunction(e.Params, e.Body, in.env), nil
}

func runtimeTypeError(op token.Token, message string) *RuntimeError {
	return &RuntimeError{Token: op, Message: message}
}
