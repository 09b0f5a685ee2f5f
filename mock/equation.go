package mock

import (
	"errors"
	"fmt"
	"io"

	"github.com/centraunit/injector"
)

// ErrUnknownOperator is returned for an operator without an equation.
var ErrUnknownOperator = errors.New("unknown operator")

// ErrDivisionByZero is returned when the second operand of '/' is zero.
var ErrDivisionByZero = errors.New("division by zero")

type Operator struct{ Value rune }

type FirstNumber struct{ Value int }

type SecondNumber struct{ Value int }

// EquationBuilder maps its operator onto a binary function.
type EquationBuilder struct {
	Operator *Operator
}

func NewEquationBuilder(op *Operator) (*EquationBuilder, error) {
	if _, ok := operations[op.Value]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, op.Value)
	}
	return &EquationBuilder{Operator: op}, nil
}

var operations = map[rune]func(x, y int) (int, error){
	'+': func(x, y int) (int, error) { return x + y, nil },
	'-': func(x, y int) (int, error) { return x - y, nil },
	'*': func(x, y int) (int, error) { return x * y, nil },
	'/': func(x, y int) (int, error) {
		if y == 0 {
			return 0, ErrDivisionByZero
		}
		return x / y, nil
	},
}

func (b *EquationBuilder) Equation() func(x, y int) (int, error) {
	return operations[b.Operator.Value]
}

type EquationExecutor struct {
	First  *FirstNumber
	Second *SecondNumber
}

func NewEquationExecutor(first *FirstNumber, second *SecondNumber) *EquationExecutor {
	return &EquationExecutor{First: first, Second: second}
}

func (e *EquationExecutor) Execute(fn func(x, y int) (int, error)) (int, error) {
	return fn(e.First.Value, e.Second.Value)
}

// EquationRunner evaluates "first op second".
type EquationRunner struct {
	Builder  *EquationBuilder
	Executor *EquationExecutor
}

func NewEquationRunner(builder *EquationBuilder, executor *EquationExecutor) *EquationRunner {
	return &EquationRunner{Builder: builder, Executor: executor}
}

// Result returns the value of the equation.
func (r *EquationRunner) Result() (int, error) {
	return r.Executor.Execute(r.Builder.Equation())
}

// Run writes the equation and its result to w.
func (r *EquationRunner) Run(w io.Writer) error {
	result, err := r.Result()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%d %c %d = %d\n",
		r.Executor.First.Value, r.Builder.Operator.Value, r.Executor.Second.Value, result)
	return err
}

// EquationServices returns the registrations for an equation over x op y.
func EquationServices(op rune, x, y int) []injector.Registration {
	return []injector.Registration{
		injector.Service[*Operator](func() *Operator { return &Operator{Value: op} }),
		injector.Service[*FirstNumber](func() *FirstNumber { return &FirstNumber{Value: x} }),
		injector.Service[*SecondNumber](func() *SecondNumber { return &SecondNumber{Value: y} }),
		injector.Service[*EquationBuilder](NewEquationBuilder),
		injector.Service[*EquationExecutor](NewEquationExecutor),
		injector.Service[*EquationRunner](NewEquationRunner),
	}
}
