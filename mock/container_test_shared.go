package mock

import (
	"fmt"
	"io"

	"github.com/centraunit/injector"
)

// Leaf services. Each carries a field so distinct instances never share an address.
type A struct{ Name string }

func (a *A) Print(w io.Writer) { fmt.Fprintln(w, "A") }

type B struct{ Name string }

func (b *B) Print(w io.Writer) { fmt.Fprintln(w, "B") }

type C struct{ Name string }

func (c *C) Print(w io.Writer) { fmt.Fprintln(w, "C") }

// Composite services
type D struct {
	A *A
	C *C
}

func NewD(a *A, c *C) *D { return &D{A: a, C: c} }

func (d *D) Print(w io.Writer) {
	fmt.Fprintln(w, "D")
	d.A.Print(w)
	d.C.Print(w)
	fmt.Fprintln(w)
}

type E struct {
	A *A
	B *B
}

func NewE(a *A, b *B) *E { return &E{A: a, B: b} }

func (e *E) Print(w io.Writer) {
	fmt.Fprintln(w, "E")
	e.A.Print(w)
	e.B.Print(w)
	fmt.Fprintln(w)
}

type F struct {
	B *B
	C *C
}

func NewF(b *B, c *C) *F { return &F{B: b, C: c} }

func (f *F) Print(w io.Writer) {
	fmt.Fprintln(w, "F")
	f.B.Print(w)
	f.C.Print(w)
	fmt.Fprintln(w)
}

type G struct {
	A *A
	B *B
	C *C
}

func NewG(a *A, b *B, c *C) *G { return &G{A: a, B: b, C: c} }

func (g *G) Print(w io.Writer) {
	fmt.Fprintln(w, "G")
	g.A.Print(w)
	g.B.Print(w)
	g.C.Print(w)
	fmt.Fprintln(w)
}

type H struct {
	D *D
	E *E
	F *F
	G *G
}

func NewH(d *D, e *E, f *F, g *G) *H { return &H{D: d, E: e, F: f, G: g} }

func (h *H) Print(w io.Writer) {
	fmt.Fprintln(w, "H")
	h.D.Print(w)
	h.E.Print(w)
	h.F.Print(w)
	h.G.Print(w)
	fmt.Fprintln(w)
}

// Circular dependency test types
type I struct{ J *J }

func NewI(j *J) *I { return &I{J: j} }

type J struct{ I *I }

func NewJ(i *I) *J { return &J{I: i} }

// Services returns the registrations for A through J.
func Services() []injector.Registration {
	return []injector.Registration{
		injector.Service[*A](),
		injector.Service[*B](),
		injector.Service[*C](),
		injector.Service[*D](NewD),
		injector.Service[*E](NewE),
		injector.Service[*F](NewF),
		injector.Service[*G](NewG),
		injector.Service[*H](NewH),
		injector.Service[*I](NewI),
		injector.Service[*J](NewJ),
	}
}
