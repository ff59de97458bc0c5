package ast

import (
	"fmt"
	"strings"

	"github.com/quill-lang/quill/internal/intern"
)

// Dump renders parsed items as an indented tree. The output is meant for
// humans inspecting parser output, not for round-tripping.
func Dump(items []Item, in *intern.Interner) string {
	d := &dumper{in: in}
	for _, item := range items {
		d.item(item)
	}
	return d.b.String()
}

// DumpExpr renders a single expression tree.
func DumpExpr(e Expr, in *intern.Interner) string {
	d := &dumper{in: in}
	d.expr(e)
	return d.b.String()
}

type dumper struct {
	b      strings.Builder
	in     *intern.Interner
	indent int
}

func (d *dumper) line(format string, args ...any) {
	for i := 0; i < d.indent; i++ {
		d.b.WriteString("  ")
	}
	fmt.Fprintf(&d.b, format, args...)
	d.b.WriteByte('\n')
}

func (d *dumper) nest(f func()) {
	d.indent++
	f()
	d.indent--
}

func (d *dumper) typ(t *NamedType) string {
	if t == nil {
		return "_"
	}
	name := d.in.Resolve(t.Name.Sym)
	if len(t.Args.Args) == 0 {
		return name
	}
	parts := make([]string, len(t.Args.Args))
	for i, a := range t.Args.Args {
		if a.Wildcard {
			parts[i] = "_"
		} else {
			parts[i] = d.typ(a.Type)
		}
	}
	return name + "[" + strings.Join(parts, ", ") + "]"
}

func (d *dumper) generics(params []GenericParam) string {
	if len(params) == 0 {
		return ""
	}
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = d.in.Resolve(p.Name.Sym)
	}
	return "[" + strings.Join(names, ", ") + "]"
}

func (d *dumper) item(item Item) {
	switch it := item.(type) {
	case *Function:
		d.line("Function %s%s", d.in.Resolve(it.Name.Sym), d.generics(it.Generics))
		d.nest(func() {
			for _, p := range it.Params {
				if p.Default != nil {
					d.line("param %s %s =", d.in.Resolve(p.Name.Sym), d.typ(p.Ty))
					d.nest(func() { d.expr(p.Default) })
				} else {
					d.line("param %s %s", d.in.Resolve(p.Name.Sym), d.typ(p.Ty))
				}
			}
			if it.ReturnType != nil {
				d.line("returns %s", d.typ(it.ReturnType))
			}
			if it.Body != nil {
				d.expr(it.Body)
			}
		})
	case *Class:
		d.line("Class %s%s", d.in.Resolve(it.Name.Sym), d.generics(it.Generics))
		d.nest(func() {
			for _, f := range it.Fields {
				d.field(f)
			}
		})
	case *Enum:
		d.line("Enum %s%s", d.in.Resolve(it.Name.Sym), d.generics(it.Generics))
		d.nest(func() {
			for _, v := range it.Variants {
				if v.HasFields {
					d.line("variant %s", d.in.Resolve(v.Name.Sym))
					d.nest(func() {
						for _, f := range v.Fields {
							d.field(f)
						}
					})
				} else {
					d.line("variant %s", d.in.Resolve(v.Name.Sym))
				}
			}
		})
	case *Impl:
		if it.Trait != nil {
			d.line("Impl%s %s for %s", d.generics(it.Generics), d.typ(it.Trait), d.typ(&it.Target))
		} else {
			d.line("Impl%s %s", d.generics(it.Generics), d.typ(&it.Target))
		}
		d.nest(func() {
			for _, inner := range it.Items {
				d.item(inner)
			}
		})
	case *Use:
		parts := make([]string, len(it.Path))
		for i, n := range it.Path {
			parts[i] = d.in.Resolve(n.Sym)
		}
		path := strings.Join(parts, ".")
		if it.Wildcard {
			path += "._"
		}
		d.line("Use %s", path)
	}
}

func (d *dumper) field(f ClassField) {
	if f.Default != nil {
		d.line("field %s %s =", d.in.Resolve(f.Name.Sym), d.typ(f.Ty))
		d.nest(func() { d.expr(f.Default) })
		return
	}
	d.line("field %s %s", d.in.Resolve(f.Name.Sym), d.typ(f.Ty))
}

func (d *dumper) expr(e Expr) {
	switch ex := e.(type) {
	case *Invokable:
		if len(ex.Generics.Args) > 0 {
			nt := &NamedType{Name: TypeName{Sym: ex.Name.Sym}, Args: ex.Generics}
			d.line("Invokable %s", d.typ(nt))
		} else {
			d.line("Invokable %s", d.in.Resolve(ex.Name.Sym))
		}
	case *Literal:
		if ex.IsString {
			d.line("Literal %q", d.in.Resolve(ex.Str))
		} else {
			d.line("Literal %s", ex.Number.String())
		}
	case *ParenCall:
		d.line("ParenCall")
		d.nest(func() {
			d.expr(ex.Receiver)
			for _, a := range ex.Args {
				d.arg(a)
			}
		})
	case *MemberCall:
		d.line("MemberCall .%s", d.in.Resolve(ex.Member.Name.Sym))
		d.nest(func() { d.expr(ex.Receiver) })
	case *Operation:
		d.line("Operation %s", d.in.Resolve(ex.OpSym))
		d.nest(func() {
			d.expr(ex.Lhs)
			d.expr(ex.Rhs)
		})
	case *ShortCircuitOp:
		d.line("ShortCircuit %s", ex.Op)
		d.nest(func() {
			d.expr(ex.Lhs)
			d.expr(ex.Rhs)
		})
	case *Assignment:
		d.line("Assignment")
		d.nest(func() {
			d.expr(ex.Lhs)
			d.expr(ex.Rhs)
		})
	case *TypeAscription:
		d.line("TypeAscription %s", d.typ(&ex.Ty))
		d.nest(func() { d.expr(ex.Expr) })
	case *Statement:
		d.line("Statement")
		d.nest(func() { d.expr(ex.Inner) })
	case *Lambda:
		args := make([]string, len(ex.Args))
		for i, a := range ex.Args {
			if a.Ty != nil {
				args[i] = d.in.Resolve(a.Name.Sym) + " " + d.typ(a.Ty)
			} else {
				args[i] = d.in.Resolve(a.Name.Sym)
			}
		}
		d.line("Lambda \\%s", strings.Join(args, ", "))
		d.nest(func() { d.expr(ex.Body) })
	case *Block:
		if ex.EndsWithSemicolon {
			d.line("Block (semicolon)")
		} else {
			d.line("Block")
		}
		d.nest(func() {
			for _, inner := range ex.Exprs {
				d.expr(inner)
			}
		})
	case *Parens:
		d.line("Tuple")
		d.nest(func() {
			for _, a := range ex.Exprs {
				d.arg(a)
			}
		})
	case *Empty:
		d.line("Empty")
	case *Declaration:
		d.line("Declaration %s %s", ex.DeclKind, d.in.Resolve(ex.Name.Sym))
		d.nest(func() { d.expr(ex.Value) })
	case *Match:
		d.line("Match")
		d.nest(func() {
			d.expr(ex.Scrutinee)
			for _, arm := range ex.Arms {
				d.line("arm")
				d.nest(func() {
					d.pattern(arm.Pattern)
					d.expr(arm.Expr)
				})
			}
		})
	}
}

func (d *dumper) arg(a FunCallArgument) {
	if a.Name != nil {
		d.line("arg %s =", d.in.Resolve(a.Name.Sym))
		d.nest(func() { d.expr(a.Value) })
		return
	}
	d.expr(a.Value)
}

func (d *dumper) pattern(p Pattern) {
	switch pat := p.(type) {
	case *WildcardPat:
		d.line("Wildcard")
	case *BindingPat:
		d.line("Binding %s", d.in.Resolve(pat.Name.Sym))
	case *LiteralPat:
		if pat.Lit.IsString {
			d.line("LiteralPat %q", d.in.Resolve(pat.Lit.Str))
		} else {
			d.line("LiteralPat %s", pat.Lit.Number.String())
		}
	case *RangePat:
		if pat.Inclusive {
			d.line("Range ..=")
		} else {
			d.line("Range ..")
		}
		d.nest(func() {
			d.pattern(pat.From)
			d.pattern(pat.To)
		})
	case *ClassPat:
		d.line("ClassPattern %s", d.in.Resolve(pat.Name.Sym))
		d.nest(func() {
			for _, f := range pat.Fields {
				d.pattern(f)
			}
		})
	case *EnumPat:
		d.line("EnumPattern .%s", d.in.Resolve(pat.Name.Sym))
		if pat.Payload != nil {
			d.nest(func() { d.pattern(pat.Payload) })
		}
	case *AscriptionPat:
		d.line("PatternAscription %s", d.typ(&pat.Ty))
		d.nest(func() { d.pattern(pat.Pat) })
	case *OrPat:
		d.line("OrPattern")
		d.nest(func() {
			for _, alt := range pat.Alts {
				d.pattern(alt)
			}
		})
	case *GuardPat:
		d.line("Guard")
		d.nest(func() {
			d.pattern(pat.Pat)
			d.expr(pat.Guard)
		})
	}
}
