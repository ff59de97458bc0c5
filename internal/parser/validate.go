package parser

import (
	"fmt"

	"github.com/quill-lang/quill/internal/ast"
)

// The validator walks the parsed items and fails on the first semantic
// rule violation. The per-site forbidden kind sets below differ on
// purpose; they encode grammar decisions, not a shared notion of
// "statement-like".

type placeMode int

const (
	placeOther placeMode = iota
	placeExpr
)

func validateItems(items []ast.Item) error {
	for _, item := range items {
		if err := validateItem(item); err != nil {
			return err
		}
	}
	return nil
}

func validateItem(item ast.Item) error {
	switch it := item.(type) {
	case *ast.Function:
		return validateFunction(it, true)
	case *ast.Class:
		return validateFields(it.Fields)
	case *ast.Enum:
		for _, v := range it.Variants {
			if err := validateFields(v.Fields); err != nil {
				return err
			}
		}
		return nil
	case *ast.Impl:
		return validateImpl(it)
	case *ast.Use:
		return nil
	}
	return nil
}

func validateFunction(f *ast.Function, needsBody bool) error {
	defaultFound := false
	for _, param := range f.Params {
		if param.Ty == nil {
			return &Error{Msg: "argument doesn't specify its type", Span: param.Sp}
		}
		if param.Default != nil {
			defaultFound = true
			if err := validateExpr(param.Default, placeOther); err != nil {
				return err
			}
		} else if defaultFound {
			return &Error{
				Msg:  "an argument without a default can't appear after an argument with a default",
				Span: param.Sp,
			}
		}
	}

	if f.ReturnType == nil {
		return &Error{Msg: "function doesn't have a return type", Span: f.Sp}
	}

	if f.Body == nil {
		if needsBody {
			return &Error{Msg: "function doesn't have a body", Span: f.Sp}
		}
		return nil
	}
	return validateExpr(f.Body, placeOther)
}

func validateFields(fields []ast.ClassField) error {
	for _, f := range fields {
		if f.Default == nil {
			continue
		}
		if err := validateExpr(f.Default, placeOther); err != nil {
			return err
		}
	}
	return nil
}

func validateImpl(impl *ast.Impl) error {
	for _, item := range impl.Items {
		fun, ok := item.(*ast.Function)
		if !ok {
			var what string
			switch item.Kind() {
			case ast.KindClass:
				what = "classes"
			case ast.KindEnum:
				what = "enums"
			case ast.KindImpl:
				what = "impl blocks"
			case ast.KindUse:
				what = "use items"
			default:
				what = "this"
			}
			return &Error{Msg: "impl blocks can't contain " + what, Span: item.Span()}
		}
		if err := validateFunction(fun, true); err != nil {
			return err
		}
	}
	return nil
}

func validateExpr(e ast.Expr, mode placeMode) error {
	if mode == placeExpr {
		switch x := e.(type) {
		case *ast.Invokable:
			if err := checkPlaceInvokable(x); err != nil {
				return err
			}
		case *ast.MemberCall:
			if err := checkPlaceInvokable(&x.Member); err != nil {
				return err
			}
		default:
			return &Error{
				Msg:  fmt.Sprintf("this is not a place expression, so it can't be assigned to: %s", e.Kind()),
				Span: e.Span(),
			}
		}
	}

	switch x := e.(type) {
	case *ast.Invokable, *ast.Literal, *ast.Empty:
		return nil

	case *ast.ParenCall:
		return validateParenCall(x)

	case *ast.MemberCall:
		if err := validateExpr(x.Receiver, placeOther); err != nil {
			return err
		}
		if kind := x.Receiver.Kind(); forbiddenReceiver(kind) {
			return &Error{
				Msg:  fmt.Sprintf("invalid member receiver: %s", kind),
				Span: x.Receiver.Span(),
			}
		}
		return nil

	case *ast.Operation:
		if err := ensureOperationOperand(x.Lhs, x); err != nil {
			return err
		}
		if err := ensureOperationOperand(x.Rhs, x); err != nil {
			return err
		}
		if err := validateExpr(x.Lhs, placeOther); err != nil {
			return err
		}
		return validateExpr(x.Rhs, placeOther)

	case *ast.ShortCircuitOp:
		if err := ensureShortCircuitOperand(x.Lhs, x.Op); err != nil {
			return err
		}
		if err := ensureShortCircuitOperand(x.Rhs, x.Op); err != nil {
			return err
		}
		if err := validateExpr(x.Lhs, placeOther); err != nil {
			return err
		}
		return validateExpr(x.Rhs, placeOther)

	case *ast.Assignment:
		if err := validateExpr(x.Lhs, placeExpr); err != nil {
			return err
		}
		return validateExpr(x.Rhs, placeOther)

	case *ast.TypeAscription:
		return validateExpr(x.Expr, placeOther)

	case *ast.Statement:
		return validateExpr(x.Inner, placeOther)

	case *ast.Lambda:
		return validateExpr(x.Body, placeOther)

	case *ast.Block:
		for _, inner := range x.Exprs {
			if err := validateExpr(inner, placeOther); err != nil {
				return err
			}
		}
		return nil

	case *ast.Parens:
		for _, arg := range x.Exprs {
			if arg.Name != nil {
				return &Error{Msg: "named argument not allowed in tuple", Span: arg.Sp}
			}
			if err := validateExpr(arg.Value, placeOther); err != nil {
				return err
			}
		}
		return nil

	case *ast.Declaration:
		return validateExpr(x.Value, placeOther)

	case *ast.Match:
		if err := validateExpr(x.Scrutinee, placeOther); err != nil {
			return err
		}
		for _, arm := range x.Arms {
			if err := validatePattern(arm.Pattern); err != nil {
				return err
			}
			if err := validateExpr(arm.Expr, placeOther); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}

func checkPlaceInvokable(inv *ast.Invokable) error {
	if len(inv.Generics.Args) != 0 {
		return &Error{Msg: "no generics were expected here", Span: inv.Generics.Span}
	}
	switch inv.Name.Kind {
	case ast.NameOperator:
		return &Error{Msg: "expected identifier, got operator", Span: inv.Name.Span}
	case ast.NameType:
		return &Error{Msg: "expected identifier, got type", Span: inv.Name.Span}
	}
	return nil
}

func validateParenCall(call *ast.ParenCall) error {
	if err := validateExpr(call.Receiver, placeOther); err != nil {
		return err
	}
	if kind := call.Receiver.Kind(); forbiddenReceiver(kind) {
		return &Error{
			Msg:  fmt.Sprintf("invalid function call receiver: %s", kind),
			Span: call.Receiver.Span(),
		}
	}

	unnamedFound := false
	for _, arg := range call.Args {
		if arg.Name != nil {
			if unnamedFound {
				return &Error{Msg: "named argument after unnamed argument", Span: arg.Sp}
			}
		} else {
			unnamedFound = true
		}
		if err := validateExpr(arg.Value, placeOther); err != nil {
			return err
		}
	}
	return nil
}

func forbiddenReceiver(kind ast.ExprKind) bool {
	switch kind {
	case ast.KindOperation, ast.KindAssignment, ast.KindTypeAscription,
		ast.KindStatement, ast.KindEmpty, ast.KindShortCircuitOp,
		ast.KindDeclaration:
		return true
	}
	return false
}

const blockRequiredMsg = "evaluation order must be disambiguated with a block, e.g. `a + {b * c}`"

// ensureOperationOperand rejects a nested operation with a different
// operator. User-defined operators carry no relative precedence, so
// mixing them needs explicit grouping.
func ensureOperationOperand(e ast.Expr, parent *ast.Operation) error {
	if op, ok := e.(*ast.Operation); ok && op.OpSym != parent.OpSym {
		return &Error{Msg: blockRequiredMsg, Span: e.Span()}
	}
	switch kind := e.Kind(); kind {
	case ast.KindStatement, ast.KindShortCircuitOp, ast.KindAssignment,
		ast.KindEmpty, ast.KindDeclaration:
		return &Error{Msg: fmt.Sprintf("invalid operand: %s", kind), Span: e.Span()}
	}
	return nil
}

func ensureShortCircuitOperand(e ast.Expr, parent ast.ScOperator) error {
	if op, ok := e.(*ast.ShortCircuitOp); ok && op.Op != parent {
		return &Error{Msg: blockRequiredMsg, Span: e.Span()}
	}
	switch kind := e.Kind(); kind {
	case ast.KindStatement, ast.KindAssignment, ast.KindEmpty,
		ast.KindDeclaration:
		return &Error{Msg: fmt.Sprintf("invalid operand: %s", kind), Span: e.Span()}
	}
	return nil
}

func validatePattern(p ast.Pattern) error {
	switch pat := p.(type) {
	case *ast.RangePat:
		if err := validatePattern(pat.From); err != nil {
			return err
		}
		return validatePattern(pat.To)
	case *ast.ClassPat:
		for _, f := range pat.Fields {
			if err := validatePattern(f); err != nil {
				return err
			}
		}
		return nil
	case *ast.EnumPat:
		if pat.Payload != nil {
			return validatePattern(pat.Payload)
		}
		return nil
	case *ast.AscriptionPat:
		return validatePattern(pat.Pat)
	case *ast.OrPat:
		for _, alt := range pat.Alts {
			if err := validatePattern(alt); err != nil {
				return err
			}
		}
		return nil
	case *ast.GuardPat:
		if err := validatePattern(pat.Pat); err != nil {
			return err
		}
		return validateExpr(pat.Guard, placeOther)
	}
	return nil
}
