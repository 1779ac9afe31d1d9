package naming

import (
	"fmt"

	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/source"
)

// ErrorKind classifies naming failures. All of them are fatal.
type ErrorKind uint8

const (
	UnboundName ErrorKind = iota + 1
	MultipleDefinition
	UnsatisfiedSignature
)

func (k ErrorKind) String() string {
	switch k {
	case UnboundName:
		return "UnboundName"
	case MultipleDefinition:
		return "MultipleDefinition"
	case UnsatisfiedSignature:
		return "UnsatisfiedSignature"
	default:
		return "ErrorKind(?)"
	}
}

// Error is the single error type produced by the naming phase.
//
// Span is the offending occurrence. Prev is the earlier definition for
// MultipleDefinition and the module whose signature is unsatisfied for
// UnsatisfiedSignature; it is invalid otherwise.
type Error struct {
	Kind      ErrorKind
	Namespace Namespace
	Name      string
	Span      source.Span
	Prev      source.Span
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnboundName:
		return fmt.Sprintf("unbound %s '%s'", e.Namespace, e.Name)
	case MultipleDefinition:
		return fmt.Sprintf("multiple definition of %s '%s'", e.Namespace, e.Name)
	case UnsatisfiedSignature:
		return fmt.Sprintf("value '%s' is declared in the signature but never defined", e.Name)
	default:
		return "naming error"
	}
}

func (e *Error) Code() diag.Code {
	switch e.Kind {
	case UnboundName:
		return diag.SemaUnboundName
	case MultipleDefinition:
		return diag.SemaMultipleDefinition
	case UnsatisfiedSignature:
		return diag.SemaUnsatisfiedSignature
	default:
		return diag.UnknownCode
	}
}

// Report emits e as an error diagnostic.
func (e *Error) Report(r diag.Reporter) {
	b := diag.ReportError(r, e.Code(), e.Span, e.Error())
	switch e.Kind {
	case MultipleDefinition:
		b.WithNote(e.Prev, "previous definition here")
	case UnsatisfiedSignature:
		b.WithNote(e.Prev, "required by the signature of this module")
	}
	b.Emit()
}

func unboundError(ns Namespace, name ast.Name) *Error {
	return &Error{Kind: UnboundName, Namespace: ns, Name: name.Text, Span: name.Span}
}
