package testkit

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"lumen/internal/ast"
	"lumen/internal/nast"
	"lumen/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on the modules
// parsed from sf:
// 1) every module span is non-empty and within the file content
// 2) modules appear in source order without overlapping
// 3) every declaration and definition lies inside its module
func CheckSpanInvariants(mods []*ast.Module, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, m := range mods {
		if m == nil {
			return fmt.Errorf("nil module at %d", i)
		}
		sp := m.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("module %s: empty span %v", m.Name.Text, sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("module %s: span file mismatch: got=%d want=%d", m.Name.Text, sp.File, sf.ID)
		}
		if sp.End > lenContent {
			return fmt.Errorf("module %s: span end beyond content: %d > %d", m.Name.Text, sp.End, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("module %s: span %v overlaps the previous module", m.Name.Text, sp)
		}
		prevEnd = sp.End

		for _, d := range m.Decls {
			if err := within(m, "declaration", d.Loc()); err != nil {
				return err
			}
		}
		for _, d := range m.Defs {
			if err := within(m, "definition", d.Loc()); err != nil {
				return err
			}
		}
	}
	return nil
}

func within(m *ast.Module, what string, sp source.Span) error {
	if sp.File != m.Span.File {
		return fmt.Errorf("module %s: %s span file mismatch: %v", m.Name.Text, what, sp)
	}
	if sp.Start < m.Span.Start || sp.End > m.Span.End {
		return fmt.Errorf("module %s: %s span %v is outside module span %v", m.Name.Text, what, sp, m.Span)
	}
	return nil
}

// CheckResolved reports an error when any name of p was printed without a
// stamp, i.e. an occurrence was left unresolved.
func CheckResolved(p *nast.Program) error {
	if p == nil {
		return fmt.Errorf("nil program")
	}
	out := nast.Print(p)
	if i := strings.Index(out, "/?"); i >= 0 {
		start := max(0, i-20)
		return fmt.Errorf("unresolved name near %q", out[start:i+2])
	}
	return nil
}
