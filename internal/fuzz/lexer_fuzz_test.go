package fuzztests

import (
	"testing"

	"fortio.org/safecast"

	"lumen/internal/diag"
	"lumen/internal/lexer"
	"lumen/internal/source"
	"lumen/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clamp(input, maxFuzzInput)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.lm", input))
		size, err := safecast.Conv[uint32](len(file.Content))
		if err != nil {
			t.Fatal(err)
		}

		bag := diag.NewBag(64)
		toks := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}}).All()
		if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
			t.Fatalf("token stream does not end with EOF")
		}
		var prev uint32
		for _, tok := range toks {
			if tok.Span.Start < prev || tok.Span.End < tok.Span.Start || tok.Span.End > size {
				t.Fatalf("bad span %v for %s (prev end %d, size %d)", tok.Span, tok.Kind, prev, size)
			}
			prev = tok.Span.End
		}
	})
}
