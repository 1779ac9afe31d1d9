package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestColored(t *testing.T) {
	orig, origNoColor := Version, color.NoColor
	t.Cleanup(func() { Version, color.NoColor = orig, origNoColor })

	color.NoColor = true
	tests := []string{"0.1.0-dev", "1.2.3", "1.2.3-rc.1+build.7", "nightly", "1.2"}
	for _, v := range tests {
		Version = v
		if got := Colored(); got != v {
			t.Errorf("Colored() with colour off = %q, want %q", got, v)
		}
	}

	color.NoColor = false
	Version = "1.2.3-dev"
	got := Colored()
	if got == Version || got[len(got)-4:] != "-dev" {
		t.Errorf("Colored() = %q", got)
	}
}
