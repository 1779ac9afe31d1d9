// Package ident provides the unique identifiers the naming phase attaches
// to every binding occurrence.
//
// An Ident pairs the surface text of a name with a stamp issued by a
// Generator. Two idents denote the same binding exactly when their stamps
// are equal; the text is kept only for printing and diagnostics.
package ident

import (
	"fmt"
	"sync/atomic"
)

// Ident is a resolved name. The zero value is invalid.
type Ident struct {
	Name  string `json:"name" yaml:"name" msgpack:"n"`
	Stamp uint64 `json:"stamp" yaml:"stamp" msgpack:"s"`
}

func (id Ident) IsValid() bool { return id.Stamp != 0 }

// Same reports whether id and other denote the same binding.
func (id Ident) Same(other Ident) bool { return id.Stamp == other.Stamp }

// String renders name/stamp, e.g. "map/12".
func (id Ident) String() string {
	if !id.IsValid() {
		return id.Name + "/?"
	}
	return fmt.Sprintf("%s/%d", id.Name, id.Stamp)
}

// Generator issues fresh stamps, starting at 1. Stamps are unique per
// Generator; one Generator serves one naming run. Safe for concurrent use.
type Generator struct {
	next atomic.Uint64
}

func NewGenerator() *Generator {
	return &Generator{}
}

// Fresh returns a new Ident with the given text.
func (g *Generator) Fresh(name string) Ident {
	return Ident{Name: name, Stamp: g.next.Add(1)}
}

// Issued reports how many stamps have been handed out.
func (g *Generator) Issued() uint64 {
	return g.next.Load()
}
