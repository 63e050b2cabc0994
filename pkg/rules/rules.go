package rules

import (
	"fmt"

	"github.com/arthur-debert/renamer/pkg/pathinfo"
)

// Kind tags a rule strategy.
type Kind string

const (
	KindExplicitList Kind = "explicit-list"
	KindTemplate     Kind = "template"
	KindCallback     Kind = "callback"
)

// NewPathComputer produces the new path for an original path. The plan
// invokes it exactly once per pair, in input order, passing the
// sequence number for that pair. Errors (and panics, which the plan
// recovers) surface as code problems on the pair, never as plan
// failures.
type NewPathComputer interface {
	Kind() Kind
	Compute(orig pathinfo.PathInfo, seq int) (string, error)
}

// Filter decides whether a pair participates in the plan at all. Pairs
// it rejects become filtered before any diagnosis happens.
type Filter interface {
	Keep(orig pathinfo.PathInfo, seq int) (bool, error)
}

// ComputerFunc adapts a plain function into a callback computer.
type ComputerFunc func(orig pathinfo.PathInfo, seq int) (string, error)

func (f ComputerFunc) Kind() Kind { return KindCallback }

func (f ComputerFunc) Compute(orig pathinfo.PathInfo, seq int) (string, error) {
	return f(orig, seq)
}

// FilterFunc adapts a plain function into a Filter.
type FilterFunc func(orig pathinfo.PathInfo, seq int) (bool, error)

func (f FilterFunc) Keep(orig pathinfo.PathInfo, seq int) (bool, error) {
	return f(orig, seq)
}

// explicitList assigns new paths positionally.
type explicitList struct {
	news []string
	next int
}

// NewExplicitList returns a computer that yields the given new paths in
// order, one per Compute call. Running past the end is reported as an
// error on the pair; balanced inputs are normally guaranteed upstream
// by input parsing.
func NewExplicitList(news []string) NewPathComputer {
	return &explicitList{news: news}
}

func (e *explicitList) Kind() Kind { return KindExplicitList }

func (e *explicitList) Compute(orig pathinfo.PathInfo, seq int) (string, error) {
	if e.next >= len(e.news) {
		return "", fmt.Errorf("no new path supplied for %q", orig.Full)
	}
	n := e.news[e.next]
	e.next++
	return n, nil
}
