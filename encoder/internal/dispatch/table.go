package dispatch

import (
	"fmt"
	"sort"

	"github.com/wippyai/hessian/errors"
)

// Entry pairs a registered type with its ancestry, predicate and handler.
type Entry[K comparable, H any] struct {
	Handler   H
	Match     func(v any) bool
	Ancestors []K
	Kind      K
}

// Table is an ordered, immutable dispatch table.
type Table[K comparable, H any] struct {
	entries []Entry[K, H]
}

// Build orders entries most specific first. It fails on a duplicate
// registration, a missing predicate, or a cycle in the ancestor graph.
func Build[K comparable, H any](entries []Entry[K, H]) (*Table[K, H], error) {
	g := newGraph[K]()
	registered := make(map[K]int, len(entries))

	for i, e := range entries {
		if _, dup := registered[e.Kind]; dup {
			return nil, errors.Duplicate(fmt.Sprint(e.Kind))
		}
		if e.Match == nil {
			return nil, errors.New(errors.PhaseCompile, errors.KindInvalidData).
				Detail("type %v has no predicate", e.Kind).
				Build()
		}
		registered[e.Kind] = i
		g.add(e.Kind, e.Ancestors)
	}

	levels, err := g.levels()
	if err != nil {
		return nil, err
	}

	t := &Table[K, H]{entries: make([]Entry[K, H], 0, len(entries))}
	for i := len(levels) - 1; i >= 0; i-- {
		for _, k := range levels[i] {
			if idx, ok := registered[k]; ok {
				t.entries = append(t.entries, entries[idx])
			}
		}
	}
	return t, nil
}

// MustBuild is like Build but panics on error. The hierarchy is declared in
// code, so a failure here is a programming error.
func MustBuild[K comparable, H any](entries []Entry[K, H]) *Table[K, H] {
	t, err := Build(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the first entry whose predicate accepts v.
func (t *Table[K, H]) Lookup(v any) (Entry[K, H], bool) {
	for _, e := range t.entries {
		if e.Match(v) {
			return e, true
		}
	}
	var zero Entry[K, H]
	return zero, false
}

// Order returns the registered types in dispatch order.
func (t *Table[K, H]) Order() []K {
	order := make([]K, len(t.entries))
	for i, e := range t.entries {
		order[i] = e.Kind
	}
	return order
}

// Len returns the number of registered entries.
func (t *Table[K, H]) Len() int {
	return len(t.entries)
}

// graph is the ancestor graph: an edge runs from each type to each of its
// declared ancestors. Node indices follow first appearance.
type graph[K comparable] struct {
	index      map[K]int
	nodes      []K
	ancestors  [][]int
	dependents [][]int
}

func newGraph[K comparable]() *graph[K] {
	return &graph[K]{index: make(map[K]int)}
}

func (g *graph[K]) node(k K) int {
	if i, ok := g.index[k]; ok {
		return i
	}
	i := len(g.nodes)
	g.index[k] = i
	g.nodes = append(g.nodes, k)
	g.ancestors = append(g.ancestors, nil)
	g.dependents = append(g.dependents, nil)
	return i
}

func (g *graph[K]) add(k K, ancestors []K) {
	n := g.node(k)
	seen := make(map[int]bool, len(ancestors))
	for _, a := range ancestors {
		if a == k {
			continue
		}
		ai := g.node(a)
		if seen[ai] {
			continue
		}
		seen[ai] = true
		g.ancestors[n] = append(g.ancestors[n], ai)
		g.dependents[ai] = append(g.dependents[ai], n)
	}
}

// levels groups nodes by depth with roots first. A node's level is one more
// than the deepest of its ancestors; each level is in first-appearance order.
func (g *graph[K]) levels() ([][]K, error) {
	n := len(g.nodes)
	pending := make([]int, n)
	for i := range g.nodes {
		pending[i] = len(g.ancestors[i])
	}

	var current []int
	for i := 0; i < n; i++ {
		if pending[i] == 0 {
			current = append(current, i)
		}
	}

	var result [][]K
	emitted := 0
	for len(current) > 0 {
		level := make([]K, len(current))
		for i, idx := range current {
			level[i] = g.nodes[idx]
		}
		result = append(result, level)
		emitted += len(current)

		var next []int
		for _, idx := range current {
			for _, dep := range g.dependents[idx] {
				pending[dep]--
				if pending[dep] == 0 {
					next = append(next, dep)
				}
			}
		}
		sort.Ints(next)
		current = next
	}

	if emitted != n {
		var stuck []string
		for i := 0; i < n; i++ {
			if pending[i] > 0 {
				stuck = append(stuck, fmt.Sprint(g.nodes[i]))
			}
		}
		return nil, errors.Cycle(stuck)
	}

	return result, nil
}
