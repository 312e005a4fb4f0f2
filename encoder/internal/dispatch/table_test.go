package dispatch

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	herrors "github.com/wippyai/hessian/errors"
)

type testEntry = Entry[string, string]

func isType[T any](v any) bool {
	_, ok := v.(T)
	return ok
}

func isInteger(v any) bool {
	switch v.(type) {
	case bool, int32, int64:
		return true
	}
	return false
}

func TestBuild_SubtypeBeforeAncestor(t *testing.T) {
	// Registered ancestors first, mirroring a declaration order that would
	// be wrong without sorting.
	table, err := Build([]testEntry{
		{Kind: "long", Ancestors: []string{"value"}, Match: isInteger, Handler: "L"},
		{Kind: "int", Ancestors: []string{"long", "value"}, Match: func(v any) bool { return isType[int32](v) || isType[bool](v) }, Handler: "I"},
		{Kind: "bool", Ancestors: []string{"int", "long", "value"}, Match: isType[bool], Handler: "B"},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	want := []string{"bool", "int", "long"}
	if got := table.Order(); !reflect.DeepEqual(got, want) {
		t.Errorf("Order() = %v, want %v", got, want)
	}

	tests := []struct {
		value any
		want  string
	}{
		{true, "B"},
		{int32(7), "I"},
		{int64(7), "L"},
	}
	for _, tc := range tests {
		e, ok := table.Lookup(tc.value)
		if !ok {
			t.Errorf("Lookup(%#v) found nothing", tc.value)
			continue
		}
		if e.Handler != tc.want {
			t.Errorf("Lookup(%#v) = %s, want %s", tc.value, e.Handler, tc.want)
		}
	}
}

func TestBuild_UnrelatedKeepRegistrationOrder(t *testing.T) {
	table, err := Build([]testEntry{
		{Kind: "c", Ancestors: []string{"value"}, Match: isType[string]},
		{Kind: "a", Ancestors: []string{"value"}, Match: isType[string]},
		{Kind: "b", Ancestors: []string{"value"}, Match: isType[string]},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	want := []string{"c", "a", "b"}
	if got := table.Order(); !reflect.DeepEqual(got, want) {
		t.Errorf("Order() = %v, want %v", got, want)
	}

	e, _ := table.Lookup("x")
	if e.Kind != "c" {
		t.Errorf("overlapping predicates resolved to %s, want first registered c", e.Kind)
	}
}

func TestBuild_Diamond(t *testing.T) {
	entries := []testEntry{
		{Kind: "a", Match: isType[int]},
		{Kind: "b", Ancestors: []string{"a"}, Match: isType[int]},
		{Kind: "c", Ancestors: []string{"a"}, Match: isType[int]},
		{Kind: "d", Ancestors: []string{"b", "c", "a"}, Match: isType[int]},
	}
	table, err := Build(entries)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	want := []string{"d", "b", "c", "a"}
	if got := table.Order(); !reflect.DeepEqual(got, want) {
		t.Errorf("Order() = %v, want %v", got, want)
	}
	assertSubtypesFirst(t, table, entries)
}

func TestBuild_UnregisteredAncestorsFiltered(t *testing.T) {
	table, err := Build([]testEntry{
		{Kind: "ascii", Ancestors: []string{"bytes", "sequence"}, Match: isType[[]byte]},
		{Kind: "list", Ancestors: []string{"sequence"}, Match: isType[[]any]},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}
	for _, k := range table.Order() {
		if k == "bytes" || k == "sequence" {
			t.Errorf("unregistered ancestor %q leaked into the table", k)
		}
	}
}

func TestBuild_SelfAncestorIgnored(t *testing.T) {
	table, err := Build([]testEntry{
		{Kind: "x", Ancestors: []string{"x"}, Match: isType[int]},
	})
	if err != nil {
		t.Fatalf("self ancestor should be ignored, got %v", err)
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}
}

func TestBuild_Cycle(t *testing.T) {
	_, err := Build([]testEntry{
		{Kind: "a", Ancestors: []string{"b"}, Match: isType[int]},
		{Kind: "b", Ancestors: []string{"c"}, Match: isType[int]},
		{Kind: "c", Ancestors: []string{"a"}, Match: isType[int]},
		{Kind: "d", Match: isType[int]},
	})
	if err == nil {
		t.Fatal("expected cycle error")
	}

	target := &herrors.Error{Phase: herrors.PhaseCompile, Kind: herrors.KindCycle}
	if !errors.Is(err, target) {
		t.Errorf("error = %v, want compile/cycle", err)
	}
}

func TestBuild_Duplicate(t *testing.T) {
	_, err := Build([]testEntry{
		{Kind: "a", Match: isType[int]},
		{Kind: "a", Match: isType[int]},
	})

	target := &herrors.Error{Phase: herrors.PhaseCompile, Kind: herrors.KindDuplicate}
	if !errors.Is(err, target) {
		t.Errorf("error = %v, want compile/duplicate", err)
	}
}

func TestBuild_MissingPredicate(t *testing.T) {
	_, err := Build([]testEntry{{Kind: "a"}})
	if err == nil {
		t.Fatal("expected error for missing predicate")
	}
}

func TestBuild_Empty(t *testing.T) {
	table, err := Build[string, string](nil)
	if err != nil {
		t.Fatalf("Build(nil) failed: %v", err)
	}
	if _, ok := table.Lookup(1); ok {
		t.Error("empty table should match nothing")
	}
}

func TestMustBuild_PanicsOnCycle(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustBuild should panic on a cyclic hierarchy")
		}
	}()
	MustBuild([]testEntry{
		{Kind: "a", Ancestors: []string{"b"}, Match: isType[int]},
		{Kind: "b", Ancestors: []string{"a"}, Match: isType[int]},
	})
}

func TestLookup_Concurrent(t *testing.T) {
	table := MustBuild([]testEntry{
		{Kind: "int", Match: isType[int], Handler: "I"},
		{Kind: "bool", Ancestors: []string{"int"}, Match: isType[bool], Handler: "B"},
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				var v any = j
				want := "I"
				if (i+j)%2 == 0 {
					v, want = true, "B"
				}
				if e, ok := table.Lookup(v); !ok || e.Handler != want {
					t.Errorf("Lookup(%v) = %q, want %q", v, e.Handler, want)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

func assertSubtypesFirst(t *testing.T, table *Table[string, string], entries []testEntry) {
	t.Helper()
	pos := make(map[string]int)
	for i, k := range table.Order() {
		pos[k] = i
	}
	for _, e := range entries {
		for _, a := range e.Ancestors {
			if ap, ok := pos[a]; ok && ap < pos[e.Kind] {
				t.Errorf("%s at %d comes after its ancestor %s at %d", e.Kind, pos[e.Kind], a, ap)
			}
		}
	}
}
