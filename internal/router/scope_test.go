package router

import (
	"sort"
	"testing"
)

func TestScopeReleaseIsIdempotent(t *testing.T) {
	sc := NewScope()
	release := sc.Acquire("search", func(string) {})
	if sc.Active() != 1 {
		t.Fatalf("expected 1 active listener, got %d", sc.Active())
	}

	release()
	release()
	if sc.Active() != 0 {
		t.Fatalf("expected no active listeners, got %d", sc.Active())
	}
}

func TestScopeDispatchAllowsSelfRelease(t *testing.T) {
	sc := NewScope()
	var got []string
	var release func()
	release = sc.Acquire("search", func(target string) {
		got = append(got, target)
		release()
	})

	sc.Dispatch("outside")
	sc.Dispatch("outside")
	if len(got) != 1 || got[0] != "outside" {
		t.Fatalf("expected a single dispatch, got %v", got)
	}
	if sc.Active() != 0 {
		t.Fatalf("listener still active after self release")
	}
}

func TestScopeCloseReleasesEverything(t *testing.T) {
	sc := NewScope()
	sc.Acquire("a", func(string) {})
	sc.Acquire("b", func(string) {})

	names := sc.Names()
	sort.Strings(names)
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("unexpected names %v", names)
	}

	sc.Close()
	if sc.Active() != 0 {
		t.Fatalf("expected no active listeners after Close, got %d", sc.Active())
	}
}
