/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver_test

import (
	"errors"
	"strings"
	"testing"

	"bennypowers.dev/tokenkit/resolver"
	"bennypowers.dev/tokenkit/token"
)

func tok(path, value string) *token.Token {
	p := strings.Split(path, ".")
	return &token.Token{Name: strings.Join(p, "-"), Path: p, Value: value}
}

func TestDependencyGraph_NoCycle(t *testing.T) {
	tokens := []*token.Token{
		tok("a", "1"),
		tok("b", "{a}"),
		tok("c", "{b}"),
	}

	graph := resolver.BuildDependencyGraph(tokens)

	if graph.HasCycle() {
		t.Error("expected no cycle")
	}
	if deps := graph.Dependencies("c"); len(deps) != 1 || deps[0] != "b" {
		t.Errorf("expected c to depend on b, got %v", deps)
	}
	if deps := graph.Dependents("a"); len(deps) != 1 || deps[0] != "b" {
		t.Errorf("expected b to depend on a, got %v", deps)
	}
}

func TestDependencyGraph_Cycle(t *testing.T) {
	tokens := []*token.Token{
		tok("a", "{c}"),
		tok("b", "{a}"),
		tok("c", "{b}"),
	}

	graph := resolver.BuildDependencyGraph(tokens)

	if !graph.HasCycle() {
		t.Error("expected cycle")
	}

	cycle := graph.FindCycle()
	if len(cycle) != 4 || cycle[0] != cycle[len(cycle)-1] {
		t.Errorf("expected closed cycle path, got %v", cycle)
	}

	if _, err := graph.TopologicalSort(); !errors.Is(err, token.ErrCircularReference) {
		t.Errorf("expected ErrCircularReference, got %v", err)
	}
}

func TestDependencyGraph_Missing(t *testing.T) {
	graph := resolver.BuildDependencyGraph([]*token.Token{
		tok("a", "{z}"),
		tok("b", "{y} {z}"),
	})
	missing := graph.Missing()
	if len(missing) != 2 || missing[0] != "y" || missing[1] != "z" {
		t.Errorf("expected [y z], got %v", missing)
	}
}

func TestResolveAliases(t *testing.T) {
	base := tok("color.base", "#FF6B35")
	base.Type = "color"
	primary := tok("color.primary", "{color.base}")
	legacy := tok("color.legacy", "{color.primary.value}")
	tokens := []*token.Token{legacy, primary, base}

	if err := resolver.ResolveAliases(tokens); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, tk := range tokens {
		if tk.ResolvedValue != "#FF6B35" {
			t.Errorf("expected %s to resolve to #FF6B35, got %v", tk.DotPath(), tk.ResolvedValue)
		}
		if !tk.IsResolved {
			t.Errorf("expected %s to be marked resolved", tk.DotPath())
		}
	}
	if primary.Type != "color" {
		t.Errorf("expected alias to take referenced type, got %q", primary.Type)
	}
}

func TestResolveAliases_KeepsValueType(t *testing.T) {
	size := tok("size.base", "")
	size.RawValue = 4.0
	alias := tok("size.alias", "{size.base}")

	if err := resolver.ResolveAliases([]*token.Token{size, alias}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if alias.ResolvedValue != 4.0 {
		t.Errorf("expected numeric 4, got %v (%T)", alias.ResolvedValue, alias.ResolvedValue)
	}
}

func TestResolveAliases_Interpolation(t *testing.T) {
	width := tok("border.width", "")
	width.RawValue = 1.0
	color := tok("color.line", "#ccc")
	border := tok("border.default", "{border.width}px solid {color.line}")

	if err := resolver.ResolveAliases([]*token.Token{width, color, border}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if border.ResolvedValue != "1px solid #ccc" {
		t.Errorf("unexpected interpolation: %v", border.ResolvedValue)
	}
}

func TestResolveAliases_Errors(t *testing.T) {
	t.Run("unresolved", func(t *testing.T) {
		err := resolver.ResolveAliases([]*token.Token{
			tok("a", "{missing.one}"),
			tok("b", "{missing.two}"),
		})
		if !errors.Is(err, token.ErrUnresolvedReference) {
			t.Fatalf("expected ErrUnresolvedReference, got %v", err)
		}
		if !strings.Contains(err.Error(), "missing.one") || !strings.Contains(err.Error(), "missing.two") {
			t.Errorf("expected all missing references listed, got %v", err)
		}
	})

	t.Run("circular", func(t *testing.T) {
		err := resolver.ResolveAliases([]*token.Token{
			tok("a", "{b}"),
			tok("b", "{a}"),
		})
		if !errors.Is(err, token.ErrCircularReference) {
			t.Errorf("expected ErrCircularReference, got %v", err)
		}
	})
}

func TestStringify(t *testing.T) {
	cases := map[string]any{
		"x":      "x",
		"1.5":    1.5,
		"12":     12,
		"":       nil,
		`["a"]`:  []any{"a"},
	}
	for want, in := range cases {
		if got := resolver.Stringify(in); got != want {
			t.Errorf("Stringify(%v) = %q, want %q", in, got, want)
		}
	}
}
