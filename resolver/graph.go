/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver provides token reference resolution.
package resolver

import (
	"fmt"
	"slices"
	"strings"

	"bennypowers.dev/tokenkit/token"
)

// DependencyGraph represents a directed graph of token dependencies,
// keyed by dot path (e.g. "color.brand.primary").
type DependencyGraph struct {
	dependencies map[string][]string
	dependents   map[string][]string
	nodes        map[string]bool
}

// BuildDependencyGraph builds a dependency graph from a list of tokens.
func BuildDependencyGraph(tokens []*token.Token) *DependencyGraph {
	graph := &DependencyGraph{
		dependencies: make(map[string][]string),
		dependents:   make(map[string][]string),
		nodes:        make(map[string]bool),
	}

	for _, tok := range tokens {
		graph.nodes[tok.DotPath()] = true
	}

	for _, tok := range tokens {
		deps := extractDependencies(tok)
		if len(deps) > 0 {
			key := tok.DotPath()
			graph.dependencies[key] = deps
			for _, dep := range deps {
				graph.dependents[dep] = append(graph.dependents[dep], key)
			}
		}
	}

	return graph
}

// extractDependencies extracts the dot paths this token refers to.
func extractDependencies(tok *token.Token) []string {
	if !strings.Contains(tok.Value, "{") {
		return nil
	}
	var deps []string
	for _, ref := range token.ExtractAllRefs(tok.Value) {
		ref, _ = token.TrimValueSuffix(ref)
		if !slices.Contains(deps, ref) {
			deps = append(deps, ref)
		}
	}
	return deps
}

// Dependencies returns the list of tokens that the given token depends on.
func (g *DependencyGraph) Dependencies(path string) []string {
	if deps, ok := g.dependencies[path]; ok {
		return deps
	}
	return []string{}
}

// Dependents returns the list of tokens that depend on the given token.
func (g *DependencyGraph) Dependents(path string) []string {
	if deps, ok := g.dependents[path]; ok {
		return deps
	}
	return []string{}
}

// Missing returns every referenced path that no token defines, sorted.
func (g *DependencyGraph) Missing() []string {
	var missing []string
	for _, deps := range g.dependencies {
		for _, dep := range deps {
			if !g.nodes[dep] && !slices.Contains(missing, dep) {
				missing = append(missing, dep)
			}
		}
	}
	slices.Sort(missing)
	return missing
}

// sortedNodes returns node keys in lexical order so traversal is deterministic.
func (g *DependencyGraph) sortedNodes() []string {
	nodes := make([]string, 0, len(g.nodes))
	for node := range g.nodes {
		nodes = append(nodes, node)
	}
	slices.Sort(nodes)
	return nodes
}

// HasCycle returns true if the graph contains a circular dependency.
func (g *DependencyGraph) HasCycle() bool {
	return g.FindCycle() != nil
}

// FindCycle returns the cycle path if one exists, or nil if no cycle.
func (g *DependencyGraph) FindCycle() []string {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)

	for _, node := range g.sortedNodes() {
		if cycle := g.findCycleDFS(node, visited, recStack, nil); cycle != nil {
			return cycle
		}
	}
	return nil
}

func (g *DependencyGraph) findCycleDFS(node string, visited, recStack map[string]bool, path []string) []string {
	if recStack[node] {
		cycleStart := slices.Index(path, node)
		if cycleStart == -1 {
			panic(fmt.Sprintf("cycle detection invariant violated: node %q in recStack but not in path %v", node, path))
		}
		return append(slices.Clone(path[cycleStart:]), node)
	}
	if visited[node] {
		return nil
	}

	visited[node] = true
	recStack[node] = true
	path = append(path, node)

	for _, dep := range g.dependencies[node] {
		if cycle := g.findCycleDFS(dep, visited, recStack, path); cycle != nil {
			return cycle
		}
	}

	recStack[node] = false
	return nil
}

// TopologicalSort returns tokens in dependency order (dependencies first).
// Returns error if graph contains a cycle.
func (g *DependencyGraph) TopologicalSort() ([]string, error) {
	if cycle := g.FindCycle(); cycle != nil {
		return nil, fmt.Errorf("%w: %s", token.ErrCircularReference, strings.Join(cycle, " -> "))
	}

	visited := make(map[string]bool)
	result := []string{}

	for _, node := range g.sortedNodes() {
		if !visited[node] {
			g.topologicalSortDFS(node, visited, &result)
		}
	}

	return result, nil
}

func (g *DependencyGraph) topologicalSortDFS(node string, visited map[string]bool, stack *[]string) {
	visited[node] = true

	for _, dep := range g.dependencies[node] {
		if !visited[dep] && g.nodes[dep] {
			g.topologicalSortDFS(dep, visited, stack)
		}
	}

	*stack = append(*stack, node)
}
