/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package transform provides the named token transforms applied per platform
// before formatting: name transforms rename tokens, value transforms rewrite
// resolved values into a platform's syntax.
package transform

import (
	"fmt"
	"slices"
	"sync"

	"bennypowers.dev/tokenkit/token"
)

// Kind distinguishes name transforms from value transforms.
type Kind string

const (
	// KindName transforms set Token.Name.
	KindName Kind = "name"
	// KindValue transforms rewrite Token.ResolvedValue.
	KindValue Kind = "value"
)

// Transform is a single named transform.
type Transform struct {
	Name string
	Kind Kind

	// Matcher selects the tokens the transform applies to. Nil matches all.
	Matcher func(tok *token.Token) bool

	// Rename computes the new name of a token. Used by KindName.
	Rename func(tok *token.Token, prefix string) string

	// Convert computes the new value of a token. Used by KindValue.
	Convert func(tok *token.Token) (any, error)
}

var (
	mu       sync.RWMutex
	registry = map[string]Transform{}
	groups   = map[string][]string{}
)

// Register adds or replaces a transform.
func Register(t Transform) {
	mu.Lock()
	defer mu.Unlock()
	registry[t.Name] = t
}

// RegisterGroup adds or replaces a named group of transforms.
func RegisterGroup(name string, transforms []string) {
	mu.Lock()
	defer mu.Unlock()
	groups[name] = slices.Clone(transforms)
}

// Lookup returns the transform registered under name.
func Lookup(name string) (Transform, error) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[name]
	if !ok {
		return Transform{}, fmt.Errorf("%w: %s", token.ErrUnknownTransform, name)
	}
	return t, nil
}

// Names returns every registered transform name, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Group returns the transform names of a registered group.
func Group(name string) ([]string, error) {
	mu.RLock()
	defer mu.RUnlock()
	g, ok := groups[name]
	if !ok {
		return nil, fmt.Errorf("%w: transform group %s", token.ErrUnknownTransform, name)
	}
	return slices.Clone(g), nil
}

// Resolve returns the transforms of group (if any) followed by the extra
// transforms named explicitly, in order.
func Resolve(group string, extra []string) ([]Transform, error) {
	var names []string
	if group != "" {
		g, err := Group(group)
		if err != nil {
			return nil, err
		}
		names = g
	}
	names = append(names, extra...)

	transforms := make([]Transform, 0, len(names))
	for _, name := range names {
		t, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		transforms = append(transforms, t)
	}
	return transforms, nil
}

// Apply runs transforms over tokens in place. Callers pass clones when the
// originals must stay untouched.
func Apply(tokens []*token.Token, transforms []Transform, prefix string) error {
	for _, tok := range tokens {
		for _, t := range transforms {
			if t.Matcher != nil && !t.Matcher(tok) {
				continue
			}
			switch t.Kind {
			case KindName:
				tok.Name = t.Rename(tok, prefix)
			case KindValue:
				v, err := t.Convert(tok)
				if err != nil {
					return fmt.Errorf("transform %s on %s: %w", t.Name, tok.DotPath(), err)
				}
				tok.ResolvedValue = v
			}
		}
	}
	return nil
}
