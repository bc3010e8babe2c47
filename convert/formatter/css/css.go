/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css provides CSS custom property formatting for design tokens.
package css

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"bennypowers.dev/tokenkit/convert/formatter"
	"bennypowers.dev/tokenkit/token"
)

// Selector is the rule that holds the custom properties.
type Selector string

const (
	// SelectorRoot uses :root (default).
	SelectorRoot Selector = ":root"
	// SelectorHost uses :host, for shadow roots.
	SelectorHost Selector = ":host"
)

// Options configures the CSS formatter.
type Options struct {
	Selector Selector
}

// Formatter outputs CSS custom properties.
type Formatter struct {
	opts Options
}

// New creates a new CSS formatter using the :root selector.
func New() *Formatter {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a new CSS formatter with the specified options.
func NewWithOptions(opts Options) *Formatter {
	if opts.Selector == "" {
		opts.Selector = SelectorRoot
	}
	return &Formatter{opts: opts}
}

// Format converts tokens to a CSS rule of custom properties, one per token,
// in the order given. Token names are used verbatim.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	header := opts.Header
	if header == "" {
		header = formatter.DefaultHeader
	}

	var b strings.Builder
	b.WriteString(formatter.FormatHeader(header, formatter.CStyleComments))
	b.WriteString(string(f.opts.Selector) + " {\n")
	for _, tok := range tokens {
		value := ToCSSValue(tok.Type, formatter.ResolvedValue(tok))
		if tok.Deprecated && tok.DeprecationMessage != "" {
			fmt.Fprintf(&b, "  /* deprecated: %s */\n", strings.ReplaceAll(tok.DeprecationMessage, "*/", "* /"))
		}
		fmt.Fprintf(&b, "  --%s: %s;\n", tok.Name, value)
	}
	b.WriteString("}\n")
	return []byte(b.String()), nil
}

// ToCSSValue renders a token value as CSS.
func ToCSSValue(typ string, value any) string {
	switch typ {
	case token.TypeCubicBezier:
		if arr, ok := value.([]any); ok && len(arr) == 4 {
			return "cubic-bezier(" + joinValues(arr, ", ") + ")"
		}
	case token.TypeFontFamily:
		switch v := value.(type) {
		case string:
			return quoteFamily(v)
		case []any:
			families := make([]string, 0, len(v))
			for _, f := range v {
				families = append(families, quoteFamily(ToCSSValue("", f)))
			}
			return strings.Join(families, ", ")
		}
	case token.TypeShadow:
		switch v := value.(type) {
		case map[string]any:
			return shadow(v)
		case []any:
			layers := make([]string, 0, len(v))
			for _, layer := range v {
				if m, ok := layer.(map[string]any); ok {
					layers = append(layers, shadow(m))
				}
			}
			return strings.Join(layers, ", ")
		}
	}

	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case []any:
		return joinValues(v, ", ")
	case nil:
		return ""
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}

func joinValues(values []any, sep string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, ToCSSValue("", v))
	}
	return strings.Join(parts, sep)
}

// quoteFamily quotes a family name containing whitespace unless it is
// already quoted.
func quoteFamily(name string) string {
	if strings.HasPrefix(name, `"`) || strings.HasPrefix(name, "'") {
		return name
	}
	if strings.ContainsAny(name, " \t") {
		return strconv.Quote(name)
	}
	return name
}

// shadowKeys lists shadow fields in CSS shorthand order.
var shadowKeys = []string{"offsetX", "offsetY", "blur", "spread", "color"}

func shadow(m map[string]any) string {
	var parts []string
	if inset, _ := m["inset"].(bool); inset {
		parts = append(parts, "inset")
	}
	for _, key := range shadowKeys {
		if v, ok := m[key]; ok {
			parts = append(parts, ToCSSValue("", v))
		}
	}
	return strings.Join(slices.Clip(parts), " ")
}
