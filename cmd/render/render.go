/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"

	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tokenkit/convert/formatter"
	"bennypowers.dev/tokenkit/resolver"
	"bennypowers.dev/tokenkit/token"
)

// Row holds computed display values for a single token.
type Row struct {
	Name               string   `json:"name"`                         // Platform output name
	Type               string   `json:"type"`                         // Token type or "-"
	Value              string   `json:"value"`                        // Transformed value
	Reference          string   `json:"reference,omitempty"`          // Source value when it references other tokens
	Description        string   `json:"description,omitempty"`        // Token description
	IsColor            bool     `json:"-"`                            // Whether Value parses as a color
	Deprecated         bool     `json:"deprecated,omitempty"`         // Whether this token is deprecated
	DeprecationMessage string   `json:"deprecationMessage,omitempty"` // Optional message explaining deprecation
	Path               []string `json:"path"`                         // Token path in the source tree
}

// HierarchyNode represents a node in the token hierarchy tree.
type HierarchyNode struct {
	Name     string
	Path     []string
	Tokens   []Row
	Children map[string]*HierarchyNode
}

// ComputeRows transforms tokens into display rows with all values computed.
func ComputeRows(tokens []*token.Token) []Row {
	rows := make([]Row, 0, len(tokens))
	for _, tok := range tokens {
		row := Row{
			Name:               tok.Name,
			Type:               tok.Type,
			Value:              resolver.Stringify(formatter.ResolvedValue(tok)),
			Description:        tok.Description,
			Deprecated:         tok.Deprecated,
			DeprecationMessage: tok.DeprecationMessage,
			Path:               tok.Path,
		}
		if row.Type == "" {
			row.Type = "-"
		}
		if len(token.ExtractAllRefs(tok.Value)) > 0 {
			row.Reference = tok.Value
		}
		if tok.Type == token.TypeColor {
			if _, err := csscolorparser.Parse(row.Value); err == nil {
				row.IsColor = true
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// ColumnWidths calculates the max width needed for each column.
func ColumnWidths(rows []Row) (name, typ, val int) {
	name, typ, val = 4, 4, 5 // minimums for headers
	for _, r := range rows {
		name = max(name, len(r.Name))
		typ = max(typ, len(r.Type))
		val = max(val, len(r.Value))
	}
	return
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Table renders rows as aligned columns. Swatches adds an ANSI color block
// before color values.
func Table(w io.Writer, rows []Row, swatches bool) error {
	if len(rows) == 0 {
		return nil
	}
	nameW, typeW, _ := ColumnWidths(rows)
	for _, r := range rows {
		swatch := ""
		if swatches && r.IsColor {
			swatch = ColorSwatch(r.Value)
		}
		ref := ""
		if r.Reference != "" {
			ref = " ← " + r.Reference
		}
		if _, err := fmt.Fprintf(w, "%-*s  %-*s  %s%s%s\n", nameW, r.Name, typeW, r.Type, swatch, r.Value, ref); err != nil {
			return err
		}
	}
	return nil
}

// JSON renders rows as an indented JSON array.
func JSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// Names renders just the token names, one per line.
func Names(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r.Name); err != nil {
			return err
		}
	}
	return nil
}

// slugify converts a name to a URL-safe anchor ID.
// e.g., "Color Brand" -> "color-brand"
func slugify(name string) string {
	var result strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		} else if r == ' ' || r == '-' || r == '_' || r == '.' {
			result.WriteRune('-')
		}
	}
	// Remove consecutive dashes
	s := result.String()
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// toTitleCase converts a string to Title Case.
func toTitleCase(s string) string {
	caser := cases.Title(language.English)
	return caser.String(s)
}

// BuildHierarchy builds a tree from rows based on their Path.
func BuildHierarchy(rows []Row) *HierarchyNode {
	root := &HierarchyNode{Children: make(map[string]*HierarchyNode)}

	for _, row := range rows {
		if len(row.Path) == 0 {
			root.Tokens = append(root.Tokens, row)
			continue
		}

		// Navigate/create path to parent node
		current := root
		for i := 0; i < len(row.Path)-1; i++ {
			name := row.Path[i]
			if current.Children[name] == nil {
				current.Children[name] = &HierarchyNode{
					Name:     name,
					Path:     row.Path[:i+1],
					Children: make(map[string]*HierarchyNode),
				}
			}
			current = current.Children[name]
		}

		current.Tokens = append(current.Tokens, row)
	}

	return root
}

// Markdown renders rows as markdown, one section per group of the source
// tree, nested by heading level.
func Markdown(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	var sb strings.Builder
	renderHierarchyNode(&sb, BuildHierarchy(rows), 1)
	_, err := io.WriteString(w, sb.String())
	return err
}

func renderHierarchyNode(sb *strings.Builder, node *HierarchyNode, depth int) {
	// Root-level tokens (no path) come first
	if node.Path == nil && len(node.Tokens) > 0 {
		renderTokenTable(sb, node.Tokens)
		sb.WriteString("\n")
	}

	names := make([]string, 0, len(node.Children))
	for name := range node.Children {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		child := node.Children[name]

		// Heading level: ## for depth 1, ### for depth 2, etc. (max h6)
		level := min(depth+1, 6)
		fmt.Fprintf(sb, "%s %s {#%s}\n\n", strings.Repeat("#", level), toTitleCase(name), slugify(strings.Join(child.Path, "-")))

		if len(child.Tokens) > 0 {
			renderTokenTable(sb, child.Tokens)
			sb.WriteString("\n")
		}

		renderHierarchyNode(sb, child, depth+1)
	}
}

func renderTokenTable(sb *strings.Builder, tokens []Row) {
	nameW, valW, descW := 4, 5, 11 // minimums for headers
	hasDesc := false

	for _, r := range tokens {
		nameW = max(nameW, len(formatTokenName(r)))
		valW = max(valW, len(r.Value))
		if desc := formatDescription(r); desc != "" {
			hasDesc = true
			descW = max(descW, len(desc))
		}
	}

	if hasDesc {
		fmt.Fprintf(sb, "| %-*s | %-*s | %-*s |\n", nameW, "Name", valW, "Value", descW, "Description")
		fmt.Fprintf(sb, "|-%s-|-%s-|-%s-|\n", strings.Repeat("-", nameW), strings.Repeat("-", valW), strings.Repeat("-", descW))
	} else {
		fmt.Fprintf(sb, "| %-*s | %-*s |\n", nameW, "Name", valW, "Value")
		fmt.Fprintf(sb, "|-%s-|-%s-|\n", strings.Repeat("-", nameW), strings.Repeat("-", valW))
	}

	for _, r := range tokens {
		if hasDesc {
			fmt.Fprintf(sb, "| %-*s | %-*s | %-*s |\n", nameW, formatTokenName(r), valW, r.Value, descW, formatDescription(r))
		} else {
			fmt.Fprintf(sb, "| %-*s | %-*s |\n", nameW, formatTokenName(r), valW, r.Value)
		}
	}
}

func formatTokenName(r Row) string {
	if r.Deprecated {
		return "~~" + r.Name + "~~"
	}
	return r.Name
}

func formatDescription(r Row) string {
	desc := r.Description
	if r.Deprecated && r.DeprecationMessage != "" {
		if desc != "" {
			desc += " "
		}
		desc += "*Deprecated: " + r.DeprecationMessage + "*"
	} else if r.Deprecated && desc == "" {
		desc = "*Deprecated*"
	}
	return desc
}
