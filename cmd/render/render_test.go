/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"bennypowers.dev/tokenkit/testutil"
	"bennypowers.dev/tokenkit/token"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Color Brand", "color-brand"},
		{"color-brand", "color-brand"},
		{"color.brand.primary", "color-brand-primary"},
		{"--color-brand-primary", "color-brand-primary"},
		{"Color  Brand", "color-brand"},
		{"UPPERCASE", "uppercase"},
		{"with_underscores", "with-underscores"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := slugify(tt.input)
			if result != tt.expected {
				t.Errorf("slugify(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestToTitleCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"color", "Color"},
		{"brand", "Brand"},
		{"color-brand", "Color-Brand"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := toTitleCase(tt.input)
			if result != tt.expected {
				t.Errorf("toTitleCase(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestBuildHierarchy(t *testing.T) {
	rows := []Row{
		{Name: "color-brand-primary", Path: []string{"color", "brand", "primary"}},
		{Name: "color-brand-secondary", Path: []string{"color", "brand", "secondary"}},
		{Name: "color-semantic-error", Path: []string{"color", "semantic", "error"}},
		{Name: "spacing-small", Path: []string{"spacing", "small"}},
	}

	root := BuildHierarchy(rows)

	if len(root.Children) != 2 {
		t.Errorf("expected 2 root children, got %d", len(root.Children))
	}

	colorNode := root.Children["color"]
	if colorNode == nil {
		t.Fatal("expected color node")
	}
	if len(colorNode.Children) != 2 {
		t.Errorf("expected 2 color children (brand, semantic), got %d", len(colorNode.Children))
	}

	brandNode := colorNode.Children["brand"]
	if brandNode == nil {
		t.Fatal("expected brand node")
	}
	if len(brandNode.Tokens) != 2 {
		t.Errorf("expected 2 tokens in brand, got %d", len(brandNode.Tokens))
	}

	spacingNode := root.Children["spacing"]
	if spacingNode == nil {
		t.Fatal("expected spacing node")
	}
	if len(spacingNode.Tokens) != 1 {
		t.Errorf("expected 1 token in spacing, got %d", len(spacingNode.Tokens))
	}
}

func TestFormatDescription(t *testing.T) {
	tests := []struct {
		name     string
		row      Row
		expected string
	}{
		{"plain", Row{Description: "Primary"}, "Primary"},
		{"deprecated without message", Row{Deprecated: true}, "*Deprecated*"},
		{"deprecated with message", Row{Deprecated: true, DeprecationMessage: "Use gray"}, "*Deprecated: Use gray*"},
		{"both", Row{Description: "Old", Deprecated: true, DeprecationMessage: "Use gray"}, "Old *Deprecated: Use gray*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDescription(tt.row); got != tt.expected {
				t.Errorf("formatDescription() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestComputeRows(t *testing.T) {
	tokens := []*token.Token{
		{
			Name:               "color-text",
			Value:              "{color.brand.primary}",
			Type:               "color",
			Description:        "Body text",
			Path:               []string{"color", "text"},
			ResolvedValue:      "#ff0000",
			IsResolved:         true,
			Deprecated:         true,
			DeprecationMessage: "Use ink",
		},
		{
			Name:          "spacing-sm",
			Value:         "",
			RawValue:      json.Number("4"),
			ResolvedValue: json.Number("4"),
			Path:          []string{"spacing", "sm"},
		},
	}

	rows := ComputeRows(tokens)

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	row := rows[0]
	if row.Value != "#ff0000" {
		t.Errorf("expected resolved value, got %q", row.Value)
	}
	if row.Reference != "{color.brand.primary}" {
		t.Errorf("expected reference, got %q", row.Reference)
	}
	if !row.IsColor {
		t.Error("expected IsColor to be true")
	}
	if !row.Deprecated || row.DeprecationMessage != "Use ink" {
		t.Errorf("expected deprecation to carry over, got %+v", row)
	}

	if rows[1].Type != "-" {
		t.Errorf("expected placeholder type, got %q", rows[1].Type)
	}
	if rows[1].Value != "4" {
		t.Errorf("expected value 4, got %q", rows[1].Value)
	}
	if rows[1].Reference != "" {
		t.Errorf("expected no reference, got %q", rows[1].Reference)
	}
}

func TestTable(t *testing.T) {
	rows := []Row{
		{Name: "color-text", Type: "color", Value: "#ff0000", IsColor: true, Reference: "{color.brand.primary}"},
		{Name: "spacing-sm", Type: "-", Value: "4px"},
	}

	var buf bytes.Buffer
	if err := Table(&buf, rows, false); err != nil {
		t.Fatal(err)
	}

	expected := "color-text  color  #ff0000 ← {color.brand.primary}\n" +
		"spacing-sm  -      4px\n"
	if buf.String() != expected {
		t.Errorf("table mismatch.\n\nExpected:\n%s\n\nActual:\n%s", expected, buf.String())
	}

	buf.Reset()
	if err := Table(&buf, rows, true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[48;2;255;0;0m") {
		t.Error("expected a red swatch")
	}
}

func TestJSON(t *testing.T) {
	rows := []Row{{Name: "spacing-sm", Type: "dimension", Value: "4px", Path: []string{"spacing", "sm"}}}

	var buf bytes.Buffer
	if err := JSON(&buf, rows); err != nil {
		t.Fatal(err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0]["name"] != "spacing-sm" || decoded[0]["value"] != "4px" {
		t.Errorf("unexpected JSON: %s", buf.String())
	}
	if _, ok := decoded[0]["reference"]; ok {
		t.Error("empty reference should be omitted")
	}
}

func TestMarkdownGolden(t *testing.T) {
	expected := testutil.LoadFixtureFile(t, "fixtures/markdown/hierarchy/expected.md")

	rows := []Row{
		{Name: "color-brand-primary", Value: "#ff6b35", Type: "color", Description: "Main brand color", Path: []string{"color", "brand", "primary"}},
		{Name: "color-brand-secondary", Value: "#ff6b35", Type: "color", Path: []string{"color", "brand", "secondary"}},
		{Name: "legacy-gray", Value: "#cccccc", Type: "color", Path: []string{"legacy", "gray"}, Deprecated: true, DeprecationMessage: "Use gray"},
		{Name: "spacing-sm", Value: "4px", Type: "dimension", Path: []string{"spacing", "sm"}},
	}

	var buf bytes.Buffer
	if err := Markdown(&buf, rows); err != nil {
		t.Fatal(err)
	}

	actual := buf.String()
	testutil.UpdateGoldenFile(t, "fixtures/markdown/hierarchy/expected.md", []byte(actual))

	if actual != string(expected) {
		t.Errorf("markdown output mismatch.\n\nExpected:\n%s\n\nActual:\n%s", expected, actual)
	}
}
