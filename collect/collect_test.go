/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package collect_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"bennypowers.dev/tokenkit/collect"
	"bennypowers.dev/tokenkit/internal/mapfs"
	"bennypowers.dev/tokenkit/token"
)

func newTree() *mapfs.MapFileSystem {
	mfs := mapfs.New()
	mfs.AddFile("/repo/new_tokens/primitives/color.json", `{"color": {"red": {"value": "#ff0000"}}}`, 0644)
	mfs.AddFile("/repo/new_tokens/primitives/spacing.json", `{"spacing": {"sm": {"value": 4}}}`, 0644)
	mfs.AddFile("/repo/new_tokens/semantic/brand/primary.json", `{"brand": {"primary": {"value": "{color.red}"}}}`, 0644)
	mfs.AddFile("/repo/new_tokens/themes/dark.json", `{}`, 0644)
	mfs.AddFile("/repo/new_tokens/assets/logo.svg", `<svg/>`, 0644)
	return mfs
}

func TestCollect_KeySet(t *testing.T) {
	merged, err := collect.Collect(newTree(), "/repo/new_tokens")
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	want := []string{
		"primitives/color",
		"primitives/spacing",
		"semantic/brand/primary",
		"themes/dark",
	}
	if diff := cmp.Diff(want, merged.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestCollect_Content(t *testing.T) {
	merged, err := collect.Collect(newTree(), "/repo/new_tokens")
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	color, ok := merged["primitives/color"].(map[string]any)
	if !ok {
		t.Fatalf("expected object for primitives/color, got %T", merged["primitives/color"])
	}
	red := color["color"].(map[string]any)["red"].(map[string]any)
	if red["value"] != "#ff0000" {
		t.Errorf("unexpected red value: %v", red["value"])
	}
}

func TestCollect_MalformedFile(t *testing.T) {
	mfs := newTree()
	mfs.AddFile("/repo/new_tokens/semantic/broken.json", `{"oops": `, 0644)

	merged, err := collect.Collect(mfs, "/repo/new_tokens")
	if err == nil {
		t.Fatal("expected error for malformed file")
	}
	if merged != nil {
		t.Errorf("expected no partial result, got %d entries", len(merged))
	}
	if !errors.Is(err, token.ErrMalformedTokenFile) {
		t.Errorf("expected ErrMalformedTokenFile, got %v", err)
	}
	if !strings.Contains(err.Error(), "semantic/broken.json") {
		t.Errorf("error should name the offending file: %v", err)
	}
}

func TestWrite(t *testing.T) {
	mfs := newTree()
	merged, err := collect.Collect(mfs, "/repo/new_tokens")
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if err := collect.Write(mfs, "/repo/dist/json/tokens.source-map.json", merged); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := mfs.ReadFile("/repo/dist/json/tokens.source-map.json")
	if err != nil {
		t.Fatalf("source map not written: %v", err)
	}

	got := string(data)
	if !strings.HasPrefix(got, "{\n  \"primitives/color\": {\n    \"color\": {") {
		t.Errorf("expected 2-space indented output, got:\n%s", got)
	}
	if !strings.Contains(got, `"value": 4`) {
		t.Errorf("expected numeric value to be preserved, got:\n%s", got)
	}
	if !strings.HasSuffix(got, "}\n") {
		t.Errorf("expected trailing newline")
	}
}
