/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokenkit/internal/mapfs"
	"bennypowers.dev/tokenkit/schema"
	"bennypowers.dev/tokenkit/testutil"
	"bennypowers.dev/tokenkit/token"
	"bennypowers.dev/tokenkit/validator"
)

const (
	root       = "/repo"
	sourceDir  = "/repo/new_tokens"
	schemaPath = "/repo/schemas/token.schema.json"
)

func newTree(t *testing.T, files map[string]string) *mapfs.MapFileSystem {
	t.Helper()
	all := map[string]string{"schemas/token.schema.json": testutil.TokenSchema}
	for k, v := range files {
		all[k] = v
	}
	return testutil.NewTree(t, root, all)
}

func validate(t *testing.T, mfs *mapfs.MapFileSystem) *validator.Report {
	t.Helper()
	report, err := validator.Validate(mfs, validator.Options{SourceDir: sourceDir, SchemaPath: schemaPath})
	require.NoError(t, err)
	return report
}

// summary reduces problems to "kind|file|path" for comparison.
func summary(problems []validator.ValidationError) []string {
	out := make([]string, 0, len(problems))
	for _, p := range problems {
		out = append(out, p.Kind.Error()+"|"+p.FilePath+"|"+p.Path)
	}
	return out
}

func TestValidate_ValidTree(t *testing.T) {
	mfs := newTree(t, map[string]string{
		"new_tokens/primitives/color.json": `{"color": {"red": {"value": "#f00", "type": "color"}}}`,
		"new_tokens/primitives/space.json": `{"space": {"sm": {"value": 4}}}`,
		"new_tokens/semantic/text.json":    `{"text": {"body": {"value": "{color.red}"}}}`,
		"new_tokens/themes/dark.json":      `{"color": {"red": {"value": "#c00"}}}`,
		"new_tokens/assets/logo.svg":       `<svg/>`,
		"new_tokens/README.md":             `not json`,
	})

	report := validate(t, mfs)

	assert.Equal(t, 4, report.Files)
	assert.True(t, report.OK())
	assert.NoError(t, report.Err())
	assert.Empty(t, report.Problems)
}

func TestValidate_ReportsEveryFile(t *testing.T) {
	mfs := newTree(t, map[string]string{
		"new_tokens/primitives/a.json": `{"space": {"sm": {"value": true}}}`,
		"new_tokens/primitives/b.json": `{"color": {"red": {"value": "#f00"}}}`,
		"new_tokens/semantic/c.json":   `{"color": {"text": {"value": "#000", "type": 3}, "link": {"value": null}}}`,
		"new_tokens/themes/d.json":     `{"color": `,
	})

	report := validate(t, mfs)

	assert.Equal(t, 4, report.Files)
	assert.False(t, report.OK())

	want := []string{
		"schema violation|/repo/new_tokens/primitives/a.json|space.sm.value",
		"schema violation|/repo/new_tokens/semantic/c.json|color.link.value",
		"schema violation|/repo/new_tokens/semantic/c.json|color.text.type",
		"malformed token file|/repo/new_tokens/themes/d.json|",
	}
	if diff := cmp.Diff(want, summary(report.Problems)); diff != "" {
		t.Errorf("problems mismatch (-want +got):\n%s", diff)
	}

	err := report.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, token.ErrSchemaViolation)
	assert.ErrorIs(t, err, token.ErrMalformedTokenFile)
	assert.NotErrorIs(t, err, token.ErrMissingLogoAsset)
	assert.Contains(t, err.Error(), "4 problem(s)")

	typeProblem := report.Problems[2]
	assert.Equal(t, "check the value's type", typeProblem.Suggestion)
	assert.Contains(t, typeProblem.Error(), "/repo/new_tokens/semantic/c.json: color.text.type: ")
}

func TestValidate_RejectsJSONExtensions(t *testing.T) {
	mfs := newTree(t, map[string]string{
		"new_tokens/primitives/commented.json": "{\n  // brand red\n  \"color\": {\"red\": {\"value\": \"#f00\"}}\n}",
		"new_tokens/primitives/trailing.json":  `{"color": {"blue": {"value": "#00f",},},}`,
		"new_tokens/primitives/plain.json":     `{"color": {"green": {"value": "#0f0"}}}`,
	})

	report := validate(t, mfs)

	assert.Equal(t, 3, report.Files)
	assert.False(t, report.OK())

	want := []string{
		"malformed token file|/repo/new_tokens/primitives/commented.json|",
		"malformed token file|/repo/new_tokens/primitives/trailing.json|",
	}
	if diff := cmp.Diff(want, summary(report.Problems)); diff != "" {
		t.Errorf("problems mismatch (-want +got):\n%s", diff)
	}
	assert.ErrorIs(t, report.Err(), token.ErrMalformedTokenFile)
}

func TestValidate_Logo(t *testing.T) {
	tests := []struct {
		name    string
		entries string
		assets  []string
		want    []string
	}{
		{
			name:    "present with leading slash",
			entries: `{"main": "/assets/logo.svg"}`,
			assets:  []string{"assets/logo.svg"},
		},
		{
			name:    "present without assets prefix",
			entries: `{"mark": "img/mark.svg"}`,
			assets:  []string{"img/mark.svg"},
		},
		{
			name:    "missing",
			entries: `{"main": "/assets/logo.svg"}`,
			want:    []string{"logo.main"},
		},
		{
			name:    "assets prefix is not inserted",
			entries: `{"main": "logo.svg"}`,
			assets:  []string{"assets/logo.svg"},
			want:    []string{"logo.main"},
		},
		{
			name:    "non-string entries are skipped",
			entries: `{"main": "/assets/logo.svg", "size": 48, "meta": {"alt": "x"}}`,
			assets:  []string{"assets/logo.svg"},
		},
		{
			name:    "escaping the source root is missing",
			entries: `{"main": "../schemas/token.schema.json"}`,
			want:    []string{"logo.main"},
		},
		{
			name:    "empty path is missing",
			entries: `{"main": ""}`,
			want:    []string{"logo.main"},
		},
		{
			name:    "sorted by variant",
			entries: `{"zeta": "/z.svg", "alpha": "/a.svg", "mid": "/assets/m.svg"}`,
			assets:  []string{"assets/m.svg"},
			want:    []string{"logo.alpha", "logo.zeta"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := map[string]string{
				"new_tokens/semantic/logo.json": `{"logo": ` + tt.entries + `}`,
			}
			for _, a := range tt.assets {
				files["new_tokens/"+a] = "<svg/>"
			}
			report := validate(t, newTree(t, files))

			var got []string
			for _, p := range report.Problems {
				if errors.Is(&p, token.ErrMissingLogoAsset) {
					got = append(got, p.Path)
					assert.Equal(t, "/repo/new_tokens/semantic/logo.json", p.FilePath)
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_LogoMessage(t *testing.T) {
	report := validate(t, newTree(t, map[string]string{
		"new_tokens/semantic/logo.json": `{"logo": {"main": "/assets/logo.svg"}}`,
	}))
	require.Len(t, report.Problems, 1)
	assert.Equal(t, "missing logo asset for logo.main: /assets/logo.svg", report.Problems[0].Message)
}

func TestValidate_NoLogoFile(t *testing.T) {
	report := validate(t, newTree(t, map[string]string{
		"new_tokens/primitives/color.json": `{"color": {"red": {"value": "#f00"}}}`,
	}))
	assert.True(t, report.OK())
}

func TestValidate_CustomLogoFile(t *testing.T) {
	mfs := newTree(t, map[string]string{
		"new_tokens/brand/logos.json": `{"logo": {"main": "/missing.svg"}}`,
	})
	report, err := validator.Validate(mfs, validator.Options{
		SourceDir:  sourceDir,
		SchemaPath: schemaPath,
		LogoFile:   "brand/logos.json",
	})
	require.NoError(t, err)
	require.Len(t, report.Problems, 1)
	assert.ErrorIs(t, &report.Problems[0], token.ErrMissingLogoAsset)
}

func TestValidate_OperationalErrors(t *testing.T) {
	t.Run("missing source dir", func(t *testing.T) {
		mfs := newTree(t, nil)
		_, err := validator.Validate(mfs, validator.Options{SourceDir: sourceDir, SchemaPath: schemaPath})
		assert.Error(t, err)
	})

	t.Run("missing schema", func(t *testing.T) {
		mfs := testutil.NewTree(t, root, map[string]string{
			"new_tokens/primitives/color.json": `{}`,
		})
		_, err := validator.Validate(mfs, validator.Options{SourceDir: sourceDir, SchemaPath: schemaPath})
		assert.Error(t, err)
	})

	t.Run("invalid schema", func(t *testing.T) {
		mfs := testutil.NewTree(t, root, map[string]string{
			"new_tokens/primitives/color.json": `{}`,
			"schemas/token.schema.json":        `{"type": 12}`,
		})
		_, err := validator.Validate(mfs, validator.Options{SourceDir: sourceDir, SchemaPath: schemaPath})
		assert.ErrorIs(t, err, schema.ErrInvalidSchema)
	})
}
