/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokenkit/token"
	"bennypowers.dev/tokenkit/transform"
)

func newToken(path, typ string, value any) *token.Token {
	p := strings.Split(path, ".")
	return &token.Token{
		Name:          strings.Join(p, "-"),
		Path:          p,
		Type:          typ,
		RawValue:      value,
		ResolvedValue: value,
		IsResolved:    true,
	}
}

func TestNameTransforms(t *testing.T) {
	tok := newToken("color.brand.primaryDark", "color", "#f00")

	tests := []struct {
		name   string
		prefix string
		want   string
	}{
		{transform.NameKebab, "", "color-brand-primary-dark"},
		{transform.NameKebab, "rh", "rh-color-brand-primary-dark"},
		{transform.NameCamel, "", "colorBrandPrimaryDark"},
		{transform.NamePascal, "", "ColorBrandPrimaryDark"},
		{transform.NamePascal, "rh", "RhColorBrandPrimaryDark"},
		{transform.NameDot, "", "color.brand.primaryDark"},
		{transform.NameDot, "rh", "rh.color.brand.primaryDark"},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.prefix, func(t *testing.T) {
			tr, err := transform.Lookup(tt.name)
			require.NoError(t, err)
			assert.Equal(t, transform.KindName, tr.Kind)
			assert.Equal(t, tt.want, tr.Rename(tok, tt.prefix))
		})
	}
}

func TestValueTransforms(t *testing.T) {
	tests := []struct {
		transform string
		tok       *token.Token
		want      any
	}{
		{transform.ColorCSSName, newToken("color.red", "color", "#FF0000"), "#ff0000"},
		{transform.ColorCSSName, newToken("color.red", "", "rgb(255, 0, 0)"), "#ff0000"},
		{transform.ColorCSSName, newToken("color.veil", "color", "rgba(0, 0, 0, 0.5)"), "rgba(0, 0, 0, 0.5)"},
		{transform.ColorCSSName, newToken("color.x", "color", "var(--x)"), "var(--x)"},
		{transform.ColorHexName, newToken("color.red", "color", "red"), "#ff0000"},
		{transform.ColorHexName, newToken("color.veil", "color", "#00000080"), "#00000080"},
		{transform.SizePxName, newToken("spacing.sm", "dimension", 4.0), "4px"},
		{transform.SizePxName, newToken("size.half", "", 0.5), "0.5px"},
		{transform.FontFamilyName, newToken("font.body", "fontFamily", []any{"Open Sans", "sans-serif"}), `"Open Sans", sans-serif`},
		{transform.CubicBezierName, newToken("easing.out", "cubicBezier", []any{0.25, 0.1, 0.25, 1.0}), "cubic-bezier(0.25, 0.1, 0.25, 1)"},
		{transform.AssetURLName, newToken("logo.main", "asset", "assets/logo.svg"), `url("assets/logo.svg")`},
	}
	for _, tt := range tests {
		t.Run(tt.transform+"/"+tt.tok.DotPath(), func(t *testing.T) {
			tr, err := transform.Lookup(tt.transform)
			require.NoError(t, err)
			require.True(t, tr.Matcher(tt.tok), "expected matcher to select %s", tt.tok.DotPath())
			got, err := tr.Convert(tt.tok)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchers(t *testing.T) {
	sizePx, err := transform.Lookup(transform.SizePxName)
	require.NoError(t, err)
	assert.False(t, sizePx.Matcher(newToken("spacing.sm", "dimension", "4rem")), "string dimensions are left alone")
	assert.False(t, sizePx.Matcher(newToken("opacity.half", "number", 0.5)))

	colorCSS, err := transform.Lookup(transform.ColorCSSName)
	require.NoError(t, err)
	assert.False(t, colorCSS.Matcher(newToken("spacing.sm", "dimension", "#fff")))
}

func TestCubicBezier_WrongArity(t *testing.T) {
	tr, err := transform.Lookup(transform.CubicBezierName)
	require.NoError(t, err)
	_, err = tr.Convert(newToken("easing.bad", "cubicBezier", []any{0.1, 0.2}))
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	transforms, err := transform.Resolve(transform.GroupJS, []string{transform.SizePxName})
	require.NoError(t, err)
	names := make([]string, len(transforms))
	for i, tr := range transforms {
		names[i] = tr.Name
	}
	assert.Equal(t, []string{transform.NamePascal, transform.ColorHexName, transform.SizePxName}, names)

	_, err = transform.Resolve("android", nil)
	assert.ErrorIs(t, err, token.ErrUnknownTransform)

	_, err = transform.Resolve(transform.GroupCSS, []string{"size/rem"})
	assert.ErrorIs(t, err, token.ErrUnknownTransform)
}

func TestApply(t *testing.T) {
	tokens := []*token.Token{
		newToken("color.brand.primary", "color", "#FF0000"),
		newToken("spacing.sm", "dimension", 4.0),
		newToken("font.weight.bold", "fontWeight", 700.0),
	}
	transforms, err := transform.Resolve(transform.GroupCSS, nil)
	require.NoError(t, err)

	require.NoError(t, transform.Apply(tokens, transforms, ""))

	assert.Equal(t, "color-brand-primary", tokens[0].Name)
	assert.Equal(t, "#ff0000", tokens[0].ResolvedValue)
	assert.Equal(t, "spacing-sm", tokens[1].Name)
	assert.Equal(t, "4px", tokens[1].ResolvedValue)
	assert.Equal(t, 700.0, tokens[2].ResolvedValue)
}

func TestNames(t *testing.T) {
	names := transform.Names()
	assert.Contains(t, names, transform.NameKebab)
	assert.Contains(t, names, transform.AssetURLName)
	assert.IsIncreasing(t, names)
}
