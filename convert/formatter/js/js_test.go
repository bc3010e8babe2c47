/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package js_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokenkit/convert/formatter"
	"bennypowers.dev/tokenkit/convert/formatter/js"
	"bennypowers.dev/tokenkit/token"
)

func tokens() []*token.Token {
	return []*token.Token{
		{Name: "SpacingSm", Path: []string{"spacing", "sm"}, ResolvedValue: json.Number("4")},
		{Name: "ColorBrandPrimary", Path: []string{"color", "brand", "primary"}, ResolvedValue: "#ff0000", Description: "Brand red"},
		{Name: "ColorLegacy", Path: []string{"color", "legacy"}, ResolvedValue: "#cccccc", Deprecated: true, DeprecationMessage: "Use ColorGray"},
	}
}

func TestFormat_ESM(t *testing.T) {
	out, err := js.New().Format(tokens(), formatter.Options{})
	require.NoError(t, err)

	assert.Equal(t, `/**
 * Do not edit directly, this file was auto-generated.
 */

/** Brand red */
export const ColorBrandPrimary = "#ff0000";
/** @deprecated Use ColorGray */
export const ColorLegacy = "#cccccc";
export const SpacingSm = 4;
`, string(out))
}

func TestFormat_CJS(t *testing.T) {
	out, err := js.NewWithModule(js.ModuleCJS).Format(tokens()[:1], formatter.Options{Header: "tokens"})
	require.NoError(t, err)

	assert.Equal(t, `/**
 * tokens
 */

exports.SpacingSm = 4;
`, string(out))
}

func TestFormat_InvalidIdentifier(t *testing.T) {
	_, err := js.New().Format([]*token.Token{
		{Name: "color-brand-primary", Path: []string{"color", "brand", "primary"}, ResolvedValue: "#ff0000"},
	}, formatter.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "color.brand.primary")
}

func TestFormat_Empty(t *testing.T) {
	out, err := js.New().Format(nil, formatter.Options{Header: "empty"})
	require.NoError(t, err)
	assert.Equal(t, "/**\n * empty\n */\n\n", string(out))
}
