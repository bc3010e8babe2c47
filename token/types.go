/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Token types recognised by the built-in transforms.
const (
	TypeColor       = "color"
	TypeDimension   = "dimension"
	TypeSpacing     = "spacing"
	TypeSize        = "size"
	TypeFontFamily  = "fontFamily"
	TypeFontWeight  = "fontWeight"
	TypeDuration    = "duration"
	TypeCubicBezier = "cubicBezier"
	TypeNumber      = "number"
	TypeAsset       = "asset"
	TypeShadow      = "shadow"
	TypeTypography  = "typography"
)

// IsType reports whether the token has the given type. Untyped tokens fall back
// to their category, so color/brand/primary without a type counts as a color.
func (t *Token) IsType(typ string) bool {
	if t.Type != "" {
		return t.Type == typ
	}
	return t.Category() == typ
}
