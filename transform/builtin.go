/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import "bennypowers.dev/tokenkit/token"

// Built-in transform names.
const (
	NameKebab       = "name/kebab"
	NameCamel       = "name/camel"
	NamePascal      = "name/pascal"
	NameDot         = "name/dot"
	ColorCSSName    = "color/css"
	ColorHexName    = "color/hex"
	SizePxName      = "size/px"
	FontFamilyName  = "fontFamily/css"
	CubicBezierName = "cubicBezier/css"
	AssetURLName    = "asset/url"
)

// Built-in group names.
const (
	GroupCSS = "css"
	GroupJS  = "js"
)

func init() {
	Register(Transform{Name: NameKebab, Kind: KindName, Rename: Kebab})
	Register(Transform{Name: NameCamel, Kind: KindName, Rename: Camel})
	Register(Transform{Name: NamePascal, Kind: KindName, Rename: Pascal})
	Register(Transform{Name: NameDot, Kind: KindName, Rename: Dot})

	Register(Transform{Name: ColorCSSName, Kind: KindValue, Matcher: isColor, Convert: ColorCSS})
	Register(Transform{Name: ColorHexName, Kind: KindValue, Matcher: isColor, Convert: ColorHex})
	Register(Transform{Name: SizePxName, Kind: KindValue, Matcher: isSize, Convert: SizePx})
	Register(Transform{
		Name:    FontFamilyName,
		Kind:    KindValue,
		Matcher: func(tok *token.Token) bool { return tok.IsType(token.TypeFontFamily) },
		Convert: FontFamilyCSS,
	})
	Register(Transform{
		Name:    CubicBezierName,
		Kind:    KindValue,
		Matcher: func(tok *token.Token) bool { return tok.IsType(token.TypeCubicBezier) },
		Convert: CubicBezierCSS,
	})
	Register(Transform{
		Name: AssetURLName,
		Kind: KindValue,
		Matcher: func(tok *token.Token) bool {
			_, ok := tok.ResolvedValue.(string)
			return ok && tok.IsType(token.TypeAsset)
		},
		Convert: AssetURL,
	})

	RegisterGroup(GroupCSS, []string{NameKebab, ColorCSSName, SizePxName, FontFamilyName, CubicBezierName, AssetURLName})
	RegisterGroup(GroupJS, []string{NamePascal, ColorHexName})
}
