/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/tokenkit/convert/formatter/css"
	"bennypowers.dev/tokenkit/token"
)

func isColor(tok *token.Token) bool {
	_, ok := tok.ResolvedValue.(string)
	return ok && tok.IsType(token.TypeColor)
}

func isSize(tok *token.Token) bool {
	if _, ok := number(tok.ResolvedValue); !ok {
		return false
	}
	return tok.IsType(token.TypeDimension) || tok.IsType(token.TypeSize) || tok.IsType(token.TypeSpacing)
}

// number reports the numeric value of v, if it is one.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ColorCSS renders a color as 6-digit hex when opaque and rgba() otherwise.
// Values csscolorparser cannot read pass through unchanged.
func ColorCSS(tok *token.Token) (any, error) {
	s := tok.ResolvedValue.(string)
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return s, nil
	}
	if c.A >= 1 {
		return c.HexString(), nil
	}
	r, g, b, _ := c.RGBA255()
	alpha := math.Round(c.A*100) / 100
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatFloat(alpha)), nil
}

// ColorHex renders a color as hex, with an alpha channel only when translucent.
func ColorHex(tok *token.Token) (any, error) {
	s := tok.ResolvedValue.(string)
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return s, nil
	}
	if c.A < 1 {
		return c.HexString(), nil
	}
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex(), nil
}

// SizePx appends px to unitless dimensions.
func SizePx(tok *token.Token) (any, error) {
	n, _ := number(tok.ResolvedValue)
	return formatFloat(n) + "px", nil
}

// FontFamilyCSS quotes family names containing spaces and joins stacks.
func FontFamilyCSS(tok *token.Token) (any, error) {
	return css.ToCSSValue(token.TypeFontFamily, tok.ResolvedValue), nil
}

// CubicBezierCSS renders a four-number array as cubic-bezier().
func CubicBezierCSS(tok *token.Token) (any, error) {
	arr, ok := tok.ResolvedValue.([]any)
	if !ok {
		return tok.ResolvedValue, nil
	}
	if len(arr) != 4 {
		return nil, fmt.Errorf("cubicBezier needs 4 control points, got %d", len(arr))
	}
	return css.ToCSSValue(token.TypeCubicBezier, arr), nil
}

// AssetURL wraps an asset path in url().
func AssetURL(tok *token.Token) (any, error) {
	s := tok.ResolvedValue.(string)
	if strings.HasPrefix(s, "url(") {
		return s, nil
	}
	return `url("` + strings.ReplaceAll(s, `"`, `\"`) + `")`, nil
}
