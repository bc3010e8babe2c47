/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokenkit/convert/formatter"
	"bennypowers.dev/tokenkit/convert/formatter/css"
	"bennypowers.dev/tokenkit/convert/formatter/flatjson"
	"bennypowers.dev/tokenkit/convert/formatter/js"
	"bennypowers.dev/tokenkit/convert/formatter/nestedjson"
	"bennypowers.dev/tokenkit/token"
)

// Format represents an output format for a platform file.
type Format string

const (
	// FormatCSSVariables outputs CSS custom properties in a :root rule.
	FormatCSSVariables Format = "css/variables"

	// FormatJSONFlat outputs a flat name -> value JSON object.
	FormatJSONFlat Format = "json/flat"

	// FormatJSONNested outputs values nested by token path.
	FormatJSONNested Format = "json/nested"

	// FormatJavaScriptES6 outputs one exported const per token.
	FormatJavaScriptES6 Format = "javascript/es6"

	// FormatJavaScriptModule outputs one CommonJS export per token.
	FormatJavaScriptModule Format = "javascript/module"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatCSSVariables),
		string(FormatJSONFlat),
		string(FormatJSONNested),
		string(FormatJavaScriptES6),
		string(FormatJavaScriptModule),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "css/variables", "css":
		return FormatCSSVariables, nil
	case "json/flat", "json":
		return FormatJSONFlat, nil
	case "json/nested":
		return FormatJSONNested, nil
	case "javascript/es6", "js":
		return FormatJavaScriptES6, nil
	case "javascript/module", "cjs":
		return FormatJavaScriptModule, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: %s)", token.ErrUnknownFormat, s, strings.Join(ValidFormats(), ", "))
	}
}

// FormatTokens renders tokens in the given format.
func FormatTokens(tokens []*token.Token, format Format, file File) ([]byte, error) {
	fmtOpts := formatter.Options{Header: file.Header}

	var f formatter.Formatter
	switch format {
	case FormatCSSVariables:
		f = css.NewWithOptions(css.Options{Selector: css.Selector(file.Selector)})
	case FormatJSONFlat:
		f = flatjson.New()
	case FormatJSONNested:
		f = nestedjson.New()
	case FormatJavaScriptES6:
		f = js.New()
	case FormatJavaScriptModule:
		f = js.NewWithModule(js.ModuleCJS)
	default:
		return nil, fmt.Errorf("%w: %s", token.ErrUnknownFormat, format)
	}

	return f.Format(tokens, fmtOpts)
}
