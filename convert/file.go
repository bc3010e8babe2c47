/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"encoding/json"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML handles both string and object forms for File.
// The string form names the destination; its format follows the extension.
func (f *File) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.setDestination(node.Value)
		return nil
	}

	type rawFile File
	return node.Decode((*rawFile)(f))
}

// UnmarshalJSON handles both string and object forms for File.
func (f *File) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.setDestination(s)
		return nil
	}

	type rawFile File
	return json.Unmarshal(data, (*rawFile)(f))
}

func (f *File) setDestination(dest string) {
	f.Destination = dest
	switch filepath.Ext(dest) {
	case ".css":
		f.Format = string(FormatCSSVariables)
	case ".json":
		f.Format = string(FormatJSONFlat)
	case ".js", ".mjs":
		f.Format = string(FormatJavaScriptES6)
	case ".cjs":
		f.Format = string(FormatJavaScriptModule)
	}
}
