/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package schema compiles the token JSON Schema and validates decoded token
// documents against it.
package schema

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"bennypowers.dev/tokenkit/fs"
)

// pseudoSchemaFile - the compiled schema is registered as this resource.
const pseudoSchemaFile = "file:///token.schema.json"

// Schema is a compiled token schema, safe to reuse across documents.
type Schema struct {
	compiled *jsonschema.Schema
}

// Violation is one failed schema assertion.
type Violation struct {
	// InstanceLocation is a JSON pointer into the document, e.g. "/color/primary".
	InstanceLocation string
	// KeywordLocation is a JSON pointer into the schema.
	KeywordLocation string
	Message         string
}

// Path returns the instance location as a dotted path, e.g. "color.primary".
// The document root is "".
func (v Violation) Path() string {
	path := strings.TrimLeft(v.InstanceLocation, "/")
	return strings.ReplaceAll(path, "/", ".")
}

func (v Violation) String() string {
	if path := v.Path(); path != "" {
		return fmt.Sprintf("%s: %s", path, v.Message)
	}
	return v.Message
}

// Compile reads and compiles the schema at path.
func Compile(filesystem fs.FileSystem, path string) (*Schema, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %s: %w", path, err)
	}
	s, err := CompileBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// CompileBytes compiles a schema document.
func CompileBytes(data []byte) (*Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(pseudoSchemaFile, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	compiled, err := c.Compile(pseudoSchemaFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	return &Schema{compiled: compiled}, nil
}

// Validate checks a decoded document and returns every leaf violation,
// sorted by instance location. A valid document yields nil.
func (s *Schema) Validate(doc any) []Violation {
	err := s.compiled.Validate(doc)
	if err == nil {
		return nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return []Violation{{Message: err.Error()}}
	}

	var violations []Violation
	collectLeaves(validationErr, &violations)

	sort.SliceStable(violations, func(i, j int) bool {
		if violations[i].InstanceLocation != violations[j].InstanceLocation {
			return violations[i].InstanceLocation < violations[j].InstanceLocation
		}
		return violations[i].KeywordLocation < violations[j].KeywordLocation
	})
	return violations
}

// collectLeaves walks the cause tree; only leaves carry actionable messages.
func collectLeaves(e *jsonschema.ValidationError, out *[]Violation) {
	if len(e.Causes) == 0 {
		*out = append(*out, Violation{
			InstanceLocation: e.InstanceLocation,
			KeywordLocation:  e.KeywordLocation,
			Message:          e.Message,
		})
		return
	}
	for _, cause := range e.Causes {
		collectLeaves(cause, out)
	}
}
