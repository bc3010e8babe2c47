/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator checks a token source tree against the token schema and
// cross-checks logo asset references.
package validator

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"bennypowers.dev/tokenkit/fs"
	"bennypowers.dev/tokenkit/internal/logger"
	"bennypowers.dev/tokenkit/schema"
	"bennypowers.dev/tokenkit/source"
	"bennypowers.dev/tokenkit/token"
)

// DefaultLogoFile is the logo token file, relative to the source directory.
const DefaultLogoFile = "semantic/logo.json"

// ValidationError represents one problem found in the token tree.
type ValidationError struct {
	// Kind is the sentinel the problem matches with errors.Is, one of
	// token.ErrMalformedTokenFile, token.ErrSchemaViolation or
	// token.ErrMissingLogoAsset.
	Kind error
	// FilePath is the path to the file containing the error.
	FilePath string
	// Path is the dotted path to the problematic element.
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Unwrap returns the problem's kind.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// Options configures Validate.
type Options struct {
	// SourceDir is the token source tree root.
	SourceDir string
	// SchemaPath is the JSON Schema every token file must satisfy.
	SchemaPath string
	// LogoFile is relative to SourceDir. Defaults to DefaultLogoFile.
	LogoFile string
}

// Report is the outcome of a validation run.
type Report struct {
	// Files is the number of JSON files checked.
	Files int
	Problems []ValidationError
}

// OK reports whether no problems were found.
func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

// Err returns nil for a clean report, otherwise an error matching the
// kind of every problem.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	return &failedError{problems: r.Problems}
}

type failedError struct {
	problems []ValidationError
}

func (e *failedError) Error() string {
	return fmt.Sprintf("token validation failed: %d problem(s)", len(e.problems))
}

func (e *failedError) Unwrap() []error {
	errs := make([]error, len(e.problems))
	for i := range e.problems {
		errs[i] = &e.problems[i]
	}
	return errs
}

// Validate checks every JSON file under opts.SourceDir and the logo assets.
// It never stops at the first problem; every problem found is reported.
// A missing source directory or an unusable schema is returned as an error.
func Validate(filesystem fs.FileSystem, opts Options) (*Report, error) {
	if !filesystem.Exists(opts.SourceDir) {
		return nil, fmt.Errorf("token source directory not found: %s", opts.SourceDir)
	}

	s, err := schema.Compile(filesystem, opts.SchemaPath)
	if err != nil {
		return nil, err
	}

	files, err := source.JSONFiles(filesystem, opts.SourceDir)
	if err != nil {
		return nil, err
	}

	report := &Report{Files: len(files)}
	for _, file := range files {
		logger.Debug("validating %s", file)
		problems, err := validateFile(filesystem, s, file)
		if err != nil {
			return nil, err
		}
		report.Problems = append(report.Problems, problems...)
	}

	logoFile := opts.LogoFile
	if logoFile == "" {
		logoFile = DefaultLogoFile
	}
	report.Problems = append(report.Problems, checkLogo(filesystem, opts.SourceDir, logoFile)...)

	return report, nil
}

func validateFile(filesystem fs.FileSystem, s *schema.Schema, file string) ([]ValidationError, error) {
	data, err := filesystem.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}
	doc, err := source.Decode(data)
	if err != nil {
		return []ValidationError{{
			Kind:       token.ErrMalformedTokenFile,
			FilePath:   file,
			Message:    err.Error(),
			Suggestion: "fix the JSON syntax",
		}}, nil
	}

	violations := s.Validate(doc)
	problems := make([]ValidationError, 0, len(violations))
	for _, v := range violations {
		problems = append(problems, ValidationError{
			Kind:       token.ErrSchemaViolation,
			FilePath:   file,
			Path:       v.Path(),
			Message:    v.Message,
			Suggestion: suggestion(v.KeywordLocation),
		})
	}
	return problems, nil
}

// suggestion maps the failing schema keyword to a hint.
func suggestion(keywordLocation string) string {
	switch path.Base(filepath.ToSlash(keywordLocation)) {
	case "required":
		return "add the missing property"
	case "type":
		return "check the value's type"
	case "additionalProperties", "unevaluatedProperties":
		return "remove the property or fix its spelling"
	case "enum", "const":
		return "use one of the allowed values"
	case "pattern", "format":
		return "match the expected format"
	}
	return ""
}
