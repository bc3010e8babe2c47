/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "errors"

// Sentinel errors shared by the collector, validator, builder and engine.
var (
	// ErrMalformedTokenFile indicates a token file is not valid JSON.
	ErrMalformedTokenFile = errors.New("malformed token file")

	// ErrSchemaViolation indicates a token file does not conform to the token schema.
	ErrSchemaViolation = errors.New("schema violation")

	// ErrMissingLogoAsset indicates a logo token references a file that does not exist.
	ErrMissingLogoAsset = errors.New("missing logo asset")

	// ErrTypingsGenerationFailed indicates the flat JSON output could not be turned into typings.
	ErrTypingsGenerationFailed = errors.New("typings generation failed")

	// ErrEngineInvocation indicates the transformation engine failed.
	ErrEngineInvocation = errors.New("token engine invocation failed")

	// ErrCircularReference indicates a circular reference was detected.
	ErrCircularReference = errors.New("circular reference detected")

	// ErrUnresolvedReference indicates a reference could not be resolved.
	ErrUnresolvedReference = errors.New("unresolved token reference")

	// ErrUnknownFormat indicates a platform file names an unregistered format.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrUnknownTransform indicates a platform names an unregistered transform or group.
	ErrUnknownTransform = errors.New("unknown transform")
)
