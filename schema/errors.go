/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import "errors"

// Sentinel errors for schema operations.
var (
	// ErrInvalidSchema indicates the schema document could not be compiled.
	ErrInvalidSchema = errors.New("invalid token schema")
)
