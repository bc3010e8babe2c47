/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command tokenkit validates design tokens and builds CSS, JSON and
// TypeScript outputs from them.
package main

import (
	"os"

	"bennypowers.dev/tokenkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
