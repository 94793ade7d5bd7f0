// Tonelab - accessible colour scale generator
//
// Tonelab derives WCAG-checked colour roles from a stepped colour palette
// and previews or exports the results.
//
// Copyright (c) 2026 Tonelab Authors
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/tonelab/tonelab/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
