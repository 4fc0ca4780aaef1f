package main

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/spantree/render"
)

const formatDOT = "dot"

// checkFormat validates the --format flag; dot is only meaningful for a single forest.
func checkFormat(format string, allowDOT bool) error {
	if allowDOT && format == formatDOT {
		return nil
	}
	if !slices.Contains(render.Formats, format) {
		return errors.Wrapf(render.ErrUnknownFormat, "%q", format)
	}

	return nil
}
