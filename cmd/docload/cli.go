package main

import (
	"context"
	"io"

	"github.com/docload/docload"
	"github.com/docload/docload/load"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Loader *load.Loader

	// Writer persists fetched pages when an output directory is set.
	Writer docload.PageWriter
}

// LoadCmd handles a single load run.
type LoadCmd struct {
	Input   docload.RunInput
	Preview bool
	JSON    bool
}
