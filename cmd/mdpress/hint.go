package main

import (
	"errors"
	"os/exec"

	mdpress "github.com/alnah/go-mdpress"
	"github.com/alnah/go-mdpress/internal/config"
	"github.com/alnah/go-mdpress/internal/hints"
)

// fatalHint returns the hint printed after an error that stopped the run.
func fatalHint(err error) string {
	var noInput *mdpress.NoInputError
	if errors.As(err, &noInput) && noInput.Err == nil {
		return hints.ForNoInput(noInput.Ext, noInput.Dir)
	}
	var notFound *config.NotFoundError
	if errors.As(err, &notFound) {
		return hints.ForConfigNotFound(notFound.Tried)
	}
	return ""
}

// recoveredHint returns the Builder hint function for errors printed while
// the run continues.
func recoveredHint(tools mdpress.Tools) func(error) string {
	return func(err error) string {
		if errors.Is(err, mdpress.ErrOpen) {
			return hints.ForOpenFailed()
		}
		var ce *mdpress.ConversionError
		if errors.As(err, &ce) && errors.Is(err, exec.ErrNotFound) {
			return hints.ForToolNotFound(ce.Tool, toolEnvVar(ce.Tool, tools))
		}
		return ""
	}
}

// toolEnvVar names the variable overriding tool, if any.
func toolEnvVar(tool string, tools mdpress.Tools) string {
	switch tool {
	case tools.Pandoc:
		return envPandoc
	case tools.Kindlegen:
		return envKindlegen
	case tools.Open:
		return envOpen
	default:
		return ""
	}
}
