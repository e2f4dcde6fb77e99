package main

import (
	"io"
	"os"
	"time"

	mdpress "github.com/alnah/go-mdpress"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
	Runner mdpress.CommandRunner // runs converters and the opener
	Sleep  func(time.Duration)
	Dir    string // directory scanned for input; "" = working directory
	Home   string // expansion of "~"
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	home, _ := os.UserHomeDir()
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Runner: &mdpress.ExecRunner{},
		Sleep:  time.Sleep,
		Home:   home,
	}
}
