package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alnah/go-blogmark/internal/config"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, logging, and configuration.
type Environment struct {
	Now    func() time.Time
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config *config.Config // Loaded once per command
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: slog.Default(),
		Config: config.DefaultConfig(),
	}
}
