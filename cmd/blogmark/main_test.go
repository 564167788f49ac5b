package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRun_Dispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantErr    error
		wantStdout string
		wantStderr string
	}{
		{
			name:       "no command",
			args:       []string{"blogmark"},
			wantErr:    ErrNoCommand,
			wantStderr: "Usage: blogmark <command>",
		},
		{
			name:       "unknown command",
			args:       []string{"blogmark", "publish"},
			wantErr:    ErrUnknownCommand,
			wantStderr: "Commands:",
		},
		{
			name:       "version",
			args:       []string{"blogmark", "version"},
			wantStdout: "blogmark dev",
		},
		{
			name:       "help",
			args:       []string{"blogmark", "help"},
			wantStdout: "render     Render markdown files to HTML",
		},
		{
			name:       "help for render",
			args:       []string{"blogmark", "help", "render"},
			wantStdout: "--standalone",
		},
		{
			name:       "help for css",
			args:       []string{"blogmark", "help", "css"},
			wantStdout: "--list",
		},
		{
			name:    "help for unknown command",
			args:    []string{"blogmark", "help", "publish"},
			wantErr: ErrUnknownCommand,
		},
		{
			name:       "render -h",
			args:       []string{"blogmark", "render", "-h"},
			wantStderr: "Usage: blogmark render",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv("")
			err := run(context.Background(), tt.args, env)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("run() error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("run() error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want it to contain %q", stdout.String(), tt.wantStdout)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var quiet, verbose bytes.Buffer
	newLogger(&quiet, false).Debug("hidden")
	newLogger(&verbose, true).Debug("shown")

	if quiet.Len() != 0 {
		t.Errorf("default logger wrote %q, want debug suppressed", quiet.String())
	}
	if !strings.Contains(verbose.String(), "shown") {
		t.Errorf("verbose logger wrote %q, want debug output", verbose.String())
	}
}
