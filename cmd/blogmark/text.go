package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-blogmark"
	"github.com/alnah/go-blogmark/internal/hints"
	"github.com/alnah/go-blogmark/internal/sanitize"
	"github.com/alnah/go-blogmark/internal/yamlutil"
)

// stdinArg names standard input as a file argument.
const stdinArg = "-"

// maxTextInput bounds what clean and unmark read.
const maxTextInput = 16 << 20

// readInput reads the single optional file argument, or stdin when it
// is absent or "-".
func readInput(args []string, env *Environment) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("%w: expected at most one input, got %d", ErrTooManyArgs, len(args))
	}

	var r io.Reader = env.Stdin
	if len(args) == 1 && args[0] != stdinArg {
		f, err := os.Open(args[0]) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, maxTextInput))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return string(data), nil
}

// writeLine prints s followed by a newline unless s is empty.
func writeLine(w io.Writer, s string) {
	if s == "" {
		return
	}
	fmt.Fprintln(w, strings.TrimRight(s, "\n"))
}

// runClean sanitizes HTML using the configured embed hosts.
func runClean(args []string, env *Environment) error {
	flags, positional, err := parseTextFlags("clean", args, env.Stderr, printCleanUsage)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	envCfg := loadEnvConfig()
	cfg, err := loadConfig(flags.config, envCfg)
	if err != nil {
		return err
	}

	content, err := readInput(positional, env)
	if err != nil {
		return err
	}

	policy := sanitize.Default
	if len(cfg.Sanitize.EmbedHosts) > 0 {
		policy = sanitize.NewPolicy(cfg.Sanitize.EmbedHosts...)
	}
	writeLine(env.Stdout, policy.Clean(content))
	return nil
}

// runUnmark prints a plain-text excerpt of markdown.
func runUnmark(args []string, env *Environment) error {
	_, positional, err := parseTextFlags("unmark", args, env.Stderr, printUnmarkUsage)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	content, err := readInput(positional, env)
	if err != nil {
		return err
	}
	writeLine(env.Stdout, blogmark.Unmark(content))
	return nil
}

// runCSS prints the stylesheet of a highlighting style, or lists styles.
func runCSS(args []string, env *Environment) error {
	flags, positional, err := parseCSSFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: css takes no arguments", ErrTooManyArgs)
	}

	if flags.list {
		for _, name := range blogmark.HighlightStyles() {
			fmt.Fprintln(env.Stdout, name)
		}
		return nil
	}

	style := flags.style
	if style == "" {
		style = loadEnvConfig().Style
	}
	css, err := blogmark.HighlightCSS(style)
	if err != nil {
		if errors.Is(err, blogmark.ErrStyleNotFound) {
			return fmt.Errorf("%w%s", err, hints.ForStyleNotFound(blogmark.HighlightStyles()))
		}
		return err
	}
	writeLine(env.Stdout, css)
	return nil
}

// runConfig prints the configuration after environment overrides.
func runConfig(args []string, env *Environment) error {
	flags, positional, err := parseTextFlags("config", args, env.Stderr, printConfigUsage)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: config takes no arguments", ErrTooManyArgs)
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg, err := loadConfig(flags.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)

	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(data)
	return err
}
