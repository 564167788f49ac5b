package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blogmark <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render markdown files to HTML")
	fmt.Fprintln(w, "  clean      Sanitize HTML to stdout")
	fmt.Fprintln(w, "  unmark     Print a plain-text excerpt of markdown")
	fmt.Fprintln(w, "  css        Print a code highlighting stylesheet")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'blogmark help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blogmark render <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render markdown files to HTML fragments.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: next to input)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Per-document timeout (e.g., 5s, 1m)")
	fmt.Fprintln(w, "      --watch               Re-render files when they change")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Context:")
	fmt.Fprintln(w, "      --site <path>         Site file with the blog and its posts")
	fmt.Fprintln(w, "      --post <slug>         Render as this post of the site")
	fmt.Fprintln(w, "                            Front matter (--- yaml ---) describes the post otherwise")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --sanitize            Sanitize every rendered document")
	fmt.Fprintln(w, "      --standalone          Wrap output in a complete HTML page")
	fmt.Fprintln(w, "      --style <name>        Code highlighting style")
	fmt.Fprintln(w, "      --page-style <s>      Standalone page style name or CSS file path")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom template and style directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  BLOGMARK_CONFIG, BLOGMARK_SITE, BLOGMARK_OUTPUT_DIR, BLOGMARK_STYLE,")
	fmt.Fprintln(w, "  BLOGMARK_ASSET_PATH, BLOGMARK_TIMEOUT, BLOGMARK_WORKERS")
}

// printCleanUsage prints usage for the clean command.
func printCleanUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blogmark clean [file|-] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Sanitize HTML read from a file or stdin and print it.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (sanitize.embedHosts)")
}

// printUnmarkUsage prints usage for the unmark command.
func printUnmarkUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blogmark unmark [file|-]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print a plain-text excerpt of markdown read from a file or stdin.")
}

// printCSSUsage prints usage for the css command.
func printCSSUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blogmark css [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the stylesheet matching highlighted code blocks.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --style <name>        Code highlighting style (default: friendly)")
	fmt.Fprintln(w, "      --list                List available styles")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blogmark config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration after environment overrides, as YAML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "clean":
		printCleanUsage(env.Stdout)
	case "unmark":
		printUnmarkUsage(env.Stdout)
	case "css":
		printCSSUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: blogmark version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: blogmark help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
