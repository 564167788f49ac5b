package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags select the blog and post used as render context.
type siteFlags struct {
	path string
	post string
}

// styleFlags hold highlighting and standalone page options.
type styleFlags struct {
	highlight  string
	page       string
	assetPath  string
	standalone bool
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common   commonFlags
	output   string
	workers  int
	timeout  string
	sanitize bool
	watch    bool
	site     siteFlags
	style    styleFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addSiteFlags adds render context flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVar(&f.path, "site", "", "site file with the blog and its posts")
	fs.StringVar(&f.post, "post", "", "render as the post with this slug")
}

// addStyleFlags adds style flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.highlight, "style", "", "code highlighting style name")
	fs.StringVar(&f.page, "page-style", "", "standalone page style name, CSS file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom template and style directory")
	fs.BoolVar(&f.standalone, "standalone", false, "wrap output in a complete HTML page")
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, usage io.Writer) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	f := &renderFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-document timeout (e.g., 5s, 1m)")
	fs.BoolVar(&f.sanitize, "sanitize", false, "sanitize every rendered document")
	fs.BoolVar(&f.watch, "watch", false, "re-render files when they change")

	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)
	addStyleFlags(fs, &f.style)

	fs.SetOutput(usage)
	fs.Usage = func() { printRenderUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// textFlags holds flags for the clean and unmark commands.
type textFlags struct {
	config string
}

// parseTextFlags parses flags of the commands that read one document.
func parseTextFlags(name string, args []string, usage io.Writer, printUsage func(io.Writer)) (*textFlags, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	f := &textFlags{}
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")

	fs.SetOutput(usage)
	fs.Usage = func() { printUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// cssFlags holds flags for the css command.
type cssFlags struct {
	style string
	list  bool
}

// parseCSSFlags parses css command flags.
func parseCSSFlags(args []string, usage io.Writer) (*cssFlags, []string, error) {
	fs := flag.NewFlagSet("css", flag.ContinueOnError)
	f := &cssFlags{}
	fs.StringVar(&f.style, "style", "", "code highlighting style name")
	fs.BoolVar(&f.list, "list", false, "list available styles")

	fs.SetOutput(usage)
	fs.Usage = func() { printCSSUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
