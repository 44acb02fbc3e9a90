package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"
	"pkt.systems/wdf"
)

const defaultThemeName = "default"

func init() {
	version.SetDefaultModule("pkt.systems/wdf")
}

func main() {
	var (
		themeName   string
		colorMode   string
		outPath     string
		boring      bool
		lineNumbers bool
		widthFlag   int
		marker      string
		whitespace  bool
		ignoreCase  bool
		listThemes  bool
	)

	flags := pflag.NewFlagSet("wdf", pflag.ExitOnError)
	flags.StringVarP(&themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.StringVar(&colorMode, "color", "auto", "Color output: auto|on|off")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&boring, "boring", "b", false, "Generate non-ANSI output")
	flags.BoolVarP(&lineNumbers, "line-numbers", "n", false, "Prefix output lines with line numbers")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Truncate output lines to this width (0 disables)")
	flags.StringVar(&marker, "marker", wdf.DefaultDeletionMarker, "Glyph printed at deletion points (empty to suppress)")
	flags.BoolVar(&whitespace, "whitespace", false, "Score all whitespace differences, not just indentation")
	flags.BoolVar(&ignoreCase, "ignore-case", false, "Treat words differing only in case as equal")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: wdf [flags] LOCAL REMOTE\n")
		fmt.Fprintln(os.Stderr, "\nLOCAL is the old document, REMOTE the new one; only REMOTE's text")
		fmt.Fprintln(os.Stderr, "appears in the output, with changes annotated in place. The argument")
		fmt.Fprintln(os.Stderr, "order matches the common two-file diff-tool convention, so wdf can be")
		fmt.Fprintln(os.Stderr, "used as a difftool backend.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if listThemes {
		for _, name := range wdf.AvailableThemes() {
			fmt.Fprintln(os.Stdout, name)
		}
		return
	}

	args := flags.Args()
	if len(args) != 2 {
		flags.Usage()
		os.Exit(2)
	}

	left, err := os.Open(normalizePath(args[0]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "open local: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = left.Close() }()
	right, err := os.Open(normalizePath(args[1]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "open remote: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = right.Close() }()

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	theme, ok := wdf.ThemeByName(themeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q\n\n", themeName)
		for _, name := range wdf.AvailableThemes() {
			fmt.Fprintln(os.Stderr, name)
		}
		os.Exit(2)
	}

	colored, err := resolveColor(colorMode, writer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --color %q: %v\n", colorMode, err)
		os.Exit(2)
	}
	if boring || !colored {
		theme = wdf.NewTheme("boring", wdf.Styles{})
	}

	opts := []wdf.RenderOption{
		wdf.WithDeletionMarker(marker),
		wdf.WithLineNumbers(lineNumbers),
		wdf.WithWidth(widthFlag),
	}
	switch {
	case whitespace && ignoreCase:
		fmt.Fprintln(os.Stderr, "--whitespace and --ignore-case are mutually exclusive")
		os.Exit(2)
	case whitespace:
		opts = append(opts, wdf.WithCostModel(wdf.WhitespaceSensitive()))
	case ignoreCase:
		opts = append(opts, wdf.WithCostModel(wdf.CaseInsensitive()))
	}

	if err := wdf.Render(wdf.RenderRequest{
		Left:    left,
		Right:   right,
		Writer:  writer,
		Theme:   theme,
		Options: opts,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
}

func resolveColor(mode string, w io.Writer) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return wdf.DetectColorSupport() && isTerminal(w), nil
	case "on", "true", "1", "yes", "always":
		return true, nil
	case "off", "false", "0", "no", "never":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
