package wdf

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

const ansiReset = "\x1b[0m"

// RenderRequest configures Render.
type RenderRequest struct {
	Left    io.Reader
	Right   io.Reader
	Writer  io.Writer
	Theme   Theme
	Options []RenderOption
}

// Render reads the old document from Left and the new document from Right,
// diffs them at word granularity and writes the annotated right document to
// Writer with theme-driven ANSI styling. Stripped of escape sequences and
// deletion marks, the output is the right document verbatim.
func Render(req RenderRequest) error {
	if req.Left == nil {
		return fmt.Errorf("render: left reader is nil")
	}
	if req.Right == nil {
		return fmt.Errorf("render: right reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	cfg := renderConfig{}
	for _, opt := range req.Options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if !cfg.markerSet {
		cfg.marker = DefaultDeletionMarker
	}
	theme := req.Theme
	if theme == nil {
		theme = DefaultTheme()
	}

	left, err := readDocument(req.Left)
	if err != nil {
		return fmt.Errorf("render: left: %w", err)
	}
	right, err := readDocument(req.Right)
	if err != nil {
		return fmt.Errorf("render: right: %w", err)
	}

	out := Diff(left, right, WithCosts(cfg.costs))
	if err := WriteAnnotated(req.Writer, out, theme, req.Options...); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// readDocument consumes a reader fully and validates that it holds text.
func readDocument(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read: %w", err)
	}
	if err := ValidateInput(data); err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteAnnotated writes an annotated diff to w using the theme's styles.
// It is the concrete ANSI consumer of the abstract span stream; callers with
// their own output layer can walk Annotated.Spans directly instead.
func WriteAnnotated(w io.Writer, out Annotated, theme Theme, opts ...RenderOption) error {
	cfg := renderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if !cfg.markerSet {
		cfg.marker = DefaultDeletionMarker
	}
	if theme == nil {
		theme = DefaultTheme()
	}
	styles := theme.Styles()

	lw := lineWriter{w: w, width: cfg.width}
	if cfg.lineNumbers {
		// Width of the last line number actually emitted: a trailing
		// newline ends the document, it does not start an empty line.
		text := out.Strip()
		lines := strings.Count(text, "\n")
		if text != "" && !strings.HasSuffix(text, "\n") {
			lines++
		}
		if lines < 1 {
			lines = 1
		}
		lw.gutter = len(strconv.Itoa(lines))
	}
	for _, span := range out.Spans {
		if span.Mark == MarkDeletion {
			if cfg.marker != "" {
				lw.writeStyled(cfg.marker, styles.DeletionMark)
			}
			continue
		}
		st := styles.Context
		switch span.Mark {
		case MarkChanged:
			st = styles.Changed
		case MarkInserted:
			st = styles.Inserted
		}
		rest := span.Text
		for {
			nl := strings.IndexByte(rest, '\n')
			if nl == -1 {
				lw.writeStyled(rest, st)
				break
			}
			lw.writeStyled(rest[:nl], st)
			if err := lw.endLine(); err != nil {
				return err
			}
			rest = rest[nl+1:]
		}
	}
	return lw.flush()
}

// lineWriter assembles one output line at a time so the optional gutter and
// width limit see whole lines.
type lineWriter struct {
	w      io.Writer
	buf    strings.Builder
	width  int
	gutter int
	line   int
	dirty  bool
}

func (lw *lineWriter) writeStyled(text string, st Style) {
	if text == "" {
		return
	}
	lw.dirty = true
	if st.Prefix == "" {
		lw.buf.WriteString(text)
		return
	}
	lw.buf.WriteString(st.Prefix)
	lw.buf.WriteString(text)
	lw.buf.WriteString(ansiReset)
}

func (lw *lineWriter) endLine() error {
	if err := lw.emit(); err != nil {
		return err
	}
	_, err := io.WriteString(lw.w, "\n")
	return err
}

func (lw *lineWriter) flush() error {
	if !lw.dirty && lw.buf.Len() == 0 {
		return nil
	}
	return lw.emit()
}

func (lw *lineWriter) emit() error {
	line := lw.buf.String()
	lw.buf.Reset()
	lw.dirty = false
	lw.line++
	if lw.width > 0 && ansi.PrintableRuneWidth(line) > lw.width {
		line = truncate.StringWithTail(line, uint(lw.width), "…")
	}
	if lw.gutter > 0 {
		num := runewidth.FillLeft(strconv.Itoa(lw.line), lw.gutter)
		if _, err := io.WriteString(lw.w, num+" │ "); err != nil {
			return err
		}
	}
	_, err := io.WriteString(lw.w, line)
	return err
}
