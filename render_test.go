package wdf

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
)

var ansiRegexp = regexp.MustCompile("\x1b\\[[0-9;]*[A-Za-z]")

func stripANSI(s string) string {
	return ansiRegexp.ReplaceAllString(s, "")
}

func renderDiff(t *testing.T, left, right string, opts ...RenderOption) string {
	t.Helper()
	var out bytes.Buffer
	err := Render(RenderRequest{
		Left:    strings.NewReader(left),
		Right:   strings.NewReader(right),
		Writer:  &out,
		Theme:   DefaultTheme(),
		Options: opts,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out.String()
}

func TestRenderReconstructsRightDocument(t *testing.T) {
	cases := [][2]string{
		{"red car", "blue car"},
		{"a b", "a b c"},
		{"a\n  b\n", "a\n    b\n"},
		{"", "fresh file\nwith two lines\n"},
		{"one\ntwo\nthree\n", "one\nthree\n"},
	}
	for _, tc := range cases {
		out := renderDiff(t, tc[0], tc[1], WithDeletionMarker(""))
		if got := stripANSI(out); got != tc[1] {
			t.Fatalf("render(%q, %q) stripped = %q, want right document", tc[0], tc[1], got)
		}
	}
}

func TestRenderIdentityIsPlain(t *testing.T) {
	doc := "same old\nsame old\n"
	out := renderDiff(t, doc, doc)
	if out != doc {
		t.Fatalf("identity render altered output: %q", out)
	}
}

func TestRenderStylesChangedAndInserted(t *testing.T) {
	out := renderDiff(t, "red car", "blue car")
	styles := DefaultTheme().Styles()
	if !strings.Contains(out, styles.Changed.Prefix+"blue") {
		t.Fatalf("missing changed styling in %q", out)
	}
	out = renderDiff(t, "a b", "a b c")
	if !strings.Contains(out, styles.Inserted.Prefix) {
		t.Fatalf("missing inserted styling in %q", out)
	}
}

func TestRenderDeletionMarker(t *testing.T) {
	out := renderDiff(t, "a b c", "a c")
	if !strings.Contains(out, DefaultDeletionMarker) {
		t.Fatalf("missing deletion marker in %q", out)
	}
	if strings.Contains(stripANSI(out), "b") {
		t.Fatalf("deleted text leaked into output: %q", out)
	}

	out = renderDiff(t, "a b c", "a c", WithDeletionMarker("#"))
	if !strings.Contains(out, "#") {
		t.Fatalf("custom marker not used: %q", out)
	}
	out = renderDiff(t, "a b c", "a c", WithDeletionMarker(""))
	if got := stripANSI(out); got != "a c" {
		t.Fatalf("suppressed marker still altered output: %q", got)
	}
}

func TestRenderAnnotationsAddNoPrintableWidth(t *testing.T) {
	out := renderDiff(t, "red car", "blue car", WithDeletionMarker(""))
	for i, line := range strings.Split(out, "\n") {
		if ansi.PrintableRuneWidth(line) != len(stripANSI(line)) {
			t.Fatalf("line %d: styled width differs from plain width: %q", i, line)
		}
	}
}

func TestRenderLineNumbers(t *testing.T) {
	out := renderDiff(t, "one\ntwo\n", "one\ntwo\n", WithLineNumbers(true))
	plain := stripANSI(out)
	if !strings.Contains(plain, "1 │ one") || !strings.Contains(plain, "2 │ two") {
		t.Fatalf("missing line-number gutter: %q", plain)
	}
}

func TestRenderGutterWidthMatchesEmittedLines(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 9; i++ {
		b.WriteString("line")
		b.WriteString(strconv.Itoa(i))
		b.WriteByte('\n')
	}
	doc := b.String()
	out := renderDiff(t, doc, doc, WithLineNumbers(true))
	plain := stripANSI(out)
	// The trailing newline ends line nine, it does not start a tenth, so
	// the gutter stays one column wide.
	if !strings.HasPrefix(plain, "1 │ line1") {
		t.Fatalf("nine lines should get a one-column gutter: %q", plain)
	}
	if !strings.Contains(plain, "\n9 │ line9\n") {
		t.Fatalf("missing last numbered line: %q", plain)
	}
}

func TestRenderWidthTruncation(t *testing.T) {
	long := strings.Repeat("longword ", 20)
	out := renderDiff(t, long, long, WithWidth(20))
	for _, line := range strings.Split(out, "\n") {
		if w := ansi.PrintableRuneWidth(line); w > 20 {
			t.Fatalf("line exceeds width limit: %d columns in %q", w, line)
		}
	}
	if !strings.Contains(out, "…") {
		t.Fatalf("expected truncation ellipsis in %q", out)
	}
}

func TestRenderBoringTheme(t *testing.T) {
	theme := NewTheme("boring", Styles{})
	var out bytes.Buffer
	err := Render(RenderRequest{
		Left:   strings.NewReader("red car"),
		Right:  strings.NewReader("blue car"),
		Writer: &out,
		Theme:  theme,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out.String(), "\x1b[") {
		t.Fatalf("boring theme emitted ANSI: %q", out.String())
	}
}

func TestRenderCostModelOption(t *testing.T) {
	out := renderDiff(t, "a b", "a  b", WithCostModel(WhitespaceSensitive()))
	styles := DefaultTheme().Styles()
	if !strings.Contains(out, styles.Changed.Prefix) {
		t.Fatalf("whitespace-sensitive render should annotate the spacing change: %q", out)
	}
}

func TestRenderRejectsBinaryInput(t *testing.T) {
	var out bytes.Buffer
	err := Render(RenderRequest{
		Left:   bytes.NewReader(append([]byte("x"), 0x00)),
		Right:  strings.NewReader("x"),
		Writer: &out,
	})
	if err == nil {
		t.Fatal("expected error for binary input")
	}
	if out.Len() != 0 {
		t.Fatalf("partial output written on error: %q", out.String())
	}
}

func TestRenderNilReaders(t *testing.T) {
	if err := Render(RenderRequest{Right: strings.NewReader(""), Writer: &bytes.Buffer{}}); err == nil {
		t.Fatal("expected error for nil left reader")
	}
	if err := Render(RenderRequest{Left: strings.NewReader(""), Writer: &bytes.Buffer{}}); err == nil {
		t.Fatal("expected error for nil right reader")
	}
	if err := Render(RenderRequest{Left: strings.NewReader(""), Right: strings.NewReader("")}); err == nil {
		t.Fatal("expected error for nil writer")
	}
}
