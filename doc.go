// Package wdf renders word-granularity diffs as annotated ANSI for terminal
// display.
//
// The package compares two complete text documents token by token rather than
// line by line. Comparison ignores whitespace differences except changes in
// leading indentation, and the rendered output shows only the new (right)
// document with insertions and changes annotated in place. Whitespace from
// the old (left) document never appears in the output; removed content is
// reduced to a zero-width deletion mark.
//
// Core properties:
//   - Word-level tokenization that reconstructs the input exactly
//   - Whitespace-insensitive scoring, except leading indentation
//   - Minimum-cost alignment with deterministic tie-breaking
//   - Output is the right document verbatim once annotations are stripped
//
// Example:
//
//	out := wdf.Diff("the red car", "the blue car")
//	for _, span := range out.Spans {
//		fmt.Printf("%v %q\n", span.Mark, span.Text)
//	}
//
// Render writes the annotated output with theme-driven ANSI styling:
//
//	err := wdf.Render(wdf.RenderRequest{
//		Left:   strings.NewReader(oldText),
//		Right:  strings.NewReader(newText),
//		Writer: os.Stdout,
//		Theme:  wdf.DefaultTheme(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
package wdf
