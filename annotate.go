package wdf

import "strings"

// Mark annotates a span of rendered output.
type Mark uint8

const (
	// MarkNone is unannotated right-document text.
	MarkNone Mark = iota
	// MarkChanged wraps text substituted in place of left-document content.
	MarkChanged
	// MarkInserted wraps text with no left-document counterpart.
	MarkInserted
	// MarkDeletion is a zero-width marker where left-document content was
	// removed. Its span text is always empty.
	MarkDeletion
)

func (m Mark) String() string {
	switch m {
	case MarkNone:
		return "none"
	case MarkChanged:
		return "changed"
	case MarkInserted:
		return "inserted"
	case MarkDeletion:
		return "deletion"
	default:
		return "unknown"
	}
}

// Span is a run of right-document text under a single annotation. Adjacent
// tokens with the same classification fold into one span, so a changed
// phrase carries one marker rather than one per word.
type Span struct {
	Text string
	Mark Mark
}

// Annotated is the right document interleaved with annotation boundaries.
// Concatenating span texts reproduces the right document exactly; the
// deleted left text is never part of it.
type Annotated struct {
	Spans []Span
}

// Strip returns the right document's text with all annotations removed.
func (a Annotated) Strip() string {
	var b strings.Builder
	n := 0
	for _, s := range a.Spans {
		n += len(s.Text)
	}
	b.Grow(n)
	for _, s := range a.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// tokenRun is a half-open range [start, end) of right tokens under one mark.
// Deletion runs are empty ranges.
type tokenRun struct {
	mark  Mark
	start int
	end   int
}

// Annotate walks the classified right-token sequence and produces the
// annotated span stream. It is a pure function of its inputs.
func Annotate(right TokenSequence, res Result) Annotated {
	runs := make([]tokenRun, 0, len(res.Deletions)*2+8)
	push := func(mark Mark, tok int) {
		if n := len(runs); n > 0 && runs[n-1].mark == mark && runs[n-1].end == tok {
			runs[n-1].end = tok + 1
			return
		}
		runs = append(runs, tokenRun{mark: mark, start: tok, end: tok + 1})
	}

	di := 0
	emitDeletions := func(pos int) {
		for di < len(res.Deletions) && res.Deletions[di].Right == pos {
			runs = append(runs, tokenRun{mark: MarkDeletion, start: pos, end: pos})
			di++
		}
	}

	for _, e := range res.Entries {
		emitDeletions(e.Right)
		mark := MarkNone
		switch e.Op {
		case Changed:
			mark = MarkChanged
		case Inserted:
			mark = MarkInserted
		}
		push(mark, e.Right)
	}
	emitDeletions(len(right))

	runs = mergeAcrossWhitespace(runs, right)

	spans := make([]Span, 0, len(runs))
	for _, run := range runs {
		if run.mark == MarkDeletion {
			spans = append(spans, Span{Mark: MarkDeletion})
			continue
		}
		spans = append(spans, Span{Text: runText(right, run), Mark: run.mark})
	}
	return Annotated{Spans: spans}
}

func runText(right TokenSequence, run tokenRun) string {
	if run.end == run.start+1 {
		return right[run.start].Text
	}
	var b strings.Builder
	b.Grow(right[run.end-1].End - right[run.start].Start)
	for i := run.start; i < run.end; i++ {
		b.WriteString(right[i].Text)
	}
	return b.String()
}

// mergeAcrossWhitespace folds two equally-marked runs separated only by
// unchanged whitespace into one, so a changed phrase highlights as a single
// run instead of per word.
func mergeAcrossWhitespace(runs []tokenRun, right TokenSequence) []tokenRun {
	out := runs[:0]
	for _, run := range runs {
		n := len(out)
		if n >= 2 && run.mark != MarkNone && run.mark != MarkDeletion &&
			out[n-2].mark == run.mark &&
			out[n-1].mark == MarkNone && allWhitespace(right, out[n-1]) {
			out[n-2].end = run.end
			out = out[:n-1]
			continue
		}
		out = append(out, run)
	}
	return out
}

func allWhitespace(right TokenSequence, run tokenRun) bool {
	for i := run.start; i < run.end; i++ {
		if !right[i].Kind.IsWhitespace() {
			return false
		}
	}
	return true
}
