package wdf

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"testing"
)

func syntheticDocument(words int) string {
	var b strings.Builder
	b.Grow(words * 8)
	for i := 0; i < words; i++ {
		b.WriteString("token")
		b.WriteString(strconv.Itoa(i % 97))
		if i%12 == 11 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func BenchmarkDiffIdentical(b *testing.B) {
	doc := syntheticDocument(5000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Diff(doc, doc)
	}
}

func BenchmarkDiffNearIdentical(b *testing.B) {
	doc := syntheticDocument(5000)
	edited := strings.Replace(doc, "token50 ", "edited ", 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Diff(doc, edited)
	}
}

func BenchmarkDiffSmallDocuments(b *testing.B) {
	left := "the quick brown fox jumps over the lazy dog"
	right := "the slow brown cat jumps high over a lazy dog"
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Diff(left, right)
	}
}

func BenchmarkTokenize(b *testing.B) {
	doc := syntheticDocument(5000)
	b.ReportAllocs()
	b.SetBytes(int64(len(doc)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Tokenize(doc)
	}
}

func BenchmarkRenderNearIdentical(b *testing.B) {
	doc := syntheticDocument(2000)
	edited := strings.Replace(doc, "token50 ", "edited ", 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Render(RenderRequest{
			Left:   strings.NewReader(doc),
			Right:  strings.NewReader(edited),
			Writer: io.Discard,
			Theme:  DefaultTheme(),
		}); err != nil {
			b.Fatalf("render: %v", err)
		}
	}
}

// The DP must stay proportional to the differing region. A single edit in a
// large document must not trigger a full quadratic table.
func TestDiffNearIdenticalIsBounded(t *testing.T) {
	doc := syntheticDocument(20000)
	edited := strings.Replace(doc, "token50 ", "edited ", 1)
	res := Align(Tokenize(doc), Tokenize(edited), nil)
	tokens := len(Tokenize(doc))
	if res.dpCells > tokens {
		t.Fatalf("dp visited %d cells for one edit in %d tokens", res.dpCells, tokens)
	}
	var out bytes.Buffer
	if err := Render(RenderRequest{
		Left:   strings.NewReader(doc),
		Right:  strings.NewReader(edited),
		Writer: &out,
		Theme:  DefaultTheme(),
	}); err != nil {
		t.Fatalf("render: %v", err)
	}
}
