package wdf

import (
	"unicode"
	"unicode/utf8"
)

// Kind classifies a token for comparison purposes.
type Kind uint8

const (
	// KindWord is a maximal run of non-whitespace characters.
	KindWord Kind = iota
	// KindWhitespace is a maximal run of whitespace, including newlines.
	KindWhitespace
	// KindIndentation is the whitespace at the start of a line, up to the
	// first non-whitespace character on that line.
	KindIndentation
)

// IsWhitespace reports whether the kind belongs to the whitespace family.
func (k Kind) IsWhitespace() bool {
	return k == KindWhitespace || k == KindIndentation
}

func (k Kind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindWhitespace:
		return "whitespace"
	case KindIndentation:
		return "indentation"
	default:
		return "unknown"
	}
}

// Token is the smallest unit considered in alignment: a word or a
// whitespace run. Text is the exact substring of the source document,
// Start and End its byte offsets.
type Token struct {
	Text  string
	Start int
	End   int
	Kind  Kind
}

// TokenSequence is the ordered token list for one document. It is produced
// once per document per diff and read-only thereafter. Concatenating all
// Text fields in order reconstructs the document exactly.
type TokenSequence []Token

// Text reconstructs the source document from the sequence.
func (s TokenSequence) Text() string {
	if len(s) == 0 {
		return ""
	}
	n := 0
	for _, t := range s {
		n += len(t.Text)
	}
	b := make([]byte, 0, n)
	for _, t := range s {
		b = append(b, t.Text...)
	}
	return string(b)
}

// Tokenize splits text into an ordered sequence of word and whitespace
// tokens. It never fails: any input, including empty text, yields a valid
// sequence. No characters are normalized or dropped.
//
// A whitespace run that ends at the start of a line holding a word is split
// after its last newline so the leading part of that line becomes a separate
// KindIndentation token. A run before the first word of the document with no
// newline is indentation in its entirety. Whitespace at end of input, blank
// lines, and intra-line spacing stay plain KindWhitespace.
func Tokenize(text string) TokenSequence {
	if text == "" {
		return nil
	}
	seq := make(TokenSequence, 0, len(text)/4+1)
	pos := 0
	for pos < len(text) {
		ws := isSpaceByteOrRune(text, pos)
		end := pos
		for end < len(text) {
			next, size := spanStep(text, end)
			if next != ws {
				break
			}
			end += size
		}
		if ws {
			seq = appendWhitespace(seq, text, pos, end, end < len(text))
		} else {
			seq = append(seq, Token{Text: text[pos:end], Start: pos, End: end, Kind: KindWord})
		}
		pos = end
	}
	return seq
}

// appendWhitespace emits the run text[start:end], splitting off a trailing
// indentation token when a word follows on the same line.
func appendWhitespace(seq TokenSequence, text string, start, end int, wordFollows bool) TokenSequence {
	run := text[start:end]
	if !wordFollows {
		return append(seq, Token{Text: run, Start: start, End: end, Kind: KindWhitespace})
	}
	nl := lastNewline(run)
	switch {
	case nl == -1:
		if start == 0 {
			return append(seq, Token{Text: run, Start: start, End: end, Kind: KindIndentation})
		}
		return append(seq, Token{Text: run, Start: start, End: end, Kind: KindWhitespace})
	case nl == len(run)-1:
		// Line starts directly with a word; no indentation token.
		return append(seq, Token{Text: run, Start: start, End: end, Kind: KindWhitespace})
	default:
		cut := start + nl + 1
		seq = append(seq, Token{Text: text[start:cut], Start: start, End: cut, Kind: KindWhitespace})
		return append(seq, Token{Text: text[cut:end], Start: cut, End: end, Kind: KindIndentation})
	}
}

func lastNewline(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '\n' {
			return i
		}
	}
	return -1
}

// spanStep reports whether the rune at i is whitespace and its byte size.
func spanStep(text string, i int) (ws bool, size int) {
	b := text[i]
	if b < 0x80 {
		return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f', 1
	}
	r, n := utf8.DecodeRuneInString(text[i:])
	return unicode.IsSpace(r), n
}

func isSpaceByteOrRune(text string, i int) bool {
	ws, _ := spanStep(text, i)
	return ws
}
