package wdf

import (
	"math"
	"strings"
)

// Verdict is the outcome of comparing two tokens.
type Verdict uint8

const (
	// Equal means the tokens match exactly.
	Equal Verdict = iota
	// EqualIgnoringWhitespace means the tokens are whitespace runs whose
	// content differs but is not scored.
	EqualIgnoringWhitespace
	// Unequal means the tokens differ for scoring purposes.
	Unequal
)

func (v Verdict) String() string {
	switch v {
	case Equal:
		return "equal"
	case EqualIgnoringWhitespace:
		return "equal-ignoring-whitespace"
	case Unequal:
		return "unequal"
	default:
		return "unknown"
	}
}

// Costs scores token pairs for the alignment engine. Implementations must be
// pure; the engine calls them freely and caches nothing across invocations.
type Costs interface {
	// Compare classifies a left/right token pair.
	Compare(a, b Token) Verdict
	// Substitution is the cost of pairing a with b. It is 0 whenever
	// Compare returns Equal or EqualIgnoringWhitespace, and +Inf for
	// word-versus-whitespace pairs, which may never substitute.
	Substitution(a, b Token) float64
	// Gap is the cost of leaving t unmatched (a deletion on the left or an
	// insertion on the right).
	Gap(t Token) float64
}

const (
	wordSubstCost   = 1.0
	indentSubstCost = 1.3
	gapCost         = 0.7
)

// indentSensitive is the default scoring policy: whitespace differences are
// free except changes in leading indentation, which carry a fixed penalty
// independent of the indentation width.
type indentSensitive struct{}

// IndentSensitive returns the default cost model: whitespace-insensitive
// except for leading indentation.
func IndentSensitive() Costs { return indentSensitive{} }

func (indentSensitive) Compare(a, b Token) Verdict {
	switch {
	case a.Kind == KindWord && b.Kind == KindWord:
		if a.Text == b.Text {
			return Equal
		}
		return Unequal
	case a.Kind.IsWhitespace() && b.Kind.IsWhitespace():
		if a.Kind == KindIndentation || b.Kind == KindIndentation {
			if a.Text == b.Text {
				return Equal
			}
			return Unequal
		}
		if a.Text == b.Text {
			return Equal
		}
		return EqualIgnoringWhitespace
	default:
		return Unequal
	}
}

func (c indentSensitive) Substitution(a, b Token) float64 {
	return substitution(c, a, b)
}

func (indentSensitive) Gap(Token) float64 { return gapCost }

// whitespaceSensitive scores whitespace runs like words: their text must
// match exactly.
type whitespaceSensitive struct{}

// WhitespaceSensitive returns a cost model in which all whitespace content
// is significant, not just leading indentation.
func WhitespaceSensitive() Costs { return whitespaceSensitive{} }

func (whitespaceSensitive) Compare(a, b Token) Verdict {
	if a.Kind.IsWhitespace() != b.Kind.IsWhitespace() {
		return Unequal
	}
	if a.Text == b.Text {
		return Equal
	}
	return Unequal
}

func (c whitespaceSensitive) Substitution(a, b Token) float64 {
	return substitution(c, a, b)
}

func (whitespaceSensitive) Gap(Token) float64 { return gapCost }

// caseInsensitive matches words under Unicode case folding; whitespace is
// scored as in the default policy.
type caseInsensitive struct{}

// CaseInsensitive returns a cost model that treats words differing only in
// letter case as equal. Whitespace handling follows IndentSensitive.
func CaseInsensitive() Costs { return caseInsensitive{} }

func (caseInsensitive) Compare(a, b Token) Verdict {
	if a.Kind == KindWord && b.Kind == KindWord {
		if strings.EqualFold(a.Text, b.Text) {
			return Equal
		}
		return Unequal
	}
	return indentSensitive{}.Compare(a, b)
}

func (c caseInsensitive) Substitution(a, b Token) float64 {
	return substitution(c, a, b)
}

func (caseInsensitive) Gap(Token) float64 { return gapCost }

// substitution derives the substitution cost from a policy's Compare. A
// mismatched kind family is unreachable so the engine models it as a
// delete+insert pair instead.
func substitution(c Costs, a, b Token) float64 {
	switch c.Compare(a, b) {
	case Equal, EqualIgnoringWhitespace:
		return 0
	}
	if a.Kind.IsWhitespace() != b.Kind.IsWhitespace() {
		return math.Inf(1)
	}
	if a.Kind == KindIndentation || b.Kind == KindIndentation {
		return indentSubstCost
	}
	return wordSubstCost
}
