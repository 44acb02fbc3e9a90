package wdf

// Op classifies a right-document token after alignment.
type Op uint8

const (
	// Unchanged means the token matched a left token at zero cost.
	Unchanged Op = iota
	// Changed means the token substituted a left token at nonzero cost.
	Changed
	// Inserted means the token has no counterpart in the left document.
	Inserted
)

func (o Op) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Changed:
		return "changed"
	case Inserted:
		return "inserted"
	default:
		return "unknown"
	}
}

// Entry is the classification of one right token. Left is the index of the
// matched left token, or -1 for Inserted entries and for plain whitespace
// with no left counterpart, which stays Unchanged rather than Inserted.
type Entry struct {
	Right int
	Left  int
	Op    Op
}

// DeletionSpan records a maximal contiguous run of left tokens
// [LeftStart, LeftEnd) with no match, anchored immediately before the right
// token at index Right (Right equals the sequence length when the deletion
// falls at the end).
type DeletionSpan struct {
	Right     int
	LeftStart int
	LeftEnd   int
}

// Result is the outcome of aligning two token sequences. Entries holds one
// classification per right token, in order. Matched left indices are
// strictly increasing across entries.
type Result struct {
	Entries   []Entry
	Deletions []DeletionSpan

	dpCells int
}

// Path step opcodes for the backtracking arena.
const (
	opNone byte = iota
	opSubst
	opInsert
	opDelete
)

// Align computes a minimum-cost alignment between left and right under the
// given cost model (IndentSensitive when nil). Among equal-cost paths it
// prefers substitution over insertion and insertion over deletion, biasing
// toward in-place changes. Empty inputs degrade to all-gap or empty
// results.
func Align(left, right TokenSequence, costs Costs) Result {
	if costs == nil {
		costs = IndentSensitive()
	}

	// Equal-prefix/suffix fast path: strip common leading and trailing runs
	// so the quadratic program only sees the differing middle region.
	prefix := 0
	for prefix < len(left) && prefix < len(right) &&
		costs.Compare(left[prefix], right[prefix]) == Equal {
		prefix++
	}
	suffix := 0
	for suffix < len(left)-prefix && suffix < len(right)-prefix &&
		costs.Compare(left[len(left)-1-suffix], right[len(right)-1-suffix]) == Equal {
		suffix++
	}

	midLeft := left[prefix : len(left)-suffix]
	midRight := right[prefix : len(right)-suffix]

	res := Result{Entries: make([]Entry, 0, len(right))}
	for i := 0; i < prefix; i++ {
		res.Entries = append(res.Entries, Entry{Right: i, Left: i, Op: Unchanged})
	}

	ops, cells := alignMiddle(midLeft, midRight, costs)
	res.dpCells = cells
	walkPath(&res, ops, left, right, prefix, costs)

	for i := 0; i < suffix; i++ {
		r := len(right) - suffix + i
		l := len(left) - suffix + i
		res.Entries = append(res.Entries, Entry{Right: r, Left: l, Op: Unchanged})
	}
	return res
}

// alignMiddle runs the Wagner-Fischer recurrence over the differing region
// and returns the chosen edit path in forward order. The cost table is two
// rolling rows; the full table survives only as a flat byte arena of step
// opcodes for backtracking.
func alignMiddle(left, right TokenSequence, costs Costs) ([]byte, int) {
	n, m := len(left), len(right)
	if n == 0 && m == 0 {
		return nil, 0
	}

	stride := n + 1
	arena := make([]byte, (m+1)*stride)
	prev := make([]float64, stride)
	cur := make([]float64, stride)

	for i := 1; i <= n; i++ {
		prev[i] = prev[i-1] + costs.Gap(left[i-1])
		arena[i] = opDelete
	}
	cells := n
	for j := 1; j <= m; j++ {
		r := right[j-1]
		row := arena[j*stride:]
		cur[0] = prev[0] + costs.Gap(r)
		row[0] = opInsert
		for i := 1; i <= n; i++ {
			l := left[i-1]
			best := prev[i-1] + costs.Substitution(l, r)
			op := opSubst
			if ins := prev[i] + costs.Gap(r); ins < best {
				best, op = ins, opInsert
			}
			if del := cur[i-1] + costs.Gap(l); del < best {
				best, op = del, opDelete
			}
			cur[i] = best
			row[i] = op
		}
		prev, cur = cur, prev
		cells += n + 1
	}

	// Backtrack from the terminal cell, then reverse into forward order.
	path := make([]byte, 0, n+m)
	i, j := n, m
	for i > 0 || j > 0 {
		op := arena[j*stride+i]
		path = append(path, op)
		switch op {
		case opSubst:
			i--
			j--
		case opInsert:
			j--
		case opDelete:
			i--
		}
	}
	for a, b := 0, len(path)-1; a < b; a, b = a+1, b-1 {
		path[a], path[b] = path[b], path[a]
	}
	return path, cells
}

// walkPath replays the edit path, emitting one Entry per consumed right
// token and one DeletionSpan per maximal run of deletions. Indices are
// global: offset is the length of the stripped common prefix.
//
// Gap steps on plain whitespace are not annotated: an unmatched whitespace
// run on the right stays Unchanged, and a delete run holding nothing but
// plain whitespace produces no span. Only whitespace content differs in
// those cases, which never counts as a change. Indentation gaps annotate.
func walkPath(res *Result, path []byte, left, right TokenSequence, offset int, costs Costs) {
	li, ri := offset, offset
	delStart := -1
	marked := false
	flush := func() {
		if delStart >= 0 {
			if marked {
				res.Deletions = append(res.Deletions, DeletionSpan{Right: ri, LeftStart: delStart, LeftEnd: li})
			}
			delStart = -1
			marked = false
		}
	}
	for _, op := range path {
		switch op {
		case opSubst:
			flush()
			e := Entry{Right: ri, Left: li, Op: Changed}
			if costs.Substitution(left[li], right[ri]) == 0 {
				e.Op = Unchanged
			}
			res.Entries = append(res.Entries, e)
			li++
			ri++
		case opInsert:
			flush()
			e := Entry{Right: ri, Left: -1, Op: Inserted}
			if right[ri].Kind == KindWhitespace {
				e.Op = Unchanged
			}
			res.Entries = append(res.Entries, e)
			ri++
		case opDelete:
			if delStart < 0 {
				delStart = li
			}
			if left[li].Kind != KindWhitespace {
				marked = true
			}
			li++
		}
	}
	flush()
}
