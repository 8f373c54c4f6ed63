package domain

// SegmentKind tells whether a piece of a name survives a rename.
type SegmentKind int

const (
	SegmentKept SegmentKind = iota
	SegmentRemoved
	SegmentAdded
)

// Segment is a run of characters sharing one SegmentKind.
type Segment struct {
	Text string
	Kind SegmentKind
}

// Diff splits both sides of the operation into character runs: From holds
// kept and removed runs, To holds kept and added runs.
func (op RenameOp) Diff() (from, to []Segment) {
	a, b := []rune(op.From), []rune(op.To)

	pre := commonPrefix(a, b)
	suf := commonSuffix(a[pre:], b[pre:])
	from = appendSegment(from, a[:pre], SegmentKept)
	to = appendSegment(to, b[:pre], SegmentKept)

	midA, midB := a[pre:len(a)-suf], b[pre:len(b)-suf]
	table := lcsTable(midA, midB)
	i, j := 0, 0
	for i < len(midA) || j < len(midB) {
		switch {
		case i < len(midA) && j < len(midB) && midA[i] == midB[j]:
			from = appendSegment(from, midA[i:i+1], SegmentKept)
			to = appendSegment(to, midB[j:j+1], SegmentKept)
			i++
			j++
		case j < len(midB) && (i == len(midA) || table[i][j+1] >= table[i+1][j]):
			to = appendSegment(to, midB[j:j+1], SegmentAdded)
			j++
		default:
			from = appendSegment(from, midA[i:i+1], SegmentRemoved)
			i++
		}
	}

	from = appendSegment(from, a[len(a)-suf:], SegmentKept)
	to = appendSegment(to, b[len(b)-suf:], SegmentKept)
	return from, to
}

func appendSegment(segs []Segment, text []rune, kind SegmentKind) []Segment {
	if len(text) == 0 {
		return segs
	}
	if n := len(segs); n > 0 && segs[n-1].Kind == kind {
		segs[n-1].Text += string(text)
		return segs
	}
	return append(segs, Segment{Text: string(text), Kind: kind})
}

func commonPrefix(a, b []rune) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

func commonSuffix(a, b []rune) int {
	n := 0
	for n < len(a) && n < len(b) && a[len(a)-1-n] == b[len(b)-1-n] {
		n++
	}
	return n
}

// lcsTable holds, at [i][j], the longest common subsequence length of a[i:]
// and b[j:].
func lcsTable(a, b []rune) [][]int {
	table := make([][]int, len(a)+1)
	for i := range table {
		table[i] = make([]int, len(b)+1)
	}
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				table[i][j] = table[i+1][j+1] + 1
			} else {
				table[i][j] = max(table[i+1][j], table[i][j+1])
			}
		}
	}
	return table
}
