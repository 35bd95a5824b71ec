package buffer

// NodeID identifies a node of the segment tree. IDs are never reused within a
// Buffer, so a stale ID simply stops resolving.
type NodeID uint64

// NodeKind distinguishes tree nodes.
type NodeKind uint8

const (
	NodeRoot NodeKind = iota
	NodeText
	NodeWord
)

func (k NodeKind) String() string {
	switch k {
	case NodeRoot:
		return "root"
	case NodeText:
		return "text"
	case NodeWord:
		return "word"
	default:
		return "unknown"
	}
}

// Pos points into the segment tree: a rune offset within Node.
//
// The empty document is addressed as {Node: root, Offset: 0}.
type Pos struct {
	Node   NodeID
	Offset int
}

// Segment is a tagged word unit.
type Segment struct {
	ID    NodeID
	Text  string
	Start int // linear rune offset of the first rune
}

// Span is one top-level item of the tree, in document order.
type Span struct {
	Text  string
	Start int
	Word  NodeID // zero for untagged text
}

// TextEdit replaces the runes in [Start, End) with Text.
type TextEdit struct {
	Start int
	End   int
	Text  string
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
