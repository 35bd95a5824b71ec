package chaos

import "github.com/iw2rmb/mischief/buffer"

const (
	minDeleteFraction  = 0.01
	deleteFractionSpan = 0.19
)

// Outcome reports whether a mutation did anything.
type Outcome uint8

const (
	OutcomeApplied Outcome = iota
	// OutcomeEmpty means there was nothing to mutate.
	OutcomeEmpty
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Removal is one rune taken out by Delete.
type Removal struct {
	Char rune
	// Offset addresses the buffer as it stood right before this removal.
	Offset int
	At     Point
}

// Deletion is the result of one Delete call.
type Deletion struct {
	Removals []Removal
}

// Runes returns the removed runes in removal order.
func (d Deletion) Runes() []rune {
	out := make([]rune, 0, len(d.Removals))
	for _, r := range d.Removals {
		out = append(out, r.Char)
	}
	return out
}

// DeleteCount returns how many runes Delete removes from a buffer of n runes
// for the draw u in [0, 1): max(1, floor(n * (0.01 + u*0.19))).
func DeleteCount(n int, u float64) int {
	if n <= 0 {
		return 0
	}
	k := int(float64(n) * (minDeleteFraction + u*deleteFractionSpan))
	if k < 1 {
		k = 1
	}
	if k > n {
		k = n
	}
	return k
}

// Delete removes between 1% and 20% of the buffer's runes at random.
//
// Each removal draws its index against the buffer as left by the previous
// removals. All removals land as one change. Nothing is kept that could
// restore the text. An empty buffer is left untouched and reports
// OutcomeEmpty.
func Delete(b *buffer.Buffer, rng Rand) (Deletion, Outcome) {
	rs := b.Runes()
	if len(rs) == 0 {
		return Deletion{}, OutcomeEmpty
	}

	k := DeleteCount(len(rs), rng.Float64())
	var d Deletion
	edits := make([]buffer.TextEdit, 0, k)
	for i := 0; i < k && len(rs) > 0; i++ {
		idx := rng.IntN(len(rs))
		d.Removals = append(d.Removals, Removal{
			Char:   rs[idx],
			Offset: idx,
			At:     Estimate(rs, idx, rng),
		})
		edits = append(edits, buffer.TextEdit{Start: idx, End: idx + 1})
		rs = append(rs[:idx], rs[idx+1:]...)
	}
	b.Apply(buffer.ChangeSourceChaos, edits...)
	return d, OutcomeApplied
}

// Reinsert puts r back at a uniform offset in [0, Len()] of the current
// buffer and returns that offset. The offset is unrelated to where r was
// removed.
func Reinsert(b *buffer.Buffer, rng Rand, r rune) int {
	at := rng.IntN(b.Len() + 1)
	b.Apply(buffer.ChangeSourceChaos, buffer.TextEdit{Start: at, End: at, Text: string(r)})
	return at
}
