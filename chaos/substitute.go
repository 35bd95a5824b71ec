package chaos

import (
	"unicode"

	"github.com/iw2rmb/mischief/buffer"
)

// Substitution describes one replaced word.
type Substitution struct {
	Original    string
	Replacement string
	// Start is the linear offset of the replaced word.
	Start int
	// Trigger is the word-boundary key that caused the substitution.
	Trigger rune
	At      Point
}

// SubstituteWord replaces the word immediately before the caret with a random
// vocabulary entry.
//
// The word runs back from the caret to the nearest whitespace, or to the start
// of the buffer. An empty word is a no-op. On success the caret sits right
// after the replacement; trigger itself is not inserted.
func SubstituteWord(b *buffer.Buffer, rng Rand, trigger rune) (Substitution, bool) {
	rs := b.Runes()
	cur := b.Cursor()

	start := cur
	for start > 0 && !unicode.IsSpace(rs[start-1]) {
		start--
	}
	if start == cur {
		return Substitution{}, false
	}

	sub := Substitution{
		Original:    string(rs[start:cur]),
		Replacement: RandomWord(rng),
		Start:       start,
		Trigger:     trigger,
		At:          Estimate(rs, start, rng),
	}
	b.Apply(buffer.ChangeSourceChaos, buffer.TextEdit{Start: start, End: cur, Text: sub.Replacement})
	b.SetCursor(start + len([]rune(sub.Replacement)))
	return sub, true
}
