package chaos

import (
	"strings"
	"time"

	"github.com/iw2rmb/mischief/buffer"
)

const (
	consonants = "bcdfghjklmnpqrstvwxyz"
	vowels     = "aeiou"

	minGibberishLen = 3
	maxGibberishLen = 8

	minWordDelay  = 300 * time.Millisecond
	wordDelaySpan = 400
)

// Gibberish returns n pronounceable nonsense words. Each word is 3 to 8 runes
// long and alternates consonant and vowel, starting with a consonant.
func Gibberish(rng Rand, n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		size := minGibberishLen + rng.IntN(maxGibberishLen-minGibberishLen+1)
		var sb strings.Builder
		sb.Grow(size)
		for j := 0; j < size; j++ {
			if j%2 == 0 {
				sb.WriteByte(consonants[rng.IntN(len(consonants))])
			} else {
				sb.WriteByte(vowels[rng.IntN(len(vowels))])
			}
		}
		out = append(out, sb.String())
	}
	return out
}

// AppendWord types w at the end of the buffer, separated by a space unless the
// buffer is empty or already ends in a space or line break. The caret is left
// at the end.
func AppendWord(b *buffer.Buffer, w string) {
	rs := b.Runes()
	text := w
	if n := len(rs); n > 0 && rs[n-1] != ' ' && rs[n-1] != '\n' {
		text = " " + w
	}
	end := len(rs)
	b.Apply(buffer.ChangeSourceChaos, buffer.TextEdit{Start: end, End: end, Text: text})
	b.SetCursor(b.Len())
}

// WordDelay draws the pause before the next auto-typed word, in [300ms, 700ms).
func WordDelay(rng Rand) time.Duration {
	return minWordDelay + time.Duration(rng.IntN(wordDelaySpan))*time.Millisecond
}
