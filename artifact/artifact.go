// Package artifact manages the short-lived notifications ("bubbles") that
// accompany visible mutations.
//
// Every artifact handed to a Sink is removed again: after its lifetime, when
// it is popped, or when the manager is cleared or closed.
package artifact

import (
	"fmt"
	"math"
	"time"

	"github.com/iw2rmb/mischief/chaos"
)

// Kind distinguishes artifacts.
type Kind uint8

const (
	// KindWord reports a substituted word.
	KindWord Kind = iota
	// KindZoom reports a zoom change.
	KindZoom
	// KindLetter carries a rune removed by a chaotic deletion. It can be popped.
	KindLetter
)

func (k Kind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindZoom:
		return "zoom"
	case KindLetter:
		return "letter"
	default:
		return "unknown"
	}
}

const (
	WordLifetime   = 4000 * time.Millisecond
	ZoomLifetime   = 4000 * time.Millisecond
	LetterLifetime = 3000 * time.Millisecond

	// Stagger separates the spawns of a batch of letters.
	Stagger = 100 * time.Millisecond
)

// Lifetime returns how long an artifact of kind k stays visible.
func Lifetime(k Kind) time.Duration {
	switch k {
	case KindLetter:
		return LetterLifetime
	case KindZoom:
		return ZoomLifetime
	default:
		return WordLifetime
	}
}

// Descriptor is everything a sink needs to show an artifact.
type Descriptor struct {
	Kind Kind

	// KindWord.
	Original    string
	Replacement string
	Trigger     rune

	// KindLetter.
	Char rune

	// KindZoom.
	Zoom float64

	At chaos.Point
}

// Label returns the text an artifact shows.
func (d Descriptor) Label() string {
	switch d.Kind {
	case KindWord:
		return fmt.Sprintf("%s → %s %s", d.Original, d.Replacement, triggerIcon(d.Trigger))
	case KindZoom:
		dir := "🔍-"
		if d.Zoom > 1 {
			dir = "🔍+"
		}
		return fmt.Sprintf("%s %d%%", dir, int(math.Round(d.Zoom*100)))
	case KindLetter:
		return letterGlyph(d.Char)
	default:
		return ""
	}
}

func triggerIcon(r rune) string {
	if r == '\n' {
		return "⏎"
	}
	return "⎵"
}

func letterGlyph(r rune) string {
	switch r {
	case ' ':
		return "⎵"
	case '\n':
		return "⏎"
	case '\t':
		return "⇥"
	default:
		return string(r)
	}
}

// Handle identifies an artifact within its sink.
type Handle uint64

// Sink displays artifacts.
type Sink interface {
	Add(Descriptor) Handle
	Remove(Handle)
}
