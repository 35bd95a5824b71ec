package editor

import (
	"io"
	"log"
	"time"

	"github.com/iw2rmb/mischief/artifact"
	"github.com/iw2rmb/mischief/chaos"
)

const (
	DefaultIdleDelay         = 5 * time.Second
	DefaultZoomDelay         = 3 * time.Second
	DefaultMinZoom           = 0.85
	DefaultMaxZoom           = 1.15
	DefaultAgingInterval     = time.Second
	DefaultAgingThreshold    = 5 * time.Second
	DefaultScrollChaosChance = 0.15
	DefaultGibberishWords    = 5

	shakeDuration       = 500 * time.Millisecond
	scrollFlashDuration = 150 * time.Millisecond
)

// Config configures the editor Model. The zero value is usable: every unset
// field takes the default listed next to it.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Quiet period after the last input before gibberish is typed (5s).
	IdleDelay time.Duration
	// Quiet period after the last input before the zoom may change. It is
	// also the minimum time between two applied zooms (3s).
	ZoomDelay time.Duration
	// Zoom bounds (0.85, 1.15).
	MinZoom, MaxZoom float64

	// Period of the aging sweep (1s).
	AgingInterval time.Duration
	// Age past which a word is drawn faded (5s).
	AgingThreshold time.Duration

	// Odds that a scroll arms a one-shot inversion (0.15). Negative disables.
	ScrollChaosChance float64
	// Words per auto-typing burst (5).
	GibberishWords int

	// DisableWordReplacement turns off substitution on space and enter.
	DisableWordReplacement bool

	// Randomness for every chaotic decision. Defaults to a clock-seeded PCG.
	Rand chaos.Rand
	// Clock used for ages and zoom cooldown (time.Now).
	Now func() time.Time

	KeyMap KeyMap
	// Style is used as given; the zero value renders bare text. Hosts
	// usually pass DefaultStyle().
	Style Style

	// Artifacts receives bubbles. Nil uses an internal artifact.Board that
	// the Model draws and hit-tests itself.
	Artifacts artifact.Sink

	// OnRender is called after every mutation.
	OnRender func(RenderEvent)

	Clipboard Clipboard

	// Logger receives one line per chaotic event. Nil discards.
	Logger *log.Logger
}

func normalizeConfig(cfg Config) Config {
	cfg.IdleDelay = normalizeDuration(cfg.IdleDelay, DefaultIdleDelay)
	cfg.ZoomDelay = normalizeDuration(cfg.ZoomDelay, DefaultZoomDelay)
	cfg.AgingInterval = normalizeDuration(cfg.AgingInterval, DefaultAgingInterval)
	cfg.AgingThreshold = normalizeDuration(cfg.AgingThreshold, DefaultAgingThreshold)
	cfg.MinZoom, cfg.MaxZoom = normalizeZoomBounds(cfg.MinZoom, cfg.MaxZoom)

	switch {
	case cfg.ScrollChaosChance == 0:
		cfg.ScrollChaosChance = DefaultScrollChaosChance
	case cfg.ScrollChaosChance < 0:
		cfg.ScrollChaosChance = 0
	case cfg.ScrollChaosChance > 1:
		cfg.ScrollChaosChance = 1
	}
	if cfg.GibberishWords <= 0 {
		cfg.GibberishWords = DefaultGibberishWords
	}

	if cfg.Rand == nil {
		cfg.Rand = chaos.NewTimeRand()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	return cfg
}

func normalizeDuration(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

func normalizeZoomBounds(lo, hi float64) (float64, float64) {
	if lo <= 0 {
		lo = DefaultMinZoom
	}
	if hi <= 0 {
		hi = DefaultMaxZoom
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}
