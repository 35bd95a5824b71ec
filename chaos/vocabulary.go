package chaos

// Vocabulary is the pool replacement words are drawn from. Entries may repeat,
// which weights them.
var Vocabulary = []string{
	"banana", "elephant", "mystery", "rainbow", "adventure", "whisper", "thunder", "butterfly",
	"dragon", "castle", "ocean", "mountain", "forest", "wizard", "treasure", "magic",
	"rocket", "galaxy", "planet", "star", "comet", "universe", "nebula", "asteroid",
	"pizza", "chocolate", "cookie", "sandwich", "pancake", "ice cream", "burger", "pasta",
	"computer", "keyboard", "monitor", "mouse", "software", "internet", "website", "coding",
	"happiness", "friendship", "laughter", "sunshine", "rainbow", "smile", "joy", "peace",
	"telephone", "bicycle", "airplane", "submarine", "helicopter", "motorcycle", "spaceship", "train",
	"library", "bookstore", "museum", "theater", "cinema", "restaurant", "hospital", "school",
	"guitar", "piano", "violin", "drums", "saxophone", "trumpet", "flute", "harmonica",
	"superhero", "villain", "sidekick", "costume", "cape", "mask", "powers", "justice",
}

// RandomWord draws one entry of Vocabulary uniformly.
func RandomWord(rng Rand) string {
	return Vocabulary[rng.IntN(len(Vocabulary))]
}
