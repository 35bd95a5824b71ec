package buffer

import "testing"

func TestCounts(t *testing.T) {
	cases := []struct {
		text  string
		chars int
		words int
	}{
		{text: "", chars: 0, words: 0},
		{text: "  \n\t", chars: 4, words: 0},
		{text: "hello  world\nfoo", chars: 16, words: 3},
		{text: "héllo", chars: 5, words: 1},
	}

	for _, tc := range cases {
		b := New(tc.text)
		if got := b.CharacterCount(); got != tc.chars {
			t.Fatalf("CharacterCount(%q)=%d, want %d", tc.text, got, tc.chars)
		}
		if got := b.WordCount(); got != tc.words {
			t.Fatalf("WordCount(%q)=%d, want %d", tc.text, got, tc.words)
		}
	}
}
