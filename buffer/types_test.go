package buffer

import "testing"

func TestNodeKind_String(t *testing.T) {
	cases := map[NodeKind]string{
		NodeRoot:     "root",
		NodeText:     "text",
		NodeWord:     "word",
		NodeKind(42): "unknown",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("%d.String()=%q, want %q", k, got, want)
		}
	}
}

func TestSplitKeepSpace(t *testing.T) {
	got := splitKeepSpace([]rune(" ab  c\n"))
	want := []string{" ", "ab", "  ", "c", "\n"}
	if len(got) != len(want) {
		t.Fatalf("pieces=%q, want %q", got, want)
	}
	for i := range want {
		if string(got[i]) != want[i] {
			t.Fatalf("piece %d=%q, want %q", i, string(got[i]), want[i])
		}
	}
	if splitKeepSpace(nil) != nil {
		t.Fatalf("expected no pieces for empty input")
	}
}
