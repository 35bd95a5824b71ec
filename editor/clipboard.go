package editor

// Clipboard provides editor-level clipboard integration. Pasted text counts as typed
// input; copy takes the whole document.
//
// Errors must not crash the UI; failures are ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
