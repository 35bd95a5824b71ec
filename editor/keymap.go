package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	WordLeft, WordRight   key.Binding
	Home, End             key.Binding

	Backspace, Delete key.Binding

	// Word boundaries. Both may substitute the word before the cursor.
	Space, Enter key.Binding

	// Chaos removes random runes. It answers the usual undo and redo keys.
	Chaos key.Binding
	Clear key.Binding
	Paste key.Binding
	Copy  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),

		Space: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "space")),
		Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		Chaos: key.NewBinding(key.WithKeys("ctrl+z", "ctrl+y"), key.WithHelp("ctrl+z", "undo")),
		Clear: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		Copy:  key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "copy all")),
	}
}

func (km KeyMap) isZero() bool {
	return len(km.Left.Keys()) == 0 && len(km.Space.Keys()) == 0 && len(km.Chaos.Keys()) == 0
}

// ShortHelp returns the bindings shown in a compact help line.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Chaos, km.Clear, km.Paste}
}

// FullHelp returns every binding, grouped for a help view.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Up, km.Down, km.WordLeft, km.WordRight, km.Home, km.End},
		{km.Backspace, km.Delete, km.Space, km.Enter},
		{km.Chaos, km.Clear, km.Paste, km.Copy},
	}
}
