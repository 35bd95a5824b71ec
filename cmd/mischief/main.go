package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/mischief"
	"github.com/iw2rmb/mischief/editor"
)

// systemClipboard reads and writes the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }
func (systemClipboard) WriteText(s string) error  { return clipboard.WriteAll(s) }

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingLeft(1)

type model struct {
	editor editor.Model
}

func newModel(logger *log.Logger) model {
	cfg := editor.Config{
		Style:     editor.DefaultStyle(),
		Clipboard: systemClipboard{},
		Logger:    logger,
	}
	if clipboard.Unsupported {
		cfg.Clipboard = nil
	}
	return model{editor: editor.New(cfg)}
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-1, 0))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.editor = m.editor.Close()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	status := fmt.Sprintf("%d chars · %d words", m.editor.CharacterCount(), m.editor.WordCount())
	if m.editor.AutoTyping() {
		status += " · typing…"
	}
	return m.editor.View() + "\n" + statusStyle.Render(status)
}

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-version" || os.Args[1] == "--version") {
		fmt.Println(mischief.Banner())
		return
	}

	logger := log.New(io.Discard, "", 0)
	if path := os.Getenv("MISCHIEF_LOG"); path != "" {
		f, err := tea.LogToFile(path, "mischief")
		if err != nil {
			_, _ = os.Stderr.WriteString(err.Error() + "\n")
			os.Exit(1)
		}
		defer f.Close()
		logger = log.Default()
		logger.Printf("%s starting", mischief.Banner())
	}

	p := tea.NewProgram(newModel(logger), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
