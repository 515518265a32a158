package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cssel/pkg/selector"
)

// tuiCommand creates the tui command for interactive selector composition.
func (c *CLI) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Compose a selector interactively with live validation",
		Long: `Open an interactive composer. Type kind=value fragments (element,
id, class, attr, pseudo-class, pseudo-element) and press enter to
append them; ordering and cardinality violations are shown immediately
and leave the selector unchanged. Press esc to finish.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			final, err := tea.NewProgram(NewComposerModel()).Run()
			if err != nil {
				return err
			}

			m, ok := final.(ComposerModel)
			if !ok || len(m.Fragments) == 0 {
				printDetail("no selector composed")
				return nil
			}
			printSuccess("Selector composed")
			printKeyValue("Selector", m.Selector.String())
			return nil
		},
	}
}

// =============================================================================
// ComposerModel - Interactive selector composition
// =============================================================================

// ComposerModel is the bubbletea model for the interactive composer.
// It keeps the applied fragment specs alongside the built selector so
// rejected fragments never touch the accumulated value.
type ComposerModel struct {
	Selector  selector.Selector
	Fragments []string // applied kind=value specs, in order
	Input     string
	ErrMsg    string
}

// NewComposerModel creates an empty composer.
func NewComposerModel() ComposerModel {
	return ComposerModel{}
}

func (m ComposerModel) Init() tea.Cmd {
	return nil
}

func (m ComposerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch s := key.String(); s {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		m = m.apply()
	case "backspace":
		if m.Input != "" {
			runes := []rune(m.Input)
			m.Input = string(runes[:len(runes)-1])
		}
	default:
		if key.Type == tea.KeyRunes || s == " " {
			m.Input += s
		}
	}
	return m, nil
}

// apply attempts the current input as a fragment. The trial chain is a
// branch of the accumulated value, so a rejected fragment leaves the
// composer's selector untouched.
func (m ComposerModel) apply() ComposerModel {
	spec := strings.TrimSpace(m.Input)
	if spec == "" {
		return m
	}

	trial, err := applyFragment(m.Selector, spec)
	if err != nil {
		m.ErrMsg = err.Error()
		return m
	}
	if trial.Err() != nil {
		m.ErrMsg = trial.Err().Error()
		return m
	}

	m.Selector = trial
	m.Fragments = append(m.Fragments, spec)
	m.Input = ""
	m.ErrMsg = ""
	return m
}

func (m ComposerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Compose Selector"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("kind=value ⏎ append  esc finish  (" + strings.Join(fragmentKinds, ", ") + ")"))
	b.WriteString("\n\n")

	for i, frag := range m.Fragments {
		b.WriteString(StyleDim.Render(fmt.Sprintf("%2d. ", i+1)))
		b.WriteString(StyleValue.Render(frag))
		b.WriteString("\n")
	}
	if len(m.Fragments) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(StyleHighlight.Render("Selector: "))
	if text := m.Selector.String(); text != "" {
		b.WriteString(StyleValue.Render(text))
	} else {
		b.WriteString(StyleDim.Render("(empty)"))
	}
	b.WriteString("\n\n")

	b.WriteString(StyleDim.Render("> "))
	b.WriteString(m.Input)
	b.WriteString("\n")

	if m.ErrMsg != "" {
		b.WriteString("\n")
		b.WriteString(StyleError.Render(iconError + " " + m.ErrMsg))
		b.WriteString("\n")
	}

	return b.String()
}
