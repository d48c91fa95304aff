// Package tui provides the interactive transform console following the
// Elm architecture. One input line is one transform invocation.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/halden-labs/prepkit-cli/internal/adapters/driving/tui/styles"
	"github.com/halden-labs/prepkit-cli/internal/adapters/driving/values"
	"github.com/halden-labs/prepkit-cli/internal/transforms/cleaning"
	"github.com/halden-labs/prepkit-cli/internal/transforms/numeric"
	"github.com/halden-labs/prepkit-cli/internal/transforms/structural"
	"github.com/halden-labs/prepkit-cli/internal/transforms/text"
)

const helpText = `commands:
  tokenize TEXT        split into lowercase tokens
  clean TEXT           strip punctuation, keep spacing
  normalize N,N,...    min-max rescale to [0,1]
  standardize N,N,...  z-score standardisation
  log N,N,...          natural log element-wise
  unique V,V,...       drop duplicates
  flatten [[..],[..]]  flatten one nesting level
  help                 show this text
  quit                 leave the console`

// maxHistory bounds the scrollback kept on screen.
const maxHistory = 20

// entry is one executed command and its rendered outcome.
type entry struct {
	command string
	output  string
	isError bool
}

// App is the interactive console model. It implements tea.Model.
type App struct {
	input    textinput.Model
	styles   *styles.Styles
	decimals int
	history  []entry
	width    int
	quitting bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the console model. decimals controls float rendering,
// matching the CLI's configured default.
func NewApp(decimals int) *App {
	ti := textinput.New()
	ti.Placeholder = "tokenize Hello, world!"
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 60

	return &App{
		input:    ti,
		styles:   styles.DefaultStyles(),
		decimals: decimals,
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		return a, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			a.quitting = true
			return a, tea.Quit

		case tea.KeyEnter:
			line := strings.TrimSpace(a.input.Value())
			a.input.Reset()
			if line == "" {
				return a, nil
			}
			if line == "quit" || line == "exit" {
				a.quitting = true
				return a, tea.Quit
			}
			a.push(line, a.evaluate(line))
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("prepkit console"))
	b.WriteString("\n\n")

	for _, e := range a.history {
		b.WriteString(a.styles.Prompt.Render("> " + e.command))
		b.WriteString("\n")
		if e.isError {
			b.WriteString(a.styles.Error.Render(e.output))
		} else {
			b.WriteString(a.styles.Result.Render(e.output))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.styles.InputField.Render(a.input.View()))
	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("enter: run  •  help: commands  •  esc: quit"))
	return b.String()
}

// push appends an executed entry, trimming old scrollback.
func (a *App) push(command string, e entry) {
	e.command = command
	a.history = append(a.history, e)
	if len(a.history) > maxHistory {
		a.history = a.history[len(a.history)-maxHistory:]
	}
}

// evaluate runs one console line against the transform library.
func (a *App) evaluate(line string) entry {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "help":
		return entry{output: helpText}

	case "tokenize":
		return entry{output: values.FormatStrings(text.Tokenize(arg))}

	case "clean":
		return entry{output: text.Clean(arg)}

	case "normalize":
		in, err := values.ParseFloats(arg)
		if err != nil {
			return errEntry(err)
		}
		out, err := numeric.Normalize(in, 0, 1)
		if err != nil {
			return errEntry(err)
		}
		return entry{output: values.FormatFloats(out, a.decimals)}

	case "standardize":
		in, err := values.ParseFloats(arg)
		if err != nil {
			return errEntry(err)
		}
		out, err := numeric.Standardize(in)
		if err != nil {
			return errEntry(err)
		}
		return entry{output: values.FormatFloats(out, a.decimals)}

	case "log":
		in, err := values.ParseFloats(arg)
		if err != nil {
			return errEntry(err)
		}
		out, err := numeric.LogTransform(in)
		if err != nil {
			return errEntry(err)
		}
		return entry{output: values.FormatFloats(out, a.decimals)}

	case "unique":
		out := cleaning.Deduplicate(values.Parse(arg))
		return entry{output: values.FormatValues(out)}

	case "flatten":
		nested, err := values.ParseNested(arg)
		if err != nil {
			return errEntry(err)
		}
		return entry{output: values.FormatValues(structural.Flatten(nested))}

	default:
		return errEntry(fmt.Errorf("unknown command %q (try 'help')", name))
	}
}

func errEntry(err error) entry {
	return entry{output: err.Error(), isError: true}
}
