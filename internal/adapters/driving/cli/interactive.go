package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/halden-labs/prepkit-cli/internal/adapters/driving/tui"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Interactive transform console",
	Long: `Starts an interactive console where transforms are typed directly:

  > tokenize Hello, world!
  [hello, world]

Type 'help' inside the console for the command list, 'quit' to leave.`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("interactive mode requires a terminal")
	}

	app := tui.NewApp(defaults().Decimals)
	p := tea.NewProgram(app)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive console: %w", err)
	}
	return nil
}
