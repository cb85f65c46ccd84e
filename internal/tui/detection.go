package tui

import (
	"github.com/spf13/cobra"

	"github.com/jtd-117/bitbooks/internal/util"
)

// ShouldUseTUI returns true if the command should run the interactive
// tracker. TUI mode is enabled when:
// - stdout is a TTY (not piped or redirected)
// - --no-interactive flag is not set
func ShouldUseTUI(cmd *cobra.Command) bool {
	if !util.IsTTY() {
		return false
	}

	noInteractive, _ := cmd.Flags().GetBool("no-interactive")
	return !noInteractive
}
