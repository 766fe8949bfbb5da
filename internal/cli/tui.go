package cli

import "github.com/camontes/resinabot/internal/tui"

// TuiCmd opens the interactive reminder browser for one owner.
type TuiCmd struct {
	Owner string `help:"Owner identity to browse reminders for." required:""`
}

func (c *TuiCmd) Run(ctx *Context) error {
	return tui.Run(ctx.Store, c.Owner)
}
