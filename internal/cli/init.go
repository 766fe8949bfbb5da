package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized resinabot storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}

// MigrateCmd applies pending schema migrations.
type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *Context) error {
	applied, err := ctx.Store.Migrate(func(msg string) { fmt.Println(msg) })
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	if applied > 0 {
		fmt.Printf("Successfully applied %d migration(s).\n", applied)
	}
	return nil
}
