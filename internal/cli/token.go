package cli

import (
	"errors"
	"fmt"

	"github.com/camontes/resinabot/internal/keyring"
)

// TokenSetCmd stores the chat-gateway bearer token in the OS keyring.
type TokenSetCmd struct {
	Token string `arg:"" help:"Gateway bearer token."`
}

func (c *TokenSetCmd) Run(ctx *Context) error {
	if err := keyring.SetGatewayToken(c.Token); err != nil {
		return err
	}
	fmt.Println("Gateway token stored in OS keyring.")
	return nil
}

type TokenClearCmd struct{}

func (c *TokenClearCmd) Run(ctx *Context) error {
	err := keyring.DeleteGatewayToken()
	if errors.Is(err, keyring.ErrNotFound) {
		fmt.Println("No gateway token stored.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Println("Gateway token removed from OS keyring.")
	return nil
}
