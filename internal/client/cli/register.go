package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"passport/internal/client"
)

func newRegisterCommand(newApp func() (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			return app.Register(cmd.Context())
		},
	}
}

// Register runs the interactive registration form and submits it.
func (a *App) Register(ctx context.Context) error {
	name, err := promptText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}

	email, err := promptText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := promptPassword("Password", a.out)
	if err != nil {
		return err
	}

	confirmation, err := promptPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	message, err := a.api.Register(ctx, &client.RegisterRequest{
		Name:                 name,
		Email:                email,
		Password:             password,
		PasswordConfirmation: confirmation,
	})
	if err != nil {
		return renderAPIError(a.out, err)
	}

	fmt.Fprintln(a.out, message)
	fmt.Fprintln(a.out, "You can now log in with: passportctl login")

	return nil
}
