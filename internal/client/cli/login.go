package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"passport/internal/client"
)

func newLoginCommand(newApp func() (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			return app.Login(cmd.Context())
		},
	}
}

// Login runs the interactive login form, stores the issued token and reports
// the authenticated identity.
func (a *App) Login(ctx context.Context) error {
	email, err := promptText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := promptPassword("Password", a.out)
	if err != nil {
		return err
	}

	token, err := a.api.Login(ctx, &client.LoginRequest{Email: email, Password: password})
	if err != nil {
		return renderAPIError(a.out, err)
	}
	if err := a.guard.Login(token); err != nil {
		return err
	}

	sess, err := a.guard.Current()
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s <%s>\n", sess.Name, sess.Email)

	return nil
}
