package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLogoutCommand(newApp func() (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			return app.Logout()
		},
	}
}

// Logout removes the stored token. Logging out without a session succeeds.
func (a *App) Logout() error {
	if err := a.guard.Logout(); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Logged out.")

	return nil
}
