package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"passport/internal/client/session"
	"passport/internal/util"
)

func newDashboardCommand(newApp func() (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"whoami"},
		Short:   "Show the session-gated dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			return app.Dashboard(cmd.Context())
		},
	}
}

// Dashboard greets the authenticated user, confirming the token server-side.
// Without a live session it points at the login command instead.
func (a *App) Dashboard(ctx context.Context) error {
	sess, err := a.guard.Current()
	if errors.Is(err, session.ErrNoSession) {
		fmt.Fprintln(a.out, "You are not logged in. Run: passportctl login")

		return err
	}
	if err != nil {
		return err
	}

	user, err := a.api.Me(ctx, sess.Token)
	if err != nil {
		// The server rejected the stored token; drop the dead session.
		_ = a.guard.Logout()

		return renderAPIError(a.out, err)
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", user.Name)
	fmt.Fprintf(a.out, "Email:   %s\n", user.Email)
	fmt.Fprintf(a.out, "Session: expires in %s\n", util.FormatDuration(time.Until(sess.ExpiresAt)))

	return nil
}
