package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newUsersCommand(newApp func() (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List all registered users",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			return app.Users(cmd.Context())
		},
	}
}

// Users prints the registered users as a table.
func (a *App) Users(ctx context.Context) error {
	users, err := a.api.ListUsers(ctx)
	if err != nil {
		return renderAPIError(a.out, err)
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tEMAIL\tREGISTERED")
	for _, user := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", user.Name, user.Email, user.CreatedAt.Local().Format("2006-01-02"))
	}

	return tw.Flush()
}
