package cli

import (
	"bufio"
	"io"
	"os"

	"github.com/spf13/cobra"

	"passport/internal/client"
	"passport/internal/client/session"
)

const defaultServerURL = "http://localhost:3333"

// App bundles the API client, the session guard and the terminal IO used by
// every command.
type App struct {
	api    *client.Client
	guard  *session.Guard
	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires an App against the given server and token store.
func NewApp(serverURL string, store *session.Store) *App {
	return &App{
		api:    client.New(serverURL),
		guard:  session.NewGuard(store),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// NewRootCommand builds the passportctl command tree.
func NewRootCommand() *cobra.Command {
	var serverURL string

	root := &cobra.Command{
		Use:           "passportctl",
		Short:         "Terminal client for the passport authentication service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&serverURL, "server", defaultServerURL, "base URL of the passport API")

	newApp := func() (*App, error) {
		store, err := session.DefaultStore()
		if err != nil {
			return nil, err
		}

		return NewApp(serverURL, store), nil
	}

	root.AddCommand(
		newRegisterCommand(newApp),
		newLoginCommand(newApp),
		newDashboardCommand(newApp),
		newUsersCommand(newApp),
		newLogoutCommand(newApp),
	)

	return root
}
