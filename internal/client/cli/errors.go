package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"

	"passport/internal/client"
)

// renderAPIError prints a server-reported failure in a readable form and
// returns a short error so the process exits non-zero. Transport errors are
// passed through untouched.
func renderAPIError(w io.Writer, err error) error {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	fmt.Fprintln(w, apiErr.Message)

	if len(apiErr.Fields) > 0 {
		fields := make([]string, 0, len(apiErr.Fields))
		for field := range apiErr.Fields {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Fprintf(w, "  %s: %s\n", field, apiErr.Fields[field])
		}
	}

	return errors.Errorf("request rejected with status %d", apiErr.StatusCode)
}
