package cmd

import (
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jfmyers9/lastfmclient/pkg/lastfm"
)

var errorsCmd = &cobra.Command{
	Use:   "errors",
	Short: "List the documented Last.fm error codes",
	Long: `List every documented Last.fm API error code with its description
and categories.

Categories group codes for handling: auth errors need a new session,
temporary errors may succeed when retried later.`,
	Args: cobra.NoArgs,
	// Needs no configuration
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeErrorTable(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(errorsCmd)
}

// writeErrorTable prints the error registry as an aligned table.
func writeErrorTable(w io.Writer) error {
	t := &table{header: []string{"CODE", "CATEGORIES", "DESCRIPTION"}}
	for _, code := range lastfm.ErrorCodes() {
		d, _ := lastfm.LookupError(code)
		t.add(strconv.Itoa(d.Code), d.Categories.String(), d.Description)
	}
	return t.write(w)
}
