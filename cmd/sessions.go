package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jfmyers9/lastfmclient/internal/session"
)

var pruneAge time.Duration

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage stored Last.fm sessions",
	Long: `Manage the sessions stored by 'lastfm auth' and 'lastfm serve'.

Without a subcommand the stored sessions are listed. The active session
is marked with "*" and its key is the one used for authenticated calls.`,
	Args: cobra.NoArgs,
	RunE: runSessionsList,
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored sessions",
	Args:  cobra.NoArgs,
	RunE:  runSessionsList,
}

var sessionsUseCmd = &cobra.Command{
	Use:   "use <username>",
	Short: "Make a stored session the active one",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsUse,
}

var sessionsRmCmd = &cobra.Command{
	Use:     "rm <username>",
	Aliases: []string{"remove"},
	Short:   "Remove a stored session",
	Args:    cobra.ExactArgs(1),
	RunE:    runSessionsRm,
}

var sessionsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove inactive sessions that have not been used recently",
	Args:  cobra.NoArgs,
	RunE:  runSessionsPrune,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.AddCommand(sessionsListCmd, sessionsUseCmd, sessionsRmCmd, sessionsPruneCmd)

	sessionsPruneCmd.Flags().DurationVar(&pruneAge, "older-than", 90*24*time.Hour, "remove sessions unused for longer than this")
}

func runSessionsList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No stored sessions. Run 'lastfm auth' to add one.")
		return nil
	}
	return writeSessions(os.Stdout, records, time.Now())
}

// writeSessions prints records as a table with humanized ages.
func writeSessions(w io.Writer, records []session.Record, now time.Time) error {
	t := &table{header: []string{"", "USER", "SUBSCRIBER", "LAST USED", "ADDED"}}
	for _, r := range records {
		active := ""
		if r.Active {
			active = "*"
		}
		subscriber := "no"
		if r.Subscriber {
			subscriber = "yes"
		}
		t.add(active, r.Username, subscriber,
			humanize.RelTime(r.LastUsedAt, now, "ago", "from now"),
			humanize.RelTime(r.CreatedAt, now, "ago", "from now"))
	}
	return t.write(w)
}

func runSessionsUse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SetActive(ctx, args[0]); err != nil {
		return err
	}
	rec, err := store.Get(ctx, args[0])
	if err != nil {
		return err
	}

	cfg.LastFM.SessionKey = rec.Key
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("✓ Now using the session of %s\n", rec.Username)
	return nil
}

func runSessionsRm(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.Get(ctx, args[0])
	if err != nil {
		return err
	}
	if err := store.Delete(ctx, rec.Username); err != nil {
		return err
	}

	if rec.Key == cfg.LastFM.SessionKey {
		cfg.LastFM.SessionKey = ""
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
	}

	fmt.Printf("✓ Removed the session of %s\n", rec.Username)
	return nil
}

func runSessionsPrune(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Prune(cmd.Context(), pruneAge)
	if err != nil {
		return err
	}
	fmt.Printf("Removed %d inactive %s\n", n, plural(n, "session", "sessions"))
	return nil
}

func plural(n int64, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
