package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jfmyers9/lastfmclient/pkg/lastfm"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authenticate with Last.fm",
	Long: `Authorize this tool against a Last.fm account (desktop flow).

Steps:
1. Enter an API key and secret, unless they are already configured
2. Open the printed URL and allow access
3. The resulting session key is written to the config file and added
   to the session store as the active session

API credentials are issued at https://www.last.fm/api/account/create`,
	RunE: runAuth,
}

func init() {
	rootCmd.AddCommand(authCmd)
}

func runAuth(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	in := bufio.NewReader(os.Stdin)

	fmt.Println("Last.fm Authentication")
	fmt.Println("======================")
	fmt.Println()
	fmt.Println("API credentials are issued at https://www.last.fm/api/account/create")
	fmt.Println()

	if err := promptCredentials(in); err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	fmt.Println("\nRequesting a token...")
	raw, err := client.Auth.GetToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to get auth token: %w", err)
	}
	token, err := lastfm.ParseToken(raw)
	if err != nil {
		return err
	}

	fmt.Println("\nOpen this URL and allow access:")
	fmt.Printf("\n  %s\n\n", client.TokenAuthURL(token.Token))
	fmt.Println("Press Enter once access is granted...")
	_, _ = in.ReadString('\n')

	sess, err := exchangeToken(ctx, client, token.Token, 3, 2*time.Second)
	if err != nil {
		return err
	}

	cfg.LastFM.SessionKey = sess.Key
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	if err := rememberSession(ctx, sess); err != nil {
		return err
	}

	fmt.Printf("\n✓ Authenticated as %s\n", sess.Username)
	fmt.Printf("✓ Session key saved to %s\n", cfg.Path())
	fmt.Println("\nAuthenticated calls: lastfm call <method> --auth ...")

	return nil
}

// promptCredentials fills in the API key and secret, offering to keep the
// configured pair.
func promptCredentials(in *bufio.Reader) error {
	if cfg.HasCredentials() {
		fmt.Printf("Configured API key: %s\n", cfg.LastFM.APIKey)
		answer, err := prompt(in, "Keep these credentials? [Y/n]")
		if err == nil && answer != "" && !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
			cfg.LastFM.APIKey = ""
			cfg.LastFM.APISecret = ""
		}
	}

	fields := []struct {
		label string
		dst   *string
	}{
		{"API key", &cfg.LastFM.APIKey},
		{"API secret", &cfg.LastFM.APISecret},
	}
	for _, f := range fields {
		if *f.dst != "" {
			continue
		}
		v, err := prompt(in, "Last.fm "+f.label)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", f.label, err)
		}
		if v == "" {
			return fmt.Errorf("%s is required", f.label)
		}
		*f.dst = v
	}
	return nil
}

func prompt(in *bufio.Reader, label string) (string, error) {
	fmt.Print(label + ": ")
	line, err := in.ReadString('\n')
	return strings.TrimSpace(line), err
}

// rememberSession stores sess and makes it the active session.
func rememberSession(ctx context.Context, sess *lastfm.Session) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Put(ctx, sess.Username, sess.Key, sess.Subscriber); err != nil {
		return err
	}
	return store.SetActive(ctx, sess.Username)
}

// exchangeToken trades an authorized token for a session. The user may
// still be on the authorization page, so an unauthorized token is retried.
func exchangeToken(ctx context.Context, client *lastfm.Client, token string, maxRetries int, retryDelay time.Duration) (*lastfm.Session, error) {
	var err error
	for i := 0; i < maxRetries; i++ {
		var raw []byte
		raw, err = client.Auth.GetSession(ctx, token)
		if err == nil {
			return lastfm.ParseSession(raw)
		}

		var apiErr *lastfm.APIError
		if !errors.As(err, &apiErr) || (apiErr.Code != lastfm.ErrCodeUnauthorizedToken && !apiErr.Temporary()) {
			break
		}

		if i < maxRetries-1 {
			fmt.Printf("Token not authorized yet (attempt %d/%d), retrying in %v\n",
				i+1, maxRetries, retryDelay)
			select {
			case <-time.After(retryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	return nil, fmt.Errorf("failed to get session key: %w", err)
}
