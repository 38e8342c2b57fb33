package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/spf13/cobra"

	"github.com/jfmyers9/lastfmclient/internal/session"
	"github.com/jfmyers9/lastfmclient/pkg/lastfm"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web authorization example",
	Long: `Run a small web server demonstrating the web authorization flow.

Visiting / redirects to Last.fm. After the user grants access, Last.fm
redirects back to /callback with a token. The server exchanges it for a
session, stores the session, and responds with the user's profile, recent
tracks and friends, the last two fetched concurrently.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if !cfg.HasCredentials() {
		return fmt.Errorf("no API credentials configured, run 'lastfm auth' first")
	}
	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	clientCfg := clientConfig()
	clientCfg.SessionKey = ""
	handler, err := newServer(clientCfg, store, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("serving web authorization example")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-cmd.Context().Done():
	}

	logger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// server implements the web authorization flow on top of AsyncClient.
type server struct {
	clientCfg lastfm.Config
	client    *lastfm.AsyncClient
	store     *session.Store
}

// newServer returns the example handler. clientCfg must not carry a
// session key; every callback builds a client for its own session.
func newServer(clientCfg lastfm.Config, store *session.Store, logger zerolog.Logger) (http.Handler, error) {
	client, err := lastfm.NewAsyncClient(clientCfg)
	if err != nil {
		return nil, err
	}
	s := &server{clientCfg: clientCfg, client: client, store: store}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /callback", s.handleCallback)

	var h http.Handler = mux
	h = hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	})(h)
	h = hlog.RemoteAddrHandler("remote")(h)
	h = hlog.NewHandler(logger)(h)
	return h, nil
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	callback := scheme + "://" + r.Host + "/callback"
	http.Redirect(w, r, s.client.AuthURL(callback), http.StatusFound)
}

// profile is the callback response.
type profile struct {
	Username     string          `json:"username"`
	Subscriber   bool            `json:"subscriber"`
	User         json.RawMessage `json:"user"`
	RecentTracks json.RawMessage `json:"recent_tracks"`
	Friends      json.RawMessage `json:"friends"`
}

func (s *server) handleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token", http.StatusBadRequest)
		return
	}

	f, err := s.client.Auth.GetSession(ctx, token)
	if err != nil {
		writeError(w, r, err)
		return
	}
	raw, err := f.Await(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}
	sess, err := lastfm.ParseSession(raw)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := s.store.Put(ctx, sess.Username, sess.Key, sess.Subscriber); err != nil {
		writeError(w, r, err)
		return
	}
	hlog.FromRequest(r).Info().Str("user", sess.Username).Msg("stored session")

	client, err := lastfm.NewAsyncClient(s.clientCfg)
	if err != nil {
		writeError(w, r, err)
		return
	}
	client.SetSessionKey(sess.Key)

	// user.getInfo without a user reports the session's own profile
	info, err := client.User.GetInfo(ctx, nil)
	if err != nil {
		writeError(w, r, err)
		return
	}
	user, err := info.Await(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}

	tracks, err := client.User.GetRecentTracks(ctx, sess.Username, &lastfm.UserGetRecentTracksOptions{Limit: 10})
	if err != nil {
		writeError(w, r, err)
		return
	}
	friends, err := client.User.GetFriends(ctx, sess.Username, &lastfm.UserGetFriendsOptions{Limit: 10})
	if err != nil {
		writeError(w, r, err)
		return
	}
	results, err := lastfm.Gather(ctx, tracks, friends)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(profile{
		Username:     sess.Username,
		Subscriber:   sess.Subscriber,
		User:         user,
		RecentTracks: results[0],
		Friends:      results[1],
	})
}

// writeError maps SDK errors to HTTP statuses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	var apiErr *lastfm.APIError
	switch {
	case errors.Is(err, lastfm.ErrAuth):
		status = http.StatusUnauthorized
	case errors.Is(err, lastfm.ErrTemporary):
		status = http.StatusServiceUnavailable
	case errors.As(err, &apiErr):
		status = http.StatusBadGateway
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	}

	hlog.FromRequest(r).Error().Err(err).Int("status", status).Msg("request failed")
	http.Error(w, err.Error(), status)
}
