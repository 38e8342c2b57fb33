package lastfm

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// AsyncClient is the non-blocking Last.fm API client. Every call builds and
// signs its parameters synchronously, then performs the HTTP exchange on its
// own goroutine and returns a *Future immediately.
//
// Several futures may be in flight at once and may complete in any order:
//
//	tracks, _ := client.User.GetRecentTracks(ctx, name, nil)
//	friends, _ := client.User.GetFriends(ctx, name, nil)
//	results, err := lastfm.Gather(ctx, tracks, friends)
type AsyncClient struct {
	*core
	Services[*Future]
}

// NewAsyncClient creates a new asynchronous Last.fm API client.
//
// Returns a *ConfigurationError if APIKey or APISecret is missing.
func NewAsyncClient(cfg Config) (*AsyncClient, error) {
	co, err := newCore(cfg)
	if err != nil {
		return nil, err
	}
	c := &AsyncClient{core: co}
	c.Services = newServices[*Future](c)
	return c, nil
}

// Call starts method and returns a Future for its normalized payload.
//
// The returned error is non-nil only when the request could not be built
// (for example ErrNoSessionKey); transport and API failures are delivered
// through the Future.
func (c *AsyncClient) Call(ctx context.Context, httpMethod, method string, auth bool, params Params) (*Future, error) {
	return c.dispatch(ctx, httpMethod, method, auth, params)
}

func (c *AsyncClient) dispatch(ctx context.Context, httpMethod, method string, auth bool, params Params) (*Future, error) {
	req, err := c.newRequest(httpMethod, method, auth, params)
	if err != nil {
		return nil, err
	}

	f := &Future{method: method, done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.data, f.err = c.roundTrip(ctx, req)
	}()
	return f, nil
}

// Future is the pending result of an AsyncClient call. Cancelling the
// context passed to the call aborts the HTTP exchange; abandoning a Future
// does not.
type Future struct {
	method string
	done   chan struct{}
	data   json.RawMessage
	err    error
}

// Method returns the API method this future belongs to.
func (f *Future) Method() string {
	return f.method
}

// Done is closed once the call has completed or failed.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Result blocks until the call completes and returns its outcome.
func (f *Future) Result() (json.RawMessage, error) {
	<-f.done
	return f.data, f.err
}

// Await waits for the call or for ctx, whichever finishes first. Giving up
// on ctx does not stop the underlying request.
func (f *Future) Await(ctx context.Context) (json.RawMessage, error) {
	select {
	case <-f.done:
		return f.data, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Gather waits for all futures and returns their payloads in argument
// order. Completion order is irrelevant; the first failure is returned.
// A nil future fails with ErrNilFuture before anything is awaited.
func Gather(ctx context.Context, futures ...*Future) ([]json.RawMessage, error) {
	for i, f := range futures {
		if f == nil {
			return nil, fmt.Errorf("future %d: %w", i, ErrNilFuture)
		}
	}

	results := make([]json.RawMessage, len(futures))
	g, ctx := errgroup.WithContext(ctx)
	for i, f := range futures {
		g.Go(func() error {
			data, err := f.Await(ctx)
			if err != nil {
				return err
			}
			results[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
