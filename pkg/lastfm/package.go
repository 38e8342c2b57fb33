package lastfm

import "context"

// pkg binds a generated service to its API package name, turning
// "getInfo" into "user.getInfo".
type pkg[T any] struct {
	d    dispatcher[T]
	name string
}

func (p pkg[T]) call(ctx context.Context, httpMethod, method string, auth bool, params Params) (T, error) {
	return p.d.dispatch(ctx, httpMethod, p.name+"."+method, auth, params)
}
