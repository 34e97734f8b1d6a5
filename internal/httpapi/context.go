package httpapi

import (
	"context"
	"errors"
	"net/http"
)

// serverBaseCtx is a process-level context that can be canceled on shutdown.
// Defaults to Background if not set.
var serverBaseCtx = context.Background()

// SetBaseContext sets the process-level base context used by handlers.
func SetBaseContext(ctx context.Context) {
	if ctx == nil {
		serverBaseCtx = context.Background()
		return
	}
	serverBaseCtx = ctx
}

// joinContexts returns a context that is canceled when either a or b is done.
// The returned cancel func must be called to release the goroutine when handler ends.
func joinContexts(a, b context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		select {
		case <-a.Done():
			cancel()
		case <-b.Done():
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}

// predictContext joins the request with the server base context and applies
// the predict timeout.
func predictContext(r *http.Request) (context.Context, context.CancelFunc) {
	joined, cancelJoin := joinContexts(serverBaseCtx, r.Context())
	if predictTimeout <= 0 {
		return joined, cancelJoin
	}
	ctx, cancel := context.WithTimeout(joined, predictTimeout)
	return ctx, func() {
		cancel()
		cancelJoin()
	}
}

// clientGone reports whether the client hung up on r. Nothing can be
// written back in that case.
func clientGone(r *http.Request) bool {
	return r.Context().Err() != nil
}

var errShuttingDown = errors.New("server shutting down")

// failureStatus maps a Predict error to the status and error to report.
// A prediction cut short by shutdown is a 503, not a client error.
func failureStatus(err error) (int, error) {
	if serverBaseCtx.Err() != nil {
		return http.StatusServiceUnavailable, errShuttingDown
	}
	return statusFor(err), err
}
