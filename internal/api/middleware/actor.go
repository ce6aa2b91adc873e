package middleware

import (
	"context"
	"net/http"
)

const (
	// ActorKey is the context key for the acting identity
	ActorKey ContextKey = "actor"
	// ActorHeader carries the identity recorded on workflow transitions
	ActorHeader = "X-Actor"
)

// Actor returns a middleware that resolves the acting identity from the
// X-Actor header, falling back to defaultActor.
func Actor(defaultActor string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor := r.Header.Get(ActorHeader)
			if actor == "" {
				actor = defaultActor
			}
			ctx := context.WithValue(r.Context(), ActorKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetActor extracts the acting identity from the request context
func GetActor(r *http.Request) string {
	if actor, ok := r.Context().Value(ActorKey).(string); ok {
		return actor
	}
	return ""
}
