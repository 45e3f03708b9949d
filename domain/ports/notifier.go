package ports

import "github.com/google/uuid"

// Notifier is the shared broadcast endpoint for push events. It is injected
// into services instead of being reached as ambient global state, so tests can
// substitute a recorder.
//
// Delivery is best-effort: no acknowledgement, no retry, no replay. A client
// that is disconnected at emission time misses the event and must re-fetch.
type Notifier interface {
	EmitToRoom(room, event string, data any)
}

// UserRoom names the per-user channel a client joins after authenticating.
func UserRoom(userID uuid.UUID) string {
	return "user:" + userID.String()
}
