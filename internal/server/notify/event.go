// Package notify implements the pub/sub hub that pushes board events to
// connected sessions. Each user has at most one live endpoint; a failed
// delivery evicts that endpoint and never blocks delivery to the rest.
package notify

// Kind discriminates the three event types pushed to subscribers.
type Kind string

const (
	// KindChannelAssigned tells a user they gained access to a project
	// and which chat channel address it uses.
	KindChannelAssigned Kind = "CHANNEL_ASSIGNED"

	// KindProjectRemoved tells former members their project was cancelled.
	KindProjectRemoved Kind = "PROJECT_REMOVED"

	// KindPresenceChanged tells everyone a peer went online or offline.
	KindPresenceChanged Kind = "PRESENCE_CHANGED"
)

// Event is a single notification. Which fields are meaningful depends on
// Kind: Project/ChatAddr for channel assignment, Project for removal,
// Username/Online for presence.
type Event struct {
	Kind     Kind
	Project  string
	ChatAddr string
	Username string
	Online   bool
}

// Endpoint is the delivery destination a session registers. Send reports
// failure so the hub can evict dead subscribers; implementations must not
// block forever.
type Endpoint interface {
	Send(Event) error
}
