package event

// Kind is the GitHub event kind as sent in the X-GitHub-Event header.
type Kind string

const (
	KindPush Kind = "push"
	KindPing Kind = "ping"
)

// Supported reports whether k can be normalized.
func (k Kind) Supported() bool {
	switch k {
	case KindPush, KindPing:
		return true
	}
	return false
}

// Repository is the repository an event originates from.
// Name and URL are already link-safe.
type Repository struct {
	Name string
	URL  string
}

// Commit is one entry of a push.
type Commit struct {
	Description string
	URL         string
	Committer   string
}

// PushEvent is a normalized push.
type PushEvent struct {
	Repository Repository
	Branch     string
	Commits    []Commit
}

// PingEvent is sent by GitHub once a webhook has been created.
type PingEvent struct {
	Repository Repository
	Zen        string
}

// Event is the canonical event. Exactly one of Push, Ping is set, matching Kind.
type Event struct {
	Kind Kind
	Push *PushEvent
	Ping *PingEvent
}
