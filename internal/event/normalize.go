package event

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

var (
	nameEscaper = strings.NewReplacer("[", "(", "]", ")")
	urlEscaper  = strings.NewReplacer("(", "%28", ")", "%29")
)

// Decode parses body as a JSON object.
func Decode(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if obj == nil {
		return nil, ErrMalformedPayload
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after object", ErrMalformedPayload)
	}
	return obj, nil
}

// Normalize builds the canonical event for kind from a raw payload.
// The payload is validated before the kind.
func Normalize(kind Kind, body []byte) (Event, error) {
	obj, err := Decode(body)
	if err != nil {
		return Event{}, err
	}
	return NormalizeObject(kind, obj)
}

// NormalizeObject is Normalize for an already decoded payload. Absent or
// wrongly typed fields fall back to Unknown / UnknownURL and never fail.
func NormalizeObject(kind Kind, obj map[string]any) (Event, error) {
	switch kind {
	case KindPush:
		return Event{Kind: kind, Push: &PushEvent{
			Repository: repository(obj),
			Branch:     strings.TrimPrefix(stringOr(obj, Unknown, "ref"), branchRefPrefix),
			Commits:    commits(obj),
		}}, nil
	case KindPing:
		return Event{Kind: kind, Ping: &PingEvent{
			Repository: repository(obj),
			Zen:        stringOr(obj, Unknown, "zen"),
		}}, nil
	default:
		return Event{}, fmt.Errorf("%w: %q", ErrUnsupportedEventKind, kind)
	}
}

func repository(obj map[string]any) Repository {
	return Repository{
		Name: nameEscaper.Replace(stringOr(obj, Unknown, "repository", "full_name")),
		URL:  urlEscaper.Replace(stringOr(obj, UnknownURL, "repository", "html_url")),
	}
}

func commits(obj map[string]any) []Commit {
	items := objectsAt(obj, "commits")
	out := make([]Commit, 0, len(items))
	for _, c := range items {
		out = append(out, Commit{
			Description: stringOr(c, Unknown, "message"),
			URL:         stringOr(c, UnknownURL, "url"),
			Committer:   stringOr(c, Unknown, "committer", "name"),
		})
	}
	return out
}
