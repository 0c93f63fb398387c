package event

import (
	"fmt"
	"strings"
)

var (
	// textEscaper escapes Markdown control characters in text outside an entity.
	textEscaper = strings.NewReplacer("*", "\\*", "_", "\\_", "`", "\\`", "[", "\\[")
	// linkTextEscaper keeps text inside [...] of a link literal. Escapes do not apply there.
	linkTextEscaper = strings.NewReplacer("*", "", "`", "", "[", "(", "]", ")")
	// urlMarkupEscaper strips bold markers from link targets.
	urlMarkupEscaper = strings.NewReplacer("*", "")
)

// Render formats e as a Telegram Markdown message. An event without a body
// renders as "".
func Render(e Event) string {
	switch {
	case e.Kind == KindPush && e.Push != nil:
		return renderPush(*e.Push)
	case e.Kind == KindPing && e.Ping != nil:
		return renderPing(*e.Ping)
	}
	return ""
}

func renderPush(p PushEvent) string {
	lines := make([]string, 0, len(p.Commits))
	for _, c := range p.Commits {
		lines = append(lines, fmt.Sprintf("- [%s](%s) (by %s)",
			commitText(c.Description),
			commitURL(c.URL),
			text(c.Committer),
		))
	}

	return fmt.Sprintf("*Repository:* %s\n*Branch:* %s\n\n%s",
		repositoryLink(p.Repository),
		text(p.Branch),
		strings.Join(lines, "\n"),
	)
}

func renderPing(p PingEvent) string {
	return fmt.Sprintf("GitHub just sent me a *ping event* to let you know that your webhook at %s has been created! 💪\nThey also told me: %s 😉",
		repositoryLink(p.Repository),
		text(p.Zen),
	)
}

func repositoryLink(r Repository) string {
	return fmt.Sprintf("[%s](%s)", linkTextEscaper.Replace(r.Name), urlMarkupEscaper.Replace(r.URL))
}

func text(s string) string {
	return textEscaper.Replace(s)
}

// commitText keeps the headline of a commit message only.
func commitText(msg string) string {
	if i := strings.IndexAny(msg, "\r\n"); i >= 0 {
		msg = msg[:i]
	}
	if strings.TrimSpace(msg) == "" {
		return Unknown
	}
	return linkTextEscaper.Replace(msg)
}

func commitURL(u string) string {
	return urlEscaper.Replace(urlMarkupEscaper.Replace(u))
}
