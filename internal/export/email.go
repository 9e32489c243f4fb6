package export

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/pkg/browser"
)

// DefaultSubject is used when the caller does not supply a subject line.
const DefaultSubject = "Letter to Representative"

// Many mail-client integrations truncate or fail silently past this length,
// so the mailto composer refuses instead.
const maxMailtoLength = 2000

// Strategy builds a provider-specific compose URL for a message.
type Strategy func(to, subject, body string) string

// Opener performs the navigation side effect; swappable in tests.
type Opener func(rawURL string) error

// Composer opens an email compose window for letter text. The three send
// paths (default client, Gmail, Outlook) differ only in their URL strategy
// and length limit.
type Composer struct {
	name  string
	build Strategy
	open  Opener
	limit int // max URL length; 0 means unlimited
}

func NewDefaultMailComposer() Composer {
	return Composer{name: "default mail client", build: MailtoURL, open: browser.OpenURL, limit: maxMailtoLength}
}

func NewGmailComposer() Composer {
	return Composer{name: "Gmail", build: GmailURL, open: browser.OpenURL}
}

func NewOutlookComposer() Composer {
	return Composer{name: "Outlook", build: OutlookURL, open: browser.OpenURL}
}

// Compose builds the provider URL and attempts navigation. Returns whether
// the compose window was opened; a refused or failed attempt performs no
// navigation and is only logged.
func (c Composer) Compose(to, subject, body string) bool {
	if subject == "" {
		subject = DefaultSubject
	}
	u := c.build(to, subject, body)
	if c.limit > 0 && len(u) > c.limit {
		slog.Warn("message too large for compose URL", "provider", c.name, "length", len(u), "limit", c.limit)
		return false
	}
	if err := c.open(u); err != nil {
		slog.Warn("could not open compose window", "provider", c.name, "error", err)
		return false
	}
	return true
}

func MailtoURL(to, subject, body string) string {
	return "mailto:" + to + "?subject=" + encodeComponent(subject) + "&body=" + encodeComponent(body)
}

func GmailURL(to, subject, body string) string {
	return "https://mail.google.com/mail/?view=cm&fs=1&to=" + encodeComponent(to) +
		"&su=" + encodeComponent(subject) + "&body=" + encodeComponent(body)
}

func OutlookURL(to, subject, body string) string {
	return "https://outlook.live.com/mail/deeplink/compose?to=" + encodeComponent(to) +
		"&subject=" + encodeComponent(subject) + "&body=" + encodeComponent(body)
}

// encodeComponent matches encodeURIComponent semantics closely enough for
// compose URLs: query escaping with spaces as %20 rather than '+'.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
