// Package links turns free-text social handles and URLs into dereferenceable
// URIs. Normalization is a presentation-time concern only: raw user input is
// stored as typed and never rewritten at commit time.
package links

import (
	"regexp"
	"strings"

	"github.com/DruxAMB/based-list/internal/features/profile/models"
)

// Platform keys accepted by Normalize.
const (
	PlatformTelegram = "telegram"
	PlatformDiscord  = "discord"
	PlatformTwitter  = "twitter"
	PlatformLinkedIn = "linkedin"
)

// SocialLink is a render-ready social destination.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

var schemeRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

func hasScheme(raw string) bool {
	return schemeRe.MatchString(raw)
}

// Normalize turns a raw handle-or-URL into a clickable URI for the given
// platform. The second return is false when the input is empty or whitespace
// only, meaning no link should be rendered at all.
//
// Inputs that already carry a URI scheme pass through unchanged. Bare values
// are wrapped per platform: telegram → https://t.me/<v>, twitter → leading @
// stripped then https://twitter.com/<v>, discord → the discord deep-link
// template. LinkedIn only gets an https:// prefix; a bare handle is not
// expanded to a profile URL, since the slug shape (in/<name> vs
// company/<name>) is not guessable from the handle alone.
func Normalize(platform, raw string) (string, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", false
	}

	if hasScheme(value) {
		return value, true
	}

	switch platform {
	case PlatformTelegram:
		return "https://t.me/" + value, true
	case PlatformTwitter:
		return "https://twitter.com/" + strings.TrimPrefix(value, "@"), true
	case PlatformDiscord:
		return "discord://-/users/" + value, true
	case PlatformLinkedIn:
		return "https://" + value, true
	default:
		return "", false
	}
}

// FromSocials renders the normalized social links of a profile in fixed
// platform order, suppressing entries that normalize to nothing.
func FromSocials(s models.Socials) []SocialLink {
	pairs := []struct {
		platform string
		raw      string
	}{
		{PlatformTelegram, s.Telegram},
		{PlatformDiscord, s.Discord},
		{PlatformTwitter, s.Twitter},
		{PlatformLinkedIn, s.LinkedIn},
	}

	out := make([]SocialLink, 0, len(pairs))
	for _, p := range pairs {
		if url, ok := Normalize(p.platform, p.raw); ok {
			out = append(out, SocialLink{Platform: p.platform, URL: url})
		}
	}
	return out
}
