package http

import (
	"strings"

	"github.com/DruxAMB/based-list/internal/features/profile/links"
	"github.com/DruxAMB/based-list/internal/features/profile/models"
)

// PlaceholderImage is served when neither the profile nor the identity
// provider supplies an avatar.
const PlaceholderImage = "/placeholder.jpg"

var defaultLinkIcons = [models.DefaultLinkCount]string{"globe", "github"}

// RoleTag is a role with its fixed presentation color.
type RoleTag struct {
	Role  models.Role `json:"role"`
	Color string      `json:"color"`
}

// ViewLink is a render-ready link entry.
type ViewLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon,omitempty"`
}

// ProfileView is the read-only rendering of a profile. Links that would not
// be clickable are suppressed here instead of being rejected at write time.
type ProfileView struct {
	UserID       string             `json:"user_id"`
	Name         string             `json:"name"`
	Bio          string             `json:"bio"`
	Roles        []RoleTag          `json:"roles"`
	DefaultLinks []ViewLink         `json:"default_links"`
	SocialLinks  []links.SocialLink `json:"social_links"`
	CustomLinks  []ViewLink         `json:"custom_links"`
	ProfileImage string             `json:"profile_image"`
}

// renderProfile binds a stored profile to its view. fallbackName and
// fallbackImage come from the identity provider when rendering one's own
// profile; they are empty for public views of other identities.
func renderProfile(userID string, p models.Profile, fallbackName, fallbackImage string) ProfileView {
	view := ProfileView{
		UserID:       userID,
		Name:         p.Name,
		Bio:          p.Bio,
		Roles:        make([]RoleTag, 0, len(p.Roles)),
		DefaultLinks: make([]ViewLink, 0, models.DefaultLinkCount),
		SocialLinks:  links.FromSocials(p.Socials),
		CustomLinks:  []ViewLink{},
		ProfileImage: p.ProfileImage,
	}

	if view.Name == "" {
		view.Name = fallbackName
	}
	if view.ProfileImage == "" {
		view.ProfileImage = fallbackImage
	}
	if view.ProfileImage == "" {
		view.ProfileImage = PlaceholderImage
	}

	for _, role := range p.Roles {
		view.Roles = append(view.Roles, RoleTag{Role: role, Color: role.Color()})
	}

	for i, link := range p.Links {
		if i < models.DefaultLinkCount {
			if strings.TrimSpace(link.URL) != "" {
				view.DefaultLinks = append(view.DefaultLinks, ViewLink{
					Name: link.Name,
					URL:  link.URL,
					Icon: defaultLinkIcons[i],
				})
			}
			continue
		}
		// User-added links need both a name and a URL to render.
		if strings.TrimSpace(link.Name) != "" && strings.TrimSpace(link.URL) != "" {
			view.CustomLinks = append(view.CustomLinks, ViewLink{Name: link.Name, URL: link.URL})
		}
	}

	return view
}
