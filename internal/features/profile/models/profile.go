package models

import "fmt"

// DefaultLinkCount is the number of seeded link slots. The first two entries
// (Site, GitHub) are permanent: their names and URLs may be edited but the
// slots themselves cannot be removed.
const DefaultLinkCount = 2

// Link is a named destination on a profile.
type Link struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Socials holds per-platform handles or full URLs, each independently
// optional. Values are stored exactly as typed; normalization into clickable
// URIs happens only at render time.
type Socials struct {
	Telegram string `json:"telegram"`
	Discord  string `json:"discord"`
	Twitter  string `json:"twitter"`
	LinkedIn string `json:"linkedin"`
}

// Profile is the stored profile document, one per identity. All string
// fields default to empty, never absent, so comparison and serialization
// stay total.
type Profile struct {
	Name         string  `json:"name"`
	Bio          string  `json:"bio"`
	Roles        []Role  `json:"roles"`
	Links        []Link  `json:"links"`
	Socials      Socials `json:"socials"`
	ProfileImage string  `json:"profileImage"`
}

// DefaultProfile returns the seed value used for lazy first-visit creation.
// Name and image come from the identity provider when known.
func DefaultProfile(name, imageURL string) Profile {
	return Profile{
		Name: name,
		Bio:  "",
		Links: []Link{
			{Name: "Site", URL: ""},
			{Name: "GitHub", URL: ""},
		},
		Roles:        []Role{},
		ProfileImage: imageURL,
	}
}

// Clone returns an independent deep copy. Edit sessions mutate clones only;
// the committed profile is never shared with a draft.
func (p Profile) Clone() Profile {
	out := p
	out.Links = make([]Link, len(p.Links))
	copy(out.Links, p.Links)
	out.Roles = make([]Role, len(p.Roles))
	copy(out.Roles, p.Roles)
	return out
}

// Equal compares two profiles field for field.
func (p Profile) Equal(other Profile) bool {
	if p.Name != other.Name || p.Bio != other.Bio ||
		p.Socials != other.Socials || p.ProfileImage != other.ProfileImage {
		return false
	}
	if len(p.Links) != len(other.Links) || len(p.Roles) != len(other.Roles) {
		return false
	}
	for i := range p.Links {
		if p.Links[i] != other.Links[i] {
			return false
		}
	}
	for i := range p.Roles {
		if p.Roles[i] != other.Roles[i] {
			return false
		}
	}
	return true
}

// Normalize repairs a document read from the store so the invariants hold:
// the two default link slots always exist and roles carry no duplicates.
func (p *Profile) Normalize() {
	for len(p.Links) < DefaultLinkCount {
		name := "Site"
		if len(p.Links) == 1 {
			name = "GitHub"
		}
		p.Links = append(p.Links, Link{Name: name})
	}
	if p.Roles == nil {
		p.Roles = []Role{}
	}

	seen := make(map[Role]struct{}, len(p.Roles))
	roles := p.Roles[:0]
	for _, r := range p.Roles {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		roles = append(roles, r)
	}
	p.Roles = roles
}

// AddLink appends a user-added link slot.
func (p *Profile) AddLink(link Link) {
	p.Links = append(p.Links, link)
}

// RemoveLink removes the link at index, preserving the order of the rest.
// The two default slots are not removable.
func (p *Profile) RemoveLink(index int) error {
	if index < DefaultLinkCount {
		return fmt.Errorf("link %d is a default slot and cannot be removed", index)
	}
	if index >= len(p.Links) {
		return fmt.Errorf("link index %d out of range", index)
	}
	p.Links = append(p.Links[:index], p.Links[index+1:]...)
	return nil
}

// SetLinkName renames the link at index.
func (p *Profile) SetLinkName(index int, name string) error {
	if index < 0 || index >= len(p.Links) {
		return fmt.Errorf("link index %d out of range", index)
	}
	p.Links[index].Name = name
	return nil
}

// SetLinkURL updates the URL of the link at index.
func (p *Profile) SetLinkURL(index int, url string) error {
	if index < 0 || index >= len(p.Links) {
		return fmt.Errorf("link index %d out of range", index)
	}
	p.Links[index].URL = url
	return nil
}

// ToggleRole adds the role when absent and removes it when present.
// Membership order is insertion order.
func (p *Profile) ToggleRole(role Role) {
	for i, r := range p.Roles {
		if r == role {
			p.Roles = append(p.Roles[:i], p.Roles[i+1:]...)
			return
		}
	}
	p.Roles = append(p.Roles, role)
}

// HasRole reports membership of role in the tag set.
func (p Profile) HasRole(role Role) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// SetSocial updates one social platform value by key. Unknown platforms are
// rejected so typos never silently drop input.
func (p *Profile) SetSocial(platform, value string) error {
	switch platform {
	case "telegram":
		p.Socials.Telegram = value
	case "discord":
		p.Socials.Discord = value
	case "twitter":
		p.Socials.Twitter = value
	case "linkedin":
		p.Socials.LinkedIn = value
	default:
		return fmt.Errorf("unknown social platform: %s", platform)
	}
	return nil
}
