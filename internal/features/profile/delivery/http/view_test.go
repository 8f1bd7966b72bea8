package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DruxAMB/based-list/internal/features/profile/models"
)

func TestRenderProfileSuppressesUnusableLinks(t *testing.T) {
	p := models.DefaultProfile("", "")
	p.Links[1].URL = "https://github.com/alice"
	p.AddLink(models.Link{Name: "Blog", URL: "https://blog.example"})
	p.AddLink(models.Link{Name: "No URL", URL: ""})
	p.AddLink(models.Link{Name: "", URL: "https://nameless.example"})

	view := renderProfile("u1", p, "", "")

	// Site has no URL, so only GitHub renders among the default slots.
	require.Len(t, view.DefaultLinks, 1)
	assert.Equal(t, "GitHub", view.DefaultLinks[0].Name)
	assert.Equal(t, "github", view.DefaultLinks[0].Icon)

	// Custom links need both a name and a URL.
	require.Len(t, view.CustomLinks, 1)
	assert.Equal(t, "Blog", view.CustomLinks[0].Name)
}

func TestRenderProfileFallbacks(t *testing.T) {
	p := models.DefaultProfile("", "")

	view := renderProfile("u1", p, "Alice", "https://img.example/a.png")
	assert.Equal(t, "Alice", view.Name)
	assert.Equal(t, "https://img.example/a.png", view.ProfileImage)

	// Public views of other identities have no identity fallback.
	anon := renderProfile("u1", p, "", "")
	assert.Equal(t, "", anon.Name)
	assert.Equal(t, PlaceholderImage, anon.ProfileImage)
}

func TestRenderProfileRoleTags(t *testing.T) {
	p := models.DefaultProfile("", "")
	p.ToggleRole(models.RoleDesigner)
	p.ToggleRole(models.RoleFounder)

	view := renderProfile("u1", p, "", "")

	require.Len(t, view.Roles, 2)
	assert.Equal(t, models.RoleDesigner, view.Roles[0].Role)
	assert.Equal(t, models.RoleColors[models.RoleDesigner], view.Roles[0].Color)
}

func TestRenderProfileNormalizesSocials(t *testing.T) {
	p := models.DefaultProfile("", "")
	p.Socials.Twitter = "@alice"
	p.Socials.Discord = "   "

	view := renderProfile("u1", p, "", "")

	require.Len(t, view.SocialLinks, 1)
	assert.Equal(t, "twitter", view.SocialLinks[0].Platform)
	assert.Equal(t, "https://twitter.com/alice", view.SocialLinks[0].URL)
}
