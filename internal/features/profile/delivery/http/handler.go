package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/DruxAMB/based-list/internal/common/errors"
	"github.com/DruxAMB/based-list/internal/common/middleware"
	"github.com/DruxAMB/based-list/internal/features/profile/models"
	"github.com/DruxAMB/based-list/internal/features/profile/service"
	"github.com/DruxAMB/based-list/internal/features/profile/session"
)

type ProfileHandler struct {
	profiles service.ProfileService
	sessions *session.Manager
	origin   string
}

func NewProfileHandler(profiles service.ProfileService, sessions *session.Manager, origin string) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
		sessions: sessions,
		origin:   origin,
	}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/builders/:userId", h.GetBuilder)

	me := router.Group("/profile/me")
	me.Use(middleware.RequireAuth())
	{
		me.GET("", h.getMe)
		me.GET("/share", h.getShareURL)
		me.POST("/session", h.beginEdit)
		me.GET("/session", h.getSession)
		me.PATCH("/session", h.mutateDraft)
		me.DELETE("/session", h.discardEdit)
		me.POST("/session/commit", h.commitEdit)
		me.POST("/session/image", h.uploadImage)
	}
}

// MeResponse is the authenticated profile view plus edit-session state.
type MeResponse struct {
	Profile  ProfileView   `json:"profile"`
	State    session.State `json:"state"`
	Degraded bool          `json:"degraded,omitempty"`
}

// MutationRequest applies one draft operation.
type MutationRequest struct {
	Op       string       `json:"op" binding:"required" enums:"set_name,set_bio,set_social,set_link_name,set_link_url,add_link,remove_link,toggle_role"`
	Value    string       `json:"value,omitempty"`
	Platform string       `json:"platform,omitempty"`
	Index    *int         `json:"index,omitempty"`
	Link     *models.Link `json:"link,omitempty"`
	Role     models.Role  `json:"role,omitempty"`
}

// ShareResponse carries the canonical public URL of a profile.
type ShareResponse struct {
	ShareURL string `json:"share_url"`
}

// @Summary Get a builder's public profile
// @Description Read-only profile view with normalized social links. Links without a usable destination are omitted rather than rendered broken.
// @Tags builders
// @Produce json
// @Param userId path string true "Identity ID"
// @Success 200 {object} ProfileView "Profile view"
// @Failure 404 {object} middleware.ErrorResponse "Profile not found"
// @Failure 502 {object} middleware.ErrorResponse "Document store unavailable"
// @Router /builders/{userId} [get]
func (h *ProfileHandler) GetBuilder(c *gin.Context) {
	userID := c.Param("userId")

	profile, err := h.profiles.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.Error(apperrors.NewProfileNotFoundError(userID))
			c.Abort()
			return
		}
		c.Error(apperrors.NewStoreError("fetch", err))
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, renderProfile(userID, *profile, "", ""))
}

// @Summary Get own profile
// @Description Resolve the signed-in identity's profile, creating it with seeded defaults on first visit. Store failures degrade to defaults instead of blocking the view.
// @Tags profile
// @Produce json
// @Security SessionToken
// @Success 200 {object} MeResponse "Profile and edit state"
// @Failure 401 {object} middleware.ErrorResponse "Not signed in"
// @Router /profile/me [get]
func (h *ProfileHandler) getMe(c *gin.Context) {
	ident, _ := middleware.Identity(c)

	sess, degraded, err := h.sessions.Session(c.Request.Context(), ident)
	if err != nil {
		c.Error(apperrors.NewStoreError("fetch", err))
		c.Abort()
		return
	}

	snap := sess.Snapshot()
	c.JSON(http.StatusOK, MeResponse{
		Profile:  renderProfile(ident.UserID, snap.Profile, ident.FirstName, ident.ImageURL),
		State:    snap.State,
		Degraded: degraded,
	})
}

// @Summary Get profile share URL
// @Tags profile
// @Produce json
// @Security SessionToken
// @Success 200 {object} ShareResponse
// @Failure 401 {object} middleware.ErrorResponse "Not signed in"
// @Router /profile/me/share [get]
func (h *ProfileHandler) getShareURL(c *gin.Context) {
	ident, _ := middleware.Identity(c)
	c.JSON(http.StatusOK, ShareResponse{
		ShareURL: fmt.Sprintf("%s/profile/%s", h.origin, ident.UserID),
	})
}

// @Summary Begin an edit session
// @Description Enter EDITING: the committed profile is deep-copied into a draft. Mutations from here on touch the draft only.
// @Tags profile
// @Produce json
// @Security SessionToken
// @Success 200 {object} session.Snapshot "Draft state"
// @Failure 401 {object} middleware.ErrorResponse "Not signed in"
// @Failure 409 {object} middleware.ErrorResponse "Already editing"
// @Router /profile/me/session [post]
func (h *ProfileHandler) beginEdit(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	if err := sess.BeginEdit(); err != nil {
		c.Error(apperrors.NewSessionStateError(err.Error()))
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, sess.Snapshot())
}

// @Summary Get edit session state
// @Tags profile
// @Produce json
// @Security SessionToken
// @Success 200 {object} session.Snapshot "Current state, draft and upload flag"
// @Failure 401 {object} middleware.ErrorResponse "Not signed in"
// @Router /profile/me/session [get]
func (h *ProfileHandler) getSession(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sess.Snapshot())
}

// @Summary Apply a draft mutation
// @Description Apply one field mutation to the draft. No network write happens here; only commit persists the draft.
// @Tags profile
// @Accept json
// @Produce json
// @Security SessionToken
// @Param mutation body MutationRequest true "Mutation"
// @Success 200 {object} session.Snapshot "Updated draft"
// @Failure 400 {object} middleware.ErrorResponse "Invalid mutation"
// @Failure 401 {object} middleware.ErrorResponse "Not signed in"
// @Failure 409 {object} middleware.ErrorResponse "Not editing"
// @Router /profile/me/session [patch]
func (h *ProfileHandler) mutateDraft(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var req MutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "Invalid mutation payload"))
		c.Abort()
		return
	}

	if err := applyMutation(sess, req); err != nil {
		if errors.Is(err, session.ErrNotEditing) {
			c.Error(apperrors.NewSessionStateError(err.Error()))
		} else {
			c.Error(apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "Mutation rejected"))
		}
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, sess.Snapshot())
}

// @Summary Discard the edit session
// @Description Drop the draft and return to VIEWING. Immediate and irreversible for unsaved edits.
// @Tags profile
// @Produce json
// @Security SessionToken
// @Success 200 {object} session.Snapshot "Committed profile restored"
// @Failure 401 {object} middleware.ErrorResponse "Not signed in"
// @Failure 409 {object} middleware.ErrorResponse "Not editing"
// @Router /profile/me/session [delete]
func (h *ProfileHandler) discardEdit(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	if err := sess.Discard(); err != nil {
		c.Error(apperrors.NewSessionStateError(err.Error()))
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, sess.Snapshot())
}

// @Summary Commit the edit session
// @Description Replace the stored profile with the full draft. On failure the draft and EDITING state are preserved.
// @Tags profile
// @Produce json
// @Security SessionToken
// @Success 200 {object} session.Snapshot "New committed profile"
// @Failure 401 {object} middleware.ErrorResponse "Not signed in"
// @Failure 409 {object} middleware.ErrorResponse "Not editing"
// @Failure 502 {object} middleware.ErrorResponse "Document store unavailable"
// @Router /profile/me/session/commit [post]
func (h *ProfileHandler) commitEdit(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	if _, err := sess.Commit(c.Request.Context()); err != nil {
		if errors.Is(err, session.ErrNotEditing) {
			c.Error(apperrors.NewSessionStateError(err.Error()))
		} else {
			c.Error(apperrors.NewStoreError("replace", err))
		}
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, sess.Snapshot())
}

// @Summary Upload a profile image
// @Description Forward a single file to the upload endpoint. On success the draft's image is updated in place; on failure the draft is untouched.
// @Tags profile
// @Accept mpfd
// @Produce json
// @Security SessionToken
// @Param file formData file true "Image file"
// @Success 200 {object} session.Snapshot "Draft with updated image"
// @Failure 400 {object} middleware.ErrorResponse "Missing file"
// @Failure 401 {object} middleware.ErrorResponse "Not signed in"
// @Failure 409 {object} middleware.ErrorResponse "Not editing or upload in flight"
// @Failure 502 {object} middleware.ErrorResponse "Upload endpoint unavailable"
// @Router /profile/me/session/image [post]
func (h *ProfileHandler) uploadImage(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "Missing file upload"))
		c.Abort()
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "Unreadable file upload"))
		c.Abort()
		return
	}
	defer file.Close()

	if _, err := sess.UploadImage(c.Request.Context(), fileHeader.Filename, file); err != nil {
		switch {
		case errors.Is(err, session.ErrNotEditing), errors.Is(err, session.ErrUploadInFlight):
			c.Error(apperrors.NewSessionStateError(err.Error()))
		default:
			c.Error(apperrors.NewUploadError(err))
		}
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, sess.Snapshot())
}

func (h *ProfileHandler) session(c *gin.Context) (*session.Session, bool) {
	ident, _ := middleware.Identity(c)

	sess, degraded, err := h.sessions.Session(c.Request.Context(), ident)
	if err != nil {
		c.Error(apperrors.NewStoreError("fetch", err))
		c.Abort()
		return nil, false
	}
	if degraded {
		// A degraded session backs an unpersisted default and is not
		// retained, so edits on it would evaporate. Surface the store
		// failure instead of accepting work that cannot be committed.
		c.Error(apperrors.NewStoreError("fetch", errors.New("profile store unavailable, editing disabled")))
		c.Abort()
		return nil, false
	}
	return sess, true
}

func applyMutation(sess *session.Session, req MutationRequest) error {
	switch req.Op {
	case "set_name":
		return sess.SetName(req.Value)
	case "set_bio":
		return sess.SetBio(req.Value)
	case "set_social":
		return sess.SetSocial(req.Platform, req.Value)
	case "set_link_name":
		if req.Index == nil {
			return fmt.Errorf("set_link_name requires index")
		}
		return sess.SetLinkName(*req.Index, req.Value)
	case "set_link_url":
		if req.Index == nil {
			return fmt.Errorf("set_link_url requires index")
		}
		return sess.SetLinkURL(*req.Index, req.Value)
	case "add_link":
		link := models.Link{}
		if req.Link != nil {
			link = *req.Link
		}
		return sess.AddLink(link)
	case "remove_link":
		if req.Index == nil {
			return fmt.Errorf("remove_link requires index")
		}
		return sess.RemoveLink(*req.Index)
	case "toggle_role":
		return sess.ToggleRole(req.Role)
	default:
		return fmt.Errorf("unknown mutation op: %s", req.Op)
	}
}
