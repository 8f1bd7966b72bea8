package session

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DruxAMB/based-list/internal/features/profile/models"
	"github.com/DruxAMB/based-list/internal/identity"
)

type fakeProfiles struct {
	stored     *models.Profile
	replaceErr error
	replaced   int
}

func (f *fakeProfiles) Get(ctx context.Context, userID string) (*models.Profile, error) {
	if f.stored == nil {
		return nil, errors.New("not found")
	}
	p := f.stored.Clone()
	return &p, nil
}

func (f *fakeProfiles) GetOrCreate(ctx context.Context, ident identity.CurrentIdentity) (*models.Profile, bool, error) {
	if f.stored == nil {
		seed := models.DefaultProfile(ident.FirstName, ident.ImageURL)
		f.stored = &seed
	}
	p := f.stored.Clone()
	return &p, false, nil
}

func (f *fakeProfiles) Replace(ctx context.Context, userID string, profile models.Profile) (*models.Profile, error) {
	f.replaced++
	if f.replaceErr != nil {
		return nil, f.replaceErr
	}
	stored := profile.Clone()
	f.stored = &stored
	out := stored.Clone()
	return &out, nil
}

type fakeUploader struct {
	url     string
	err     error
	release chan struct{}
}

func (u *fakeUploader) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	if u.release != nil {
		<-u.release
	}
	return u.url, u.err
}

func newTestSession(t *testing.T, uploader Uploader) (*Session, *fakeProfiles) {
	t.Helper()
	profiles := &fakeProfiles{}
	ident := identity.CurrentIdentity{UserID: "u1", FirstName: "Alice"}
	committed := models.DefaultProfile("Alice", "")
	stored := committed.Clone()
	profiles.stored = &stored
	return New(ident, committed, profiles, uploader), profiles
}

func TestBeginEditCopiesOnWrite(t *testing.T) {
	sess, _ := newTestSession(t, nil)

	require.NoError(t, sess.BeginEdit())
	require.NoError(t, sess.SetName("Mallory"))
	require.NoError(t, sess.SetBio("rewritten"))

	// Committed value is untouched until commit.
	committed := sess.Committed()
	assert.Equal(t, "Alice", committed.Name)
	assert.Equal(t, "", committed.Bio)

	snap := sess.Snapshot()
	assert.Equal(t, StateEditing, snap.State)
	assert.Equal(t, "Mallory", snap.Profile.Name)
}

func TestBeginEditTwiceRejected(t *testing.T) {
	sess, _ := newTestSession(t, nil)

	require.NoError(t, sess.BeginEdit())
	assert.ErrorIs(t, sess.BeginEdit(), ErrAlreadyEditing)
}

func TestMutationsRequireEditing(t *testing.T) {
	sess, _ := newTestSession(t, nil)

	assert.ErrorIs(t, sess.SetName("x"), ErrNotEditing)
	assert.ErrorIs(t, sess.ToggleRole(models.RoleDeveloper), ErrNotEditing)
	assert.ErrorIs(t, sess.Discard(), ErrNotEditing)

	_, err := sess.Commit(context.Background())
	assert.ErrorIs(t, err, ErrNotEditing)
}

func TestDiscardRestoresPreEditValue(t *testing.T) {
	sess, _ := newTestSession(t, nil)
	before := sess.Committed()

	require.NoError(t, sess.BeginEdit())
	require.NoError(t, sess.SetName("Mallory"))
	require.NoError(t, sess.SetBio("temp"))
	require.NoError(t, sess.SetSocial("twitter", "@mallory"))
	require.NoError(t, sess.AddLink(models.Link{Name: "Blog", URL: "https://blog.example"}))
	require.NoError(t, sess.ToggleRole(models.RoleFounder))

	require.NoError(t, sess.Discard())

	after := sess.Committed()
	assert.True(t, before.Equal(after))

	snap := sess.Snapshot()
	assert.Equal(t, StateViewing, snap.State)
	assert.True(t, before.Equal(snap.Profile))
}

func TestCommitSuccessReplacesCommitted(t *testing.T) {
	sess, profiles := newTestSession(t, nil)

	require.NoError(t, sess.BeginEdit())
	require.NoError(t, sess.SetName("Mallory"))
	require.NoError(t, sess.AddLink(models.Link{Name: "Blog", URL: "https://blog.example"}))

	committed, err := sess.Commit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Mallory", committed.Name)
	assert.Equal(t, 1, profiles.replaced)
	assert.Equal(t, StateViewing, sess.Snapshot().State)

	// The store received exactly the draft that was sent.
	assert.True(t, committed.Equal(*profiles.stored))
}

func TestCommitFailurePreservesDraftAndEditing(t *testing.T) {
	sess, profiles := newTestSession(t, nil)
	before := sess.Committed()
	profiles.replaceErr = errors.New("store down")

	require.NoError(t, sess.BeginEdit())
	require.NoError(t, sess.SetName("Mallory"))

	_, err := sess.Commit(context.Background())
	require.Error(t, err)

	// Committed stays at the pre-edit value, the draft and EDITING survive.
	assert.True(t, before.Equal(sess.Committed()))
	snap := sess.Snapshot()
	assert.Equal(t, StateEditing, snap.State)
	assert.Equal(t, "Mallory", snap.Profile.Name)

	// Retrying the user action succeeds once the store recovers.
	profiles.replaceErr = nil
	_, err = sess.Commit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Mallory", sess.Committed().Name)
}

func TestRemoveLinkInvariantThroughSession(t *testing.T) {
	sess, _ := newTestSession(t, nil)

	require.NoError(t, sess.BeginEdit())
	require.NoError(t, sess.AddLink(models.Link{Name: "A", URL: "https://a.example"}))
	require.NoError(t, sess.AddLink(models.Link{Name: "B", URL: "https://b.example"}))

	require.NoError(t, sess.RemoveLink(2))
	assert.Error(t, sess.RemoveLink(0))
	assert.Error(t, sess.RemoveLink(1))

	snap := sess.Snapshot()
	require.Len(t, snap.Profile.Links, 3)
	assert.Equal(t, "B", snap.Profile.Links[2].Name)
}

func TestUploadSuccessUpdatesDraftImage(t *testing.T) {
	uploader := &fakeUploader{url: "https://cdn.example/new.png"}
	sess, _ := newTestSession(t, uploader)

	require.NoError(t, sess.BeginEdit())

	url, err := sess.UploadImage(context.Background(), "avatar.png", strings.NewReader("bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/new.png", url)

	snap := sess.Snapshot()
	assert.Equal(t, StateEditing, snap.State)
	assert.False(t, snap.Uploading)
	assert.Equal(t, "https://cdn.example/new.png", snap.Profile.ProfileImage)
}

func TestUploadFailureLeavesDraftUntouched(t *testing.T) {
	uploader := &fakeUploader{err: errors.New("upload down")}
	sess, _ := newTestSession(t, uploader)

	require.NoError(t, sess.BeginEdit())
	draftBefore := sess.Snapshot().Profile

	_, err := sess.UploadImage(context.Background(), "avatar.png", strings.NewReader("bytes"))
	require.Error(t, err)

	snap := sess.Snapshot()
	assert.Equal(t, StateEditing, snap.State)
	assert.False(t, snap.Uploading)
	assert.True(t, draftBefore.Equal(snap.Profile))
}

func TestUploadRequiresEditing(t *testing.T) {
	uploader := &fakeUploader{url: "https://cdn.example/new.png"}
	sess, _ := newTestSession(t, uploader)

	_, err := sess.UploadImage(context.Background(), "avatar.png", strings.NewReader("bytes"))
	assert.ErrorIs(t, err, ErrNotEditing)
}

func TestUploadCompletingAfterDiscardIsDropped(t *testing.T) {
	uploader := &fakeUploader{url: "https://cdn.example/late.png", release: make(chan struct{})}
	sess, _ := newTestSession(t, uploader)

	require.NoError(t, sess.BeginEdit())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = sess.UploadImage(context.Background(), "avatar.png", strings.NewReader("bytes"))
	}()

	require.NoError(t, sess.Discard())
	close(uploader.release)
	<-done

	// The late result never reaches the committed profile.
	assert.Equal(t, "", sess.Committed().ProfileImage)
	assert.Equal(t, StateViewing, sess.Snapshot().State)
}

func TestConcurrentUploadRejected(t *testing.T) {
	uploader := &fakeUploader{url: "https://cdn.example/a.png", release: make(chan struct{})}
	sess, _ := newTestSession(t, uploader)

	require.NoError(t, sess.BeginEdit())

	started := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		close(started)
		_, _ = sess.UploadImage(context.Background(), "a.png", strings.NewReader("bytes"))
	}()

	<-started
	// Wait until the first upload has claimed the flag.
	for !sess.Snapshot().Uploading {
		time.Sleep(time.Millisecond)
	}

	_, err := sess.UploadImage(context.Background(), "b.png", strings.NewReader("bytes"))
	assert.ErrorIs(t, err, ErrUploadInFlight)

	close(uploader.release)
	<-done
}
