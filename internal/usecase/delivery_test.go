package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"resume-builder/internal/domain"
	"resume-builder/internal/template"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	calls int
	fail  error
	html  []string
}

func (f *fakeRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	f.calls++
	f.html = append(f.html, html)
	if f.fail != nil {
		return nil, f.fail
	}
	return []byte("%PDF-1.4 fake"), nil
}

type fakeStore struct {
	docs          map[uuid.UUID]*domain.ResumeDocument
	increments    int
	notifications []*domain.Notification
	incrementErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: map[uuid.UUID]*domain.ResumeDocument{}}
}

func (f *fakeStore) GetForUser(ctx context.Context, resumeID, userID uuid.UUID) (*domain.ResumeDocument, error) {
	doc, ok := f.docs[resumeID]
	if !ok || doc.UserID != userID {
		return nil, domain.ErrResumeNotFound
	}
	cp := *doc
	return &cp, nil
}

func (f *fakeStore) IncrementDownloadCounters(ctx context.Context, resumeID, userID uuid.UUID) error {
	if f.incrementErr != nil {
		return f.incrementErr
	}
	f.increments++
	return nil
}

func (f *fakeStore) SaveNotification(ctx context.Context, n *domain.Notification) error {
	f.notifications = append(f.notifications, n)
	return nil
}

type fakeObjects struct {
	saved map[string][]byte
}

func (f *fakeObjects) Save(ctx context.Context, key, contentType string, r io.Reader) (int64, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	if f.saved == nil {
		f.saved = map[string][]byte{}
	}
	f.saved[key] = b
	return int64(len(b)), nil
}

func (f *fakeObjects) URL(ctx context.Context, key string) (string, error) {
	return "http://files.local/" + key, nil
}

func testResume(userID uuid.UUID) *domain.ResumeDocument {
	return &domain.ResumeDocument{
		ID:     uuid.New(),
		UserID: userID,
		PersonalInfo: domain.PersonalInfo{
			FullName: "Jane Doe",
			Email:    "jane@x.com",
		},
		SelectedTemplate: "minimal",
	}
}

func TestDownloadHappyPath(t *testing.T) {
	userID := uuid.New()
	doc := testResume(userID)
	store := newFakeStore()
	store.docs[doc.ID] = doc
	renderer := &fakeRenderer{}
	d := NewDelivery(renderer, store, nil, nil)

	res, err := d.Download(context.Background(), userID, doc.ID, "")
	require.NoError(t, err)
	require.Equal(t, "Jane Doe_minimal.pdf", res.Filename)
	require.True(t, strings.HasPrefix(string(res.PDF), "%PDF"))
	require.Equal(t, 1, store.increments)
	require.Len(t, store.notifications, 1)
	require.Equal(t, domain.NotificationResumeDownloaded, store.notifications[0].Type)
}

func TestDownloadIncrementsOncePerCall(t *testing.T) {
	userID := uuid.New()
	doc := testResume(userID)
	store := newFakeStore()
	store.docs[doc.ID] = doc
	d := NewDelivery(&fakeRenderer{}, store, nil, nil)

	_, err := d.Download(context.Background(), userID, doc.ID, "")
	require.NoError(t, err)
	_, err = d.Download(context.Background(), userID, doc.ID, "")
	require.NoError(t, err)
	require.Equal(t, 2, store.increments)
}

func TestDownloadTemplateOverride(t *testing.T) {
	userID := uuid.New()
	doc := testResume(userID)
	store := newFakeStore()
	store.docs[doc.ID] = doc
	d := NewDelivery(&fakeRenderer{}, store, nil, nil)

	res, err := d.Download(context.Background(), userID, doc.ID, "classic")
	require.NoError(t, err)
	require.Equal(t, "Jane Doe_classic.pdf", res.Filename)
}

func TestDownloadUnknownStoredTemplateFallsBackToModern(t *testing.T) {
	userID := uuid.New()
	doc := testResume(userID)
	doc.SelectedTemplate = "ancient-scroll"
	store := newFakeStore()
	store.docs[doc.ID] = doc
	d := NewDelivery(&fakeRenderer{}, store, nil, nil)

	res, err := d.Download(context.Background(), userID, doc.ID, "")
	require.NoError(t, err)
	require.Equal(t, "Jane Doe_modern.pdf", res.Filename)
}

func TestDownloadCrossUserIsNotFound(t *testing.T) {
	owner := uuid.New()
	doc := testResume(owner)
	store := newFakeStore()
	store.docs[doc.ID] = doc
	renderer := &fakeRenderer{}
	d := NewDelivery(renderer, store, nil, nil)

	other := uuid.New()
	res, err := d.Download(context.Background(), other, doc.ID, "")
	require.ErrorIs(t, err, domain.ErrResumeNotFound)
	require.Nil(t, res)
	require.Zero(t, store.increments)
	require.Zero(t, renderer.calls)
}

func TestDownloadRenderFailureNoIncrement(t *testing.T) {
	userID := uuid.New()
	doc := testResume(userID)
	store := newFakeStore()
	store.docs[doc.ID] = doc
	renderer := &fakeRenderer{fail: errors.New("chrome: executable not found")}
	d := NewDelivery(renderer, store, nil, nil)

	res, err := d.Download(context.Background(), userID, doc.ID, "")
	require.ErrorIs(t, err, domain.ErrRenderFailed)
	require.Nil(t, res)
	require.Zero(t, store.increments)
	require.Empty(t, store.notifications)
}

func TestDownloadSurvivesCounterFailure(t *testing.T) {
	userID := uuid.New()
	doc := testResume(userID)
	store := newFakeStore()
	store.docs[doc.ID] = doc
	store.incrementErr = errors.New("db down")
	d := NewDelivery(&fakeRenderer{}, store, nil, nil)

	res, err := d.Download(context.Background(), userID, doc.ID, "")
	require.NoError(t, err)
	require.NotNil(t, res)
}

func TestPreviewStoresPDFWithoutIncrement(t *testing.T) {
	userID := uuid.New()
	doc := testResume(userID)
	store := newFakeStore()
	store.docs[doc.ID] = doc
	objects := &fakeObjects{}
	d := NewDelivery(&fakeRenderer{}, store, objects, nil)

	res, err := d.Preview(context.Background(), userID, doc.ID, "")
	require.NoError(t, err)
	require.Contains(t, res.Key, doc.ID.String())
	require.Equal(t, "http://files.local/"+res.Key, res.URL)
	require.True(t, strings.HasPrefix(string(objects.saved[res.Key]), "%PDF"))
	require.Zero(t, store.increments)
}

func TestEffectiveTemplate(t *testing.T) {
	tests := []struct {
		name     string
		override string
		stored   string
		want     template.Kind
	}{
		{"override wins", "classic", "minimal", template.KindClassic},
		{"stored when no override", "", "creative", template.KindCreative},
		{"modern when both empty", "", "", template.KindModern},
		{"unknown override falls back", "ancient-scroll", "minimal", template.KindModern},
		{"unknown stored falls back", "", "ancient-scroll", template.KindModern},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, EffectiveTemplate(tt.override, tt.stored))
		})
	}
}

func TestFilename(t *testing.T) {
	doc := domain.ResumeDocument{}
	require.Equal(t, "resume_modern.pdf", Filename(doc, template.KindModern))

	doc.PersonalInfo.FullName = "Jane Doe"
	require.Equal(t, "Jane Doe_minimal.pdf", Filename(doc, template.KindMinimal))
}
