// Package usecase orchestrates the rendering pipeline: lookup, composition,
// rasterization and counter updates. Rendering is one-shot and synchronous;
// there are no retries and no cross-request state.
package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"resume-builder/internal/composer"
	"resume-builder/internal/domain"
	"resume-builder/pkg/storage/object"

	"github.com/google/uuid"
)

type Delivery struct {
	renderer Renderer
	store    ResumeStore
	objects  object.ObjectStore
	log      *slog.Logger
}

func NewDelivery(r Renderer, store ResumeStore, objects object.ObjectStore, log *slog.Logger) *Delivery {
	if log == nil {
		log = slog.Default()
	}
	return &Delivery{renderer: r, store: store, objects: objects, log: log}
}

// Download runs the direct-download flow: fetch the resume scoped to the
// requesting user, render it, then increment the counters. Any failure before
// the counters leaves them untouched.
func (d *Delivery) Download(ctx context.Context, userID, resumeID uuid.UUID, templateOverride string) (*RenderResult, error) {
	doc, err := d.store.GetForUser(ctx, resumeID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrResumeNotFound) {
			return nil, err
		}
		d.log.Error("resume lookup failed", "resume_id", resumeID, "err", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}

	req := RenderRequest{
		Document: *doc,
		Template: EffectiveTemplate(templateOverride, doc.SelectedTemplate),
	}
	result, err := d.render(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := d.store.IncrementDownloadCounters(ctx, resumeID, userID); err != nil {
		// the PDF was built; losing an analytics increment is not worth
		// failing the download
		d.log.Warn("counter increment failed", "resume_id", resumeID, "err", err)
	}
	d.notifyDownloaded(ctx, req)

	return result, nil
}

// Preview renders the resume, persists the PDF to blob storage and returns a
// durable URL. Counters are not incremented: a preview is not a delivered
// download.
func (d *Delivery) Preview(ctx context.Context, userID, resumeID uuid.UUID, templateOverride string) (*PreviewResult, error) {
	doc, err := d.store.GetForUser(ctx, resumeID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrResumeNotFound) {
			return nil, err
		}
		d.log.Error("resume lookup failed", "resume_id", resumeID, "err", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}

	req := RenderRequest{
		Document: *doc,
		Template: EffectiveTemplate(templateOverride, doc.SelectedTemplate),
	}
	result, err := d.render(ctx, req)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("previews/%s/%s_%s.pdf", userID, resumeID, req.Template)
	if _, err := d.objects.Save(ctx, key, "application/pdf", bytes.NewReader(result.PDF)); err != nil {
		d.log.Error("preview upload failed", "resume_id", resumeID, "err", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}
	url, err := d.objects.URL(ctx, key)
	if err != nil {
		d.log.Error("preview url failed", "resume_id", resumeID, "err", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}
	return &PreviewResult{Key: key, URL: url}, nil
}

// render composes and rasterizes a snapshot. The whole buffer is built in
// memory before any byte reaches the caller.
func (d *Delivery) render(ctx context.Context, req RenderRequest) (*RenderResult, error) {
	html := composer.Compose(req.Document, req.Template)

	pdf, err := d.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		d.log.Error("pdf rasterization failed",
			"resume_id", req.Document.ID, "template", req.Template, "err", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}

	return &RenderResult{PDF: pdf, Filename: Filename(req.Document, req.Template)}, nil
}

// notifyDownloaded records the activity notification. Best-effort: a failed
// insert never fails a delivered render.
func (d *Delivery) notifyDownloaded(ctx context.Context, req RenderRequest) {
	n := &domain.Notification{
		ID:        uuid.New(),
		UserID:    req.Document.UserID,
		Type:      domain.NotificationResumeDownloaded,
		Message:   fmt.Sprintf("Your resume was downloaded as PDF (%s template).", req.Template),
		CreatedAt: time.Now().UTC(),
	}
	if err := d.store.SaveNotification(ctx, n); err != nil {
		d.log.Warn("notification insert failed", "user_id", n.UserID, "err", err)
	}
}
