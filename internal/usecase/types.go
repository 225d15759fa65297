package usecase

import (
	"context"
	"fmt"
	"strings"

	"resume-builder/internal/domain"
	"resume-builder/internal/template"

	"github.com/google/uuid"
)

// Renderer rasterizes a composed HTML document to PDF bytes.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// ResumeStore is the lookup/counter collaborator backing the pipeline.
type ResumeStore interface {
	GetForUser(ctx context.Context, resumeID, userID uuid.UUID) (*domain.ResumeDocument, error)
	IncrementDownloadCounters(ctx context.Context, resumeID, userID uuid.UUID) error
	SaveNotification(ctx context.Context, n *domain.Notification) error
}

// RenderRequest is the ephemeral input of one render: a snapshot of the
// resume and the effective template, already resolved from the override and
// the stored value.
type RenderRequest struct {
	Document domain.ResumeDocument
	Template template.Kind
}

// RenderResult is the ephemeral output: the full PDF buffer and the filename
// derived from the person's name and the template.
type RenderResult struct {
	PDF      []byte
	Filename string
}

// PreviewResult points at a PDF persisted to blob storage.
type PreviewResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// EffectiveTemplate resolves the template for a render: explicit override
// first, then the resume's stored selection, then modern.
func EffectiveTemplate(override, stored string) template.Kind {
	if strings.TrimSpace(override) != "" {
		return template.ParseKind(override)
	}
	if strings.TrimSpace(stored) != "" {
		return template.ParseKind(stored)
	}
	return template.KindModern
}

// Filename builds "<PersonName>_<template>.pdf", falling back to "resume"
// when the name is empty.
func Filename(doc domain.ResumeDocument, kind template.Kind) string {
	name := strings.TrimSpace(doc.PersonalInfo.FullName)
	if name == "" {
		name = "resume"
	}
	return fmt.Sprintf("%s_%s.pdf", name, kind)
}
