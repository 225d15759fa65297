package domain

import "errors"

// ErrResumeNotFound covers both a missing resume and a resume owned by a
// different user; callers must not be able to tell the two apart.
var ErrResumeNotFound = errors.New("resume not found")

// ErrRenderFailed is the generic failure for the composition and
// rasterization steps. The underlying cause is logged server-side only.
var ErrRenderFailed = errors.New("failed to generate PDF")
