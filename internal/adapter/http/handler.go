package http

import (
	"errors"
	"log/slog"
	"strconv"

	"resume-builder/internal/domain"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/assist"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handler struct {
	delivery *usecase.Delivery
	assist   assist.Provider
	log      *slog.Logger
}

func NewHandler(d *usecase.Delivery, a assist.Provider, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{delivery: d, assist: a, log: log}
}

// Register mounts the routes. Resume routes require a verified identity.
func (h *Handler) Register(app *fiber.App) {
	resumes := app.Group("/resumes", RequireIdentity)
	resumes.Get("/:id/download", h.DownloadResume)
	resumes.Get("/:id/preview", h.PreviewResume)

	app.Post("/assist/suggest", RequireIdentity, h.Suggest)
}

// DownloadResume renders the resume and streams the PDF as an attachment.
// The buffer is fully built before the first byte is sent; a failed render
// never produces partial output.
func (h *Handler) DownloadResume(c *fiber.Ctx) error {
	userID := identityFromCtx(c)

	resumeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid resume id"})
	}

	result, err := h.delivery.Download(c.UserContext(), userID, resumeID, c.Query("template"))
	if err != nil {
		return h.renderError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+result.Filename+`"`)
	c.Set(fiber.HeaderContentLength, strconv.Itoa(len(result.PDF)))
	return c.Send(result.PDF)
}

// PreviewResume renders the resume, persists it to blob storage and returns
// the durable URL.
func (h *Handler) PreviewResume(c *fiber.Ctx) error {
	userID := identityFromCtx(c)

	resumeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid resume id"})
	}

	result, err := h.delivery.Preview(c.UserContext(), userID, resumeID, c.Query("template"))
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(result)
}

// Suggest proxies the editor's suggestion request to the selected assist
// provider.
func (h *Handler) Suggest(c *fiber.Ctx) error {
	var req assist.Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	sug, err := h.assist.Suggest(c.UserContext(), req)
	if err != nil {
		h.log.Error("assist suggestion failed", "section", req.Section, "err", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "suggestion unavailable"})
	}
	return c.JSON(sug)
}

// renderError maps pipeline failures to the two user-facing errors. Details
// stay in the server log.
func (h *Handler) renderError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrResumeNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resume not found"})
	}
	h.log.Error("pdf generation failed", "path", c.Path(), "err", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to generate PDF"})
}
