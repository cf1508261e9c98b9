package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-renderer/internal/adapter/repository"
	"resume-renderer/internal/model"
	"resume-renderer/internal/usecase"
)

type Handler struct {
	processor *usecase.Processor
	store     usecase.ArtifactStore
	log       *slog.Logger
}

func NewHandler(p *usecase.Processor, store usecase.ArtifactStore, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{processor: p, store: store, log: log}
}

func (h *Handler) Register(app *fiber.App) {
	app.Post("/documents/render", h.Render)
	app.Post("/documents/preview", h.Preview)
	app.Post("/documents/validate", h.Validate)
	app.Get("/documents/:id/render", h.RenderStored)
	app.Get("/artifacts/:key", h.Artifact)
}

// decode validates the body against the document schema before binding it.
// A nil document with a nil error means the response was already written.
func (h *Handler) decode(c *fiber.Ctx) (*model.Document, error) {
	raw := c.Body()
	reasons, err := model.ValidateJSON(raw)
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if len(reasons) > 0 {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid document", "reasons": reasons})
	}
	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	return &doc, nil
}

func (h *Handler) Render(c *fiber.Ctx) error {
	doc, err := h.decode(c)
	if doc == nil {
		return err
	}
	a, err := h.processor.Render(c.UserContext(), doc)
	if err != nil {
		return h.fail(c, err)
	}
	return sendPDF(c, a, true)
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	doc, err := h.decode(c)
	if doc == nil {
		return err
	}
	if c.Query("format") == "html" {
		a, err := h.processor.Layout(doc)
		if err != nil {
			return h.fail(c, err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		c.Set("X-Page-Count", strconv.Itoa(a.Pages))
		return c.Send(a.HTML)
	}
	a, err := h.processor.Preview(c.UserContext(), doc)
	if err != nil {
		return h.fail(c, err)
	}
	return sendPDF(c, a, false)
}

func (h *Handler) RenderStored(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid document id"})
	}
	a, err := h.processor.RenderStored(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return sendPDF(c, a, true)
}

func (h *Handler) Artifact(c *fiber.Ctx) error {
	if h.store == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "artifact not found"})
	}
	a, ok, err := h.store.Get(c.UserContext(), c.Params("key"))
	if err != nil {
		return h.fail(c, err)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "artifact not found"})
	}
	return sendPDF(c, a, c.QueryBool("download"))
}

// Validate reports schema violations and export preconditions without
// rendering.
func (h *Handler) Validate(c *fiber.Ctx) error {
	raw := c.Body()
	reasons, err := model.ValidateJSON(raw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if len(reasons) == 0 {
		var doc model.Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
		}
		reasons = model.Precheck(&doc)
	}
	if reasons == nil {
		reasons = []string{}
	}
	return c.JSON(fiber.Map{"valid": len(reasons) == 0, "reasons": reasons})
}

func sendPDF(c *fiber.Ctx, a *usecase.Artifact, download bool) error {
	name := a.Filename + ".pdf"
	if download {
		c.Attachment(name)
	} else {
		c.Set(fiber.HeaderContentDisposition, `inline; filename="`+name+`"`)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set("X-Artifact-Key", a.Key)
	c.Set("X-Page-Count", strconv.Itoa(a.Pages))
	return c.Send(a.PDF)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var pe *usecase.PreconditionError
	switch {
	case errors.As(err, &pe):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "document is not exportable", "reasons": pe.Reasons})
	case errors.Is(err, usecase.ErrRasterization):
		h.log.Error("http: rasterization failed", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "pdf rendering failed"})
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "document not found"})
	default:
		h.log.Error("http: request failed", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}
