package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/OnslaughtSnail/vitae/api/http/presenter"
	"github.com/OnslaughtSnail/vitae/kernel/engine"
	"github.com/OnslaughtSnail/vitae/kernel/export"
	"github.com/OnslaughtSnail/vitae/kernel/state"
	"github.com/OnslaughtSnail/vitae/kernel/store"
)

// ExportHandler serves rendered resume documents. Export is only allowed
// once the session is finalized.
type ExportHandler struct {
	engine *engine.Engine
}

func NewExportHandler(eng *engine.Engine) *ExportHandler {
	return &ExportHandler{engine: eng}
}

// load fetches the session and writes the error response itself when the
// export cannot proceed; ok is false in that case.
func (h *ExportHandler) load(c *fiber.Ctx) (state.Session, bool, error) {
	sess, err := h.engine.Session(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return state.Session{}, false, presenter.Error(c, http.StatusNotFound, "", "session not found or expired")
		}
		return state.Session{}, false, presenter.Error(c, http.StatusInternalServerError, "", "internal error")
	}
	if !sess.Finalized() {
		return state.Session{}, false, presenter.Error(c, http.StatusConflict,
			string(engine.ErrorCodeSessionFinalized), "session is not finalized yet")
	}
	return sess, true, nil
}

// PDF returns the finalized resume as a PDF document.
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	sess, ok, err := h.load(c)
	if !ok {
		return err
	}
	doc, err := export.PDF(sess.Data, sess.Language)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "", "pdf generation failed")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resume.pdf"`)
	return c.Status(http.StatusOK).Send(doc)
}

// Markdown returns the finalized resume as a Markdown document.
func (h *ExportHandler) Markdown(c *fiber.Ctx) error {
	sess, ok, err := h.load(c)
	if !ok {
		return err
	}
	c.Set(fiber.HeaderContentType, "text/markdown; charset=utf-8")
	return c.Status(http.StatusOK).SendString(export.Markdown(sess.Data, sess.Language))
}
