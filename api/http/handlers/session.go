package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/OnslaughtSnail/vitae/api/http/presenter"
	"github.com/OnslaughtSnail/vitae/kernel/engine"
	"github.com/OnslaughtSnail/vitae/kernel/state"
	"github.com/OnslaughtSnail/vitae/kernel/store"
)

// SessionHandler exposes read-only session views.
type SessionHandler struct {
	engine *engine.Engine
}

func NewSessionHandler(eng *engine.Engine) *SessionHandler {
	return &SessionHandler{engine: eng}
}

type sessionResponse struct {
	SessionID   string           `json:"session_id"`
	Language    string           `json:"language"`
	Step        string           `json:"step"`
	Version     int64            `json:"version"`
	Finalized   bool             `json:"finalized"`
	Corrections int              `json:"corrections"`
	Data        state.ResumeData `json:"data"`
}

// Get returns the current state of one session.
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	sess, err := h.engine.Session(c.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "", "session not found or expired")
		}
		return presenter.Error(c, http.StatusInternalServerError, "", "internal error")
	}
	return presenter.JSON(c, http.StatusOK, sessionResponse{
		SessionID:   sess.ID,
		Language:    sess.Language,
		Step:        string(sess.Step),
		Version:     sess.Version,
		Finalized:   sess.Finalized(),
		Corrections: sess.Corrections,
		Data:        sess.Data,
	})
}
