package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/OnslaughtSnail/vitae/api/http/presenter"
	"github.com/OnslaughtSnail/vitae/kernel/engine"
	"github.com/OnslaughtSnail/vitae/kernel/render"
	clog "github.com/OnslaughtSnail/vitae/pkg/log"
)

// ChatHandler drives the intake dialogue over HTTP. One POST is one turn.
type ChatHandler struct {
	engine   *engine.Engine
	renderer render.Renderer
}

func NewChatHandler(eng *engine.Engine, renderer render.Renderer) *ChatHandler {
	return &ChatHandler{engine: eng, renderer: renderer}
}

type chatRequest struct {
	// SessionID is empty on the opening message; the response carries the
	// assigned id for all following turns.
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	// Language only takes effect on the turn that creates the session.
	Language string `json:"language"`
}

type chatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
	Step      string `json:"step"`
	Version   int64  `json:"version"`
	Finalized bool   `json:"finalized"`
}

// Chat applies one user message to its session and returns the next
// prompt. Conflicting concurrent turns and turns against a finalized
// session both answer 409; resubmitting a conflicted turn is safe.
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "", "invalid request body")
	}
	if strings.TrimSpace(req.Message) == "" {
		return presenter.Error(c, http.StatusBadRequest, "", "message is required")
	}

	res, err := h.engine.ProcessTurn(c.Context(), engine.TurnInput{
		SessionID: req.SessionID,
		Text:      req.Message,
		Language:  req.Language,
	})
	if err != nil {
		switch {
		case engine.IsConflict(err):
			return presenter.Error(c, http.StatusConflict, string(engine.ErrorCodeOf(err)),
				"session was updated concurrently, resubmit the message")
		case engine.IsFinalized(err):
			return presenter.Error(c, http.StatusConflict, string(engine.ErrorCodeOf(err)),
				"session is finalized and no longer accepts input")
		case engine.IsInvalidTransition(err):
			clog.Error("invalid transition", "error", err)
			return presenter.Error(c, http.StatusInternalServerError, string(engine.ErrorCodeOf(err)),
				"internal state error")
		default:
			clog.Error("turn failed", "error", err)
			return presenter.Error(c, http.StatusInternalServerError, "", "internal error")
		}
	}

	sess, err := h.engine.Session(c.Context(), res.SessionID)
	if err != nil {
		clog.Error("load committed session", "session_id", res.SessionID, "error", err)
		return presenter.Error(c, http.StatusInternalServerError, "", "internal error")
	}
	reply, err := h.renderer.Render(c.Context(), res.Directive, sess.Data, sess.Language)
	if err != nil {
		clog.Error("render reply", "session_id", res.SessionID, "error", err)
		return presenter.Error(c, http.StatusInternalServerError, "", "internal error")
	}

	return presenter.JSON(c, http.StatusOK, chatResponse{
		SessionID: res.SessionID,
		Reply:     reply,
		Step:      string(res.Step),
		Version:   res.Version,
		Finalized: res.Finalized,
	})
}
