package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-assistant/internal/chat"
	"travel-assistant/pkg/response"
)

var errSessionIDRequired = response.NewHTTPError(http.StatusBadRequest, "session id is required")

// mapError translates use-case errors into HTTP errors. Unknown errors map to nil.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrSessionNotFound):
		return response.NewHTTPError(http.StatusNotFound, chat.ErrSessionNotFound.Error())
	case errors.Is(err, chat.ErrEmptyMessage):
		return response.NewHTTPError(http.StatusBadRequest, chat.ErrEmptyMessage.Error())
	default:
		return nil
	}
}

// respondError writes a use-case failure; unmapped errors never leak their text.
func (h *handler) respondError(c *gin.Context, err error) {
	if mapped := h.mapError(err); mapped != nil {
		response.Error(c, mapped, nil)
		return
	}
	response.InternalError(c, err)
}
