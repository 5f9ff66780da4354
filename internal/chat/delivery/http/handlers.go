package http

import (
	"github.com/gin-gonic/gin"

	"travel-assistant/pkg/response"
)

// CreateSession godoc
// @Summary     Start a conversation
// @Description Opens a new session with its own bounded history.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body createSessionReq false "Session options"
// @Success     200  {object} createSessionResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateSessionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateSession(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateSession: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCreateSessionResp(output))
}

// SendMessage godoc
// @Summary     Ask the travel assistant
// @Description Analyzes the question, enriches it with weather data when useful and returns the reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id   path string         true "Session ID"
// @Param       body body sendMessageReq true "User message"
// @Success     200  {object} sendMessageResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Session Not Found"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/sessions/{id}/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SendMessage(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SendMessage: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSendMessageResp(output))
}

// History godoc
// @Summary     Get conversation history
// @Description Returns the stored turns of a session, oldest first.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Session Not Found"
// @Router      /api/v1/sessions/{id}/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.History(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// ClearHistory godoc
// @Summary     Clear conversation history
// @Description Forgets every turn of the session but keeps the session open.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Session Not Found"
// @Router      /api/v1/sessions/{id}/history [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.ClearHistory(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.ClearHistory: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// EndSession godoc
// @Summary     End a conversation
// @Description Drops the session and its history.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Session Not Found"
// @Router      /api/v1/sessions/{id} [DELETE]
func (h *handler) EndSession(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.EndSession(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.EndSession: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
