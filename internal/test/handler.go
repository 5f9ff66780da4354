package test

import (
	"errors"
	"fmt"

	"travel-assistant/internal/chat"
	pkgLog "travel-assistant/pkg/log"

	"github.com/gin-gonic/gin"
)

type handler struct {
	l  pkgLog.Logger
	uc chat.UseCase
}

// HandleTestMessage runs the full pipeline for a test user
// @Summary Test message processing
// @Description Send a test message through analysis, weather enrichment and generation without any chat transport
// @Tags test
// @Accept json
// @Produce json
// @Param request body TestMessageRequest true "Test message"
// @Success 200 {object} TestMessageResponse
// @Router /test/message [post]
func (h *handler) HandleTestMessage(c *gin.Context) {
	ctx := c.Request.Context()

	var req TestMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	if req.UserID == 0 {
		req.UserID = defaultUserID
	}

	output, err := h.uc.SendMessage(ctx, chat.SendMessageInput{
		SessionID:       sessionFor(req.UserID),
		Message:         req.Text,
		CreateIfMissing: true,
	})
	if err != nil {
		h.l.Errorf(ctx, "internal.test.HandleTestMessage: SendMessage failed: %v", err)
		c.JSON(500, TestMessageResponse{
			Success: false,
			Text:    req.Text,
			UserID:  req.UserID,
			Error:   "Message processing failed",
			Details: err.Error(),
		})
		return
	}

	h.l.Infof(ctx, "internal.test.HandleTestMessage: text=%q category=%s clarified=%t",
		req.Text, output.Category, output.Clarified)

	c.JSON(200, TestMessageResponse{
		Success:   true,
		Category:  string(output.Category),
		Clarified: output.Clarified,
		Facts:     output.Facts,
		Reply:     output.Reply,
		Text:      req.Text,
		UserID:    req.UserID,
	})
}

// HandleAnalyze runs only the question analyzer
// @Summary Analyze a question
// @Description Classify a message (category, weather mode, location, clarification) using the test user's history as context
// @Tags test
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "Message to analyze"
// @Success 200 {object} AnalyzeResponse
// @Router /test/analyze [post]
func (h *handler) HandleAnalyze(c *gin.Context) {
	ctx := c.Request.Context()

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	if req.UserID == 0 {
		req.UserID = defaultUserID
	}

	output, err := h.uc.Analyze(ctx, chat.AnalyzeInput{SessionID: sessionFor(req.UserID), Message: req.Text})
	if errors.Is(err, chat.ErrSessionNotFound) {
		// no conversation yet, analyze without context
		output, err = h.uc.Analyze(ctx, chat.AnalyzeInput{Message: req.Text})
	}
	if err != nil {
		h.l.Errorf(ctx, "internal.test.HandleAnalyze: Analyze failed: %v", err)
		c.JSON(400, gin.H{"error": "Analysis failed", "details": err.Error()})
		return
	}

	a := output.Analysis
	h.l.Infof(ctx, "internal.test.HandleAnalyze: text=%q category=%s mode=%s confidence=%.2f",
		req.Text, a.Category, a.Mode, a.Confidence)

	c.JSON(200, AnalyzeResponse{
		Success:            true,
		Category:           string(a.Category),
		NeedsWeather:       a.NeedsWeather,
		Mode:               string(a.Mode),
		City:               a.City,
		Country:            a.Country,
		When:               a.When,
		NeedsClarification: a.NeedsClarification,
		Confidence:         a.Confidence,
		Reason:             a.Reason,
		Text:               req.Text,
	})
}

// HandleResetSession resets the conversation session for a test user
// @Summary Reset test user session
// @Description Clear conversation history for a test user
// @Tags test
// @Accept json
// @Produce json
// @Param request body ResetSessionRequest true "Reset session"
// @Success 200 {object} ResetSessionResponse
// @Router /test/reset [post]
func (h *handler) HandleResetSession(c *gin.Context) {
	ctx := c.Request.Context()

	var req ResetSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if req.UserID == 0 {
		req.UserID = defaultUserID
	}

	if err := h.uc.EndSession(ctx, sessionFor(req.UserID)); err != nil && !errors.Is(err, chat.ErrSessionNotFound) {
		h.l.Errorf(ctx, "internal.test.HandleResetSession: EndSession failed: %v", err)
		c.JSON(500, gin.H{"error": "Reset failed", "details": err.Error()})
		return
	}

	h.l.Infof(ctx, "internal.test.HandleResetSession: Cleared session for user_id=%d", req.UserID)

	c.JSON(200, ResetSessionResponse{
		Success: true,
		Message: fmt.Sprintf("Session cleared for user %d", req.UserID),
		UserID:  req.UserID,
	})
}

// HandleHealthCheck returns the health status of test endpoints
// @Summary Test health check
// @Description Check if test endpoints are available
// @Tags test
// @Produce json
// @Success 200 {object} HealthCheckResponse
// @Router /test/health [get]
func (h *handler) HandleHealthCheck(c *gin.Context) {
	c.JSON(200, HealthCheckResponse{
		Status:  "ok",
		Message: "Test endpoints are available",
	})
}

func sessionFor(userID int64) string {
	return fmt.Sprintf("%s%d", sessionPrefix, userID)
}
