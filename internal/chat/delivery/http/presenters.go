package http

import (
	"strings"
	"time"

	"travel-assistant/internal/chat"
	"travel-assistant/internal/model"
)

// --- Request DTOs ---

type createSessionReq struct {
	ShowReasoning *bool `json:"show_reasoning"`
}

func (r createSessionReq) toInput() chat.CreateSessionInput {
	return chat.CreateSessionInput{ShowReasoning: r.ShowReasoning}
}

// ---

type sendMessageReq struct {
	SessionID string `json:"-"` // populated from URI param
	Message   string `json:"message" binding:"required,max=4000"`
}

func (r sendMessageReq) validate() error {
	if r.SessionID == "" {
		return errSessionIDRequired
	}
	if strings.TrimSpace(r.Message) == "" {
		return chat.ErrEmptyMessage
	}
	return nil
}

func (r sendMessageReq) toInput() chat.SendMessageInput {
	return chat.SendMessageInput{
		SessionID: r.SessionID,
		Message:   r.Message,
	}
}

// --- Response DTOs ---

type createSessionResp struct {
	SessionID     string    `json:"session_id"`
	ShowReasoning bool      `json:"show_reasoning"`
	CreatedAt     time.Time `json:"created_at"`
}

func (h *handler) newCreateSessionResp(out chat.CreateSessionOutput) createSessionResp {
	return createSessionResp{
		SessionID:     out.SessionID,
		ShowReasoning: out.ShowReasoning,
		CreatedAt:     out.CreatedAt,
	}
}

type sendMessageResp struct {
	SessionID string   `json:"session_id"`
	Reply     string   `json:"reply"`
	Category  string   `json:"category"`
	Clarified bool     `json:"clarified"`
	Facts     []string `json:"facts,omitempty"`
}

func (h *handler) newSendMessageResp(out chat.SendMessageOutput) sendMessageResp {
	return sendMessageResp{
		SessionID: out.SessionID,
		Reply:     out.Reply,
		Category:  string(out.Category),
		Clarified: out.Clarified,
		Facts:     out.Facts,
	}
}

type turnResp struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type historyResp struct {
	SessionID string     `json:"session_id"`
	Turns     []turnResp `json:"turns"`
}

func (h *handler) newHistoryResp(out chat.HistoryOutput) historyResp {
	turns := make([]turnResp, len(out.Turns))
	for i, t := range out.Turns {
		turns[i] = newTurnResp(t)
	}
	return historyResp{SessionID: out.SessionID, Turns: turns}
}

func newTurnResp(t model.Turn) turnResp {
	return turnResp{Role: string(t.Role), Content: t.Content}
}
