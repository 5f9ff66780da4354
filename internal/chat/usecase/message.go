package usecase

import (
	"context"
	"strings"

	"travel-assistant/internal/chat"
	"travel-assistant/internal/model"
	"travel-assistant/internal/session"
)

func (uc *implUseCase) SendMessage(ctx context.Context, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return chat.SendMessageOutput{}, chat.ErrEmptyMessage
	}

	var s *session.Session
	if input.CreateIfMissing {
		s = uc.sessions.GetOrCreate(input.SessionID, uc.defaultReasoning)
	} else {
		var err error
		if s, err = uc.session(input.SessionID); err != nil {
			return chat.SendMessageOutput{}, err
		}
	}

	reply := s.Assistant.Answer(ctx, message)
	uc.l.Infof(ctx, "%s: session=%s category=%s clarified=%t facts=%d",
		LogPrefixSendMessage, s.ID, reply.Analysis.Category, reply.Clarified, len(reply.Facts))

	return chat.SendMessageOutput{
		SessionID: s.ID,
		Reply:     reply.Text,
		Category:  reply.Analysis.Category,
		Clarified: reply.Clarified,
		Facts:     reply.Facts,
	}, nil
}

func (uc *implUseCase) Analyze(ctx context.Context, input chat.AnalyzeInput) (chat.AnalyzeOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return chat.AnalyzeOutput{}, chat.ErrEmptyMessage
	}

	var history []model.Turn
	if input.SessionID != "" {
		s, err := uc.session(input.SessionID)
		if err != nil {
			return chat.AnalyzeOutput{}, err
		}
		history = s.Assistant.History()
	}

	analysis := uc.router.Analyze(ctx, message, history)
	uc.l.Debugf(ctx, "%s: category=%s mode=%s confidence=%.2f", LogPrefixAnalyze, analysis.Category, analysis.Mode, analysis.Confidence)

	return chat.AnalyzeOutput{Analysis: analysis}, nil
}
