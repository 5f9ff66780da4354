package usecase

import (
	"context"

	"travel-assistant/internal/chat"
	"travel-assistant/internal/session"
)

func (uc *implUseCase) CreateSession(ctx context.Context, input chat.CreateSessionInput) (chat.CreateSessionOutput, error) {
	showReasoning := uc.defaultReasoning
	if input.ShowReasoning != nil {
		showReasoning = *input.ShowReasoning
	}

	s := uc.sessions.Create(showReasoning)
	uc.l.Infof(ctx, "%s: session=%s show_reasoning=%t", LogPrefixCreateSession, s.ID, showReasoning)

	return chat.CreateSessionOutput{
		SessionID:     s.ID,
		ShowReasoning: s.Assistant.ShowReasoning(),
		CreatedAt:     s.CreatedAt,
	}, nil
}

func (uc *implUseCase) EndSession(ctx context.Context, sessionID string) error {
	if !uc.sessions.Delete(sessionID) {
		return chat.ErrSessionNotFound
	}
	return nil
}

func (uc *implUseCase) History(ctx context.Context, sessionID string) (chat.HistoryOutput, error) {
	s, err := uc.session(sessionID)
	if err != nil {
		return chat.HistoryOutput{}, err
	}
	return chat.HistoryOutput{
		SessionID: s.ID,
		Turns:     s.Assistant.History(),
	}, nil
}

func (uc *implUseCase) ClearHistory(ctx context.Context, sessionID string) error {
	s, err := uc.session(sessionID)
	if err != nil {
		return err
	}
	s.Assistant.ClearHistory()
	return nil
}

func (uc *implUseCase) session(id string) (*session.Session, error) {
	s, ok := uc.sessions.Get(id)
	if !ok {
		return nil, chat.ErrSessionNotFound
	}
	return s, nil
}
