package service

import (
	"context"

	"github.com/supporthub/api/internal/domain"
	"github.com/supporthub/api/internal/repository"
	"github.com/supporthub/api/pkg/util"
)

type RecordingCreateInput struct {
	TenantID string `json:"tenant_id" validate:"required"`
	TicketID string `json:"ticket_id" validate:"required"`
	ChatID   string `json:"chat_id" validate:"required"`
	URL      string `json:"url" validate:"required"`
}

type RecordingUpdateInput struct {
	URL string `json:"url" validate:"required"`
}

type RecordingService struct {
	recordings repository.RecordingRepository
	tickets    repository.TicketRepository
	chats      repository.ChatRepository
}

func NewRecordingService(
	recordings repository.RecordingRepository,
	tickets repository.TicketRepository,
	chats repository.ChatRepository,
) *RecordingService {
	return &RecordingService{recordings: recordings, tickets: tickets, chats: chats}
}

func (s *RecordingService) Create(ctx context.Context, input RecordingCreateInput) (*domain.Recording, error) {
	if err := requireFields(input, "tenant_id, ticket_id, chat_id, and url are required"); err != nil {
		return nil, err
	}
	if _, err := s.tickets.GetByIDInTenant(ctx, input.TicketID, input.TenantID); err != nil {
		return nil, scopeError(err, "Ticket does not belong to the specified tenant")
	}
	chat, err := s.chats.GetByID(ctx, input.ChatID)
	if err != nil {
		return nil, scopeError(err, "Chat does not belong to the specified tenant")
	}
	if chat.TenantID != input.TenantID {
		return nil, util.NewValidationError("Chat does not belong to the specified tenant")
	}
	if chat.TicketID != input.TicketID {
		return nil, util.NewValidationError("Chat is not associated with the specified ticket")
	}
	if chat.Closed() {
		return nil, util.NewValidationError("Cannot create recordings for closed chats")
	}
	if !validURL(input.URL) {
		return nil, util.NewValidationError("Invalid URL format")
	}
	recording := &domain.Recording{
		TenantID: input.TenantID,
		TicketID: input.TicketID,
		ChatID:   input.ChatID,
		URL:      input.URL,
	}
	if err := s.recordings.Create(ctx, recording); err != nil {
		return nil, err
	}
	return recording, nil
}

func (s *RecordingService) List(ctx context.Context) ([]domain.Recording, error) {
	return s.recordings.List(ctx)
}

func (s *RecordingService) GetByID(ctx context.Context, id string) (*domain.Recording, error) {
	return s.recordings.GetByID(ctx, id)
}

func (s *RecordingService) Update(ctx context.Context, id string, input RecordingUpdateInput) (*domain.Recording, error) {
	if err := requireFields(input, "url is required"); err != nil {
		return nil, err
	}
	recording, err := s.recordings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	chat, err := s.chats.GetByID(ctx, recording.ChatID)
	if err != nil {
		return nil, err
	}
	if chat.Closed() {
		return nil, util.NewValidationError("Cannot update recordings for closed chats")
	}
	if !validURL(input.URL) {
		return nil, util.NewValidationError("Invalid URL format")
	}
	recording.URL = input.URL
	if err := s.recordings.Update(ctx, recording); err != nil {
		return nil, err
	}
	return recording, nil
}

func (s *RecordingService) Delete(ctx context.Context, id string) (*domain.Recording, error) {
	recording, err := s.recordings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	chat, err := s.chats.GetByID(ctx, recording.ChatID)
	if err != nil {
		return nil, err
	}
	if chat.Closed() {
		return nil, util.NewValidationError("Cannot delete recordings for closed chats")
	}
	return s.recordings.Delete(ctx, id)
}
