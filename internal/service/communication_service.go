package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/supporthub/api/internal/domain"
	"github.com/supporthub/api/internal/events"
	"github.com/supporthub/api/internal/repository"
	"github.com/supporthub/api/pkg/util"
)

// maxSummaryLength caps the free-text summary on a communication.
const maxSummaryLength = 1000

type CommunicationCreateInput struct {
	TenantID string                   `json:"tenant_id" validate:"required"`
	TicketID string                   `json:"ticket_id" validate:"required"`
	ChatID   *string                  `json:"chat_id"`
	Type     domain.CommunicationType `json:"type" validate:"required"`
	UserID   string                   `json:"user_id" validate:"required"`
	Summary  *string                  `json:"summary"`
}

type CommunicationUpdateInput struct {
	Type    *domain.CommunicationType `json:"type"`
	Summary *string                   `json:"summary"`
}

type CommunicationService struct {
	communications repository.CommunicationRepository
	tickets        repository.TicketRepository
	chats          repository.ChatRepository
	users          repository.UserRepository
	dispatcher     events.Dispatcher
}

func NewCommunicationService(
	communications repository.CommunicationRepository,
	tickets repository.TicketRepository,
	chats repository.ChatRepository,
	users repository.UserRepository,
	dispatcher events.Dispatcher,
) *CommunicationService {
	return &CommunicationService{
		communications: communications,
		tickets:        tickets,
		chats:          chats,
		users:          users,
		dispatcher:     dispatcher,
	}
}

func (s *CommunicationService) Create(ctx context.Context, input CommunicationCreateInput) (*domain.Communication, error) {
	if err := requireFields(input, "tenant_id, ticket_id, type, and user_id are required"); err != nil {
		return nil, err
	}
	if !input.Type.Valid() {
		return nil, util.NewValidationError("Type must be one of: email, sms, call, push")
	}
	if _, err := s.tickets.GetByIDInTenant(ctx, input.TicketID, input.TenantID); err != nil {
		return nil, scopeError(err, "Ticket does not belong to the specified tenant")
	}
	user, err := s.users.GetByIDInTenant(ctx, input.UserID, input.TenantID)
	if err != nil {
		return nil, scopeError(err, "User does not belong to the specified tenant")
	}
	if !user.Role.IsStaff() {
		return nil, util.NewAuthorizationError("Only agents and admins can create communications")
	}
	if input.ChatID != nil {
		chat, err := s.chats.GetByID(ctx, *input.ChatID)
		if err != nil {
			return nil, scopeError(err, "Chat does not belong to the specified tenant")
		}
		if chat.TenantID != input.TenantID {
			return nil, util.NewValidationError("Chat does not belong to the specified tenant")
		}
		if chat.TicketID != input.TicketID {
			return nil, util.NewValidationError("Chat is not associated with the specified ticket")
		}
	}
	if input.Summary != nil && len(*input.Summary) > maxSummaryLength {
		return nil, util.NewValidationError("Summary cannot exceed 1000 characters")
	}
	comm := &domain.Communication{
		TenantID: input.TenantID,
		TicketID: input.TicketID,
		ChatID:   input.ChatID,
		Type:     input.Type,
		UserID:   input.UserID,
		Summary:  input.Summary,
	}
	if err := s.communications.Create(ctx, comm); err != nil {
		return nil, err
	}
	s.publish(ctx, comm)
	return comm, nil
}

func (s *CommunicationService) List(ctx context.Context) ([]domain.Communication, error) {
	return s.communications.List(ctx)
}

func (s *CommunicationService) GetByID(ctx context.Context, id string) (*domain.Communication, error) {
	return s.communications.GetByID(ctx, id)
}

func (s *CommunicationService) Update(ctx context.Context, id string, input CommunicationUpdateInput) (*domain.Communication, error) {
	comm, err := s.communications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Type != nil && !input.Type.Valid() {
		return nil, util.NewValidationError("Type must be one of: email, sms, call, push")
	}
	if input.Summary != nil && len(*input.Summary) > maxSummaryLength {
		return nil, util.NewValidationError("Summary cannot exceed 1000 characters")
	}
	if input.Type != nil {
		comm.Type = *input.Type
	}
	if input.Summary != nil {
		comm.Summary = input.Summary
	}
	if err := s.communications.Update(ctx, comm); err != nil {
		return nil, err
	}
	return comm, nil
}

func (s *CommunicationService) Delete(ctx context.Context, id string) (*domain.Communication, error) {
	return s.communications.Delete(ctx, id)
}

func (s *CommunicationService) publish(ctx context.Context, comm *domain.Communication) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.New().String(),
		Type:      events.EventCommunicationCreated,
		TenantID:  comm.TenantID,
		EntityID:  comm.ID,
		UserID:    comm.UserID,
		Timestamp: time.Now().UTC(),
		Payload:   comm,
	})
}
