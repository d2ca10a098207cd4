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

type ChatCreateInput struct {
	TenantID        string  `json:"tenant_id" validate:"required"`
	TicketID        string  `json:"ticket_id" validate:"required"`
	StartedByUserID string  `json:"started_by_user_id" validate:"required"`
	AssignedAgentID *string `json:"assigned_agent_id"`
}

type ChatUpdateInput struct {
	AssignedAgentID *string    `json:"assigned_agent_id"`
	ClosedAt        *time.Time `json:"closed_at"`
}

type ChatService struct {
	chats      repository.ChatRepository
	tickets    repository.TicketRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

func NewChatService(
	chats repository.ChatRepository,
	tickets repository.TicketRepository,
	users repository.UserRepository,
	dispatcher events.Dispatcher,
) *ChatService {
	return &ChatService{chats: chats, tickets: tickets, users: users, dispatcher: dispatcher}
}

func (s *ChatService) Create(ctx context.Context, input ChatCreateInput) (*domain.Chat, error) {
	if err := requireFields(input, "tenant_id, ticket_id, and started_by_user_id are required"); err != nil {
		return nil, err
	}
	if _, err := s.tickets.GetByIDInTenant(ctx, input.TicketID, input.TenantID); err != nil {
		return nil, scopeError(err, "Ticket does not belong to the specified tenant")
	}
	starter, err := s.users.GetByIDInTenant(ctx, input.StartedByUserID, input.TenantID)
	if err != nil {
		return nil, scopeError(err, "User does not belong to the specified tenant")
	}
	if starter.Role != domain.RoleCustomer {
		return nil, util.NewValidationError("Chat can only be started by a customer")
	}
	if input.AssignedAgentID != nil {
		agent, err := s.users.GetByIDInTenant(ctx, *input.AssignedAgentID, input.TenantID)
		if err != nil {
			return nil, scopeError(err, "Assigned agent does not belong to the specified tenant")
		}
		if !agent.Role.IsStaff() {
			return nil, util.NewValidationError("Assigned agent must be a user with agent or admin role")
		}
		if *input.AssignedAgentID == input.StartedByUserID {
			return nil, util.NewValidationError("User who started the chat cannot be assigned as the agent")
		}
	}
	chat := &domain.Chat{
		TenantID:        input.TenantID,
		TicketID:        input.TicketID,
		StartedByUserID: input.StartedByUserID,
		AssignedAgentID: input.AssignedAgentID,
	}
	if err := s.chats.Create(ctx, chat); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventChatStarted, chat, chat.StartedByUserID)
	return chat, nil
}

func (s *ChatService) List(ctx context.Context) ([]domain.Chat, error) {
	return s.chats.List(ctx)
}

func (s *ChatService) GetByID(ctx context.Context, id string) (*domain.Chat, error) {
	return s.chats.GetByID(ctx, id)
}

func (s *ChatService) Update(ctx context.Context, id string, input ChatUpdateInput) (*domain.Chat, error) {
	chat, err := s.chats.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.AssignedAgentID != nil {
		agent, err := s.users.GetByIDInTenant(ctx, *input.AssignedAgentID, chat.TenantID)
		if err != nil {
			return nil, scopeError(err, "Assigned agent does not belong to the chat's tenant")
		}
		if !agent.Role.IsStaff() {
			return nil, util.NewValidationError("Assigned agent must be a user with agent or admin role")
		}
		if *input.AssignedAgentID == chat.StartedByUserID {
			return nil, util.NewValidationError("User who started the chat cannot be assigned as the agent")
		}
		chat.AssignedAgentID = input.AssignedAgentID
	}
	justClosed := false
	if input.ClosedAt != nil && chat.ClosedAt == nil {
		justClosed = true
	}
	if input.ClosedAt != nil {
		chat.ClosedAt = input.ClosedAt
	}
	if err := s.chats.Update(ctx, chat); err != nil {
		return nil, err
	}
	if justClosed {
		s.publish(ctx, events.EventChatClosed, chat, chat.StartedByUserID)
	}
	return chat, nil
}

func (s *ChatService) Delete(ctx context.Context, id string) (*domain.Chat, error) {
	return s.chats.Delete(ctx, id)
}

func (s *ChatService) publish(ctx context.Context, eventType events.EventType, chat *domain.Chat, userID string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		TenantID:  chat.TenantID,
		EntityID:  chat.ID,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Payload:   chat,
	})
}
