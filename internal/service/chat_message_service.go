package service

import (
	"context"

	"github.com/supporthub/api/internal/domain"
	"github.com/supporthub/api/internal/repository"
	"github.com/supporthub/api/pkg/util"
)

type ChatMessageCreateInput struct {
	ChatID   string `json:"chat_id" validate:"required"`
	SenderID string `json:"sender_id" validate:"required"`
	Message  string `json:"message" validate:"required"`
}

type ChatMessageUpdateInput struct {
	Message string `json:"message" validate:"required"`
}

type ChatMessageService struct {
	messages repository.ChatMessageRepository
	chats    repository.ChatRepository
	users    repository.UserRepository
}

func NewChatMessageService(
	messages repository.ChatMessageRepository,
	chats repository.ChatRepository,
	users repository.UserRepository,
) *ChatMessageService {
	return &ChatMessageService{messages: messages, chats: chats, users: users}
}

func (s *ChatMessageService) Create(ctx context.Context, input ChatMessageCreateInput) (*domain.ChatMessage, error) {
	if err := requireFields(input, "chat_id, sender_id, and message are required"); err != nil {
		return nil, err
	}
	chat, customerID, err := s.chats.GetWithCustomer(ctx, input.ChatID)
	if err != nil {
		return nil, scopeError(err, "Chat not found")
	}
	sender, err := s.users.GetByIDInTenant(ctx, input.SenderID, chat.TenantID)
	if err != nil {
		return nil, scopeError(err, "Sender does not belong to the chat's tenant")
	}
	if chat.Closed() {
		return nil, util.NewValidationError("Cannot send messages to a closed chat")
	}
	if !s.canSend(chat, customerID, sender) {
		return nil, util.NewAuthorizationError("Only the chat starter, assigned agent, or ticket customer can send messages in this chat")
	}
	msg := &domain.ChatMessage{
		ChatID:   input.ChatID,
		SenderID: input.SenderID,
		Message:  input.Message,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *ChatMessageService) List(ctx context.Context) ([]domain.ChatMessage, error) {
	return s.messages.List(ctx)
}

func (s *ChatMessageService) GetByID(ctx context.Context, id string) (*domain.ChatMessage, error) {
	return s.messages.GetByID(ctx, id)
}

func (s *ChatMessageService) Update(ctx context.Context, id string, input ChatMessageUpdateInput) (*domain.ChatMessage, error) {
	if err := requireFields(input, "message is required"); err != nil {
		return nil, err
	}
	msg, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	chat, err := s.chats.GetByID(ctx, msg.ChatID)
	if err != nil {
		return nil, err
	}
	if chat.Closed() {
		return nil, util.NewValidationError("Cannot edit messages in a closed chat")
	}
	msg.Message = input.Message
	if err := s.messages.Update(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *ChatMessageService) Delete(ctx context.Context, id string) (*domain.ChatMessage, error) {
	return s.messages.Delete(ctx, id)
}

// canSend restricts senders to the chat starter, the assigned agent, or the
// customer on the chat's ticket.
func (s *ChatMessageService) canSend(chat *domain.Chat, customerID string, sender *domain.User) bool {
	if sender.ID == chat.StartedByUserID || sender.ID == customerID {
		return true
	}
	return chat.AssignedAgentID != nil && sender.ID == *chat.AssignedAgentID
}
