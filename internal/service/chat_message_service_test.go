package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supporthub/api/internal/domain"
)

func chatMessageFixtures(closed bool) (*fakeChatMessageRepo, *fakeChatRepo, *fakeUserRepo) {
	chat := &domain.Chat{
		ID:              "CHT_0000000001",
		TenantID:        "TNT_0000000001",
		TicketID:        "TKT_0000000001",
		StartedByUserID: "USR_0000000001",
		AssignedAgentID: strPtr("USR_0000000002"),
	}
	if closed {
		now := time.Now()
		chat.ClosedAt = &now
	}
	chats := newFakeChatRepo(chat)
	chats.customerByChat[chat.ID] = "USR_0000000001"
	users := newFakeUserRepo(
		&domain.User{ID: "USR_0000000001", TenantID: "TNT_0000000001", Name: "Ada", Role: domain.RoleCustomer},
		&domain.User{ID: "USR_0000000002", TenantID: "TNT_0000000001", Name: "Lin", Role: domain.RoleAgent},
		&domain.User{ID: "USR_0000000003", TenantID: "TNT_0000000001", Name: "Sam", Role: domain.RoleAgent},
	)
	return newFakeChatMessageRepo(), chats, users
}

func TestChatMessageCreateRejectsClosedChat(t *testing.T) {
	messages, chats, users := chatMessageFixtures(true)
	svc := NewChatMessageService(messages, chats, users)

	_, err := svc.Create(context.Background(), ChatMessageCreateInput{
		ChatID:   "CHT_0000000001",
		SenderID: "USR_0000000001",
		Message:  "hello?",
	})
	assertAPIError(t, err, http.StatusBadRequest, "Cannot send messages to a closed chat")
}

func TestChatMessageCreateRejectsOutsideSender(t *testing.T) {
	messages, chats, users := chatMessageFixtures(false)
	svc := NewChatMessageService(messages, chats, users)

	_, err := svc.Create(context.Background(), ChatMessageCreateInput{
		ChatID:   "CHT_0000000001",
		SenderID: "USR_0000000003",
		Message:  "let me in",
	})
	assertAPIError(t, err, http.StatusForbidden, "Only the chat starter, assigned agent, or ticket customer can send messages in this chat")
}

func TestChatMessageCreateAllowsAssignedAgent(t *testing.T) {
	messages, chats, users := chatMessageFixtures(false)
	svc := NewChatMessageService(messages, chats, users)

	msg, err := svc.Create(context.Background(), ChatMessageCreateInput{
		ChatID:   "CHT_0000000001",
		SenderID: "USR_0000000002",
		Message:  "how can I help?",
	})
	require.NoError(t, err)
	assert.Equal(t, "MSG_0000000001", msg.ID)
	assert.Equal(t, "USR_0000000002", msg.SenderID)
}

func TestChatMessageCreateUnknownChat(t *testing.T) {
	messages, chats, users := chatMessageFixtures(false)
	svc := NewChatMessageService(messages, chats, users)

	_, err := svc.Create(context.Background(), ChatMessageCreateInput{
		ChatID:   "CHT_9999999999",
		SenderID: "USR_0000000001",
		Message:  "anyone there?",
	})
	assertAPIError(t, err, http.StatusBadRequest, "Chat not found")
}

func TestChatMessageEditRejectsClosedChat(t *testing.T) {
	messages, chats, users := chatMessageFixtures(false)
	svc := NewChatMessageService(messages, chats, users)

	msg, err := svc.Create(context.Background(), ChatMessageCreateInput{
		ChatID:   "CHT_0000000001",
		SenderID: "USR_0000000001",
		Message:  "typo incomming",
	})
	require.NoError(t, err)

	now := time.Now()
	chat := chats.chats["CHT_0000000001"]
	chat.ClosedAt = &now

	_, err = svc.Update(context.Background(), msg.ID, ChatMessageUpdateInput{Message: "typo incoming"})
	assertAPIError(t, err, http.StatusBadRequest, "Cannot edit messages in a closed chat")
}
