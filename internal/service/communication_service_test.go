package service

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supporthub/api/internal/domain"
	"github.com/supporthub/api/pkg/util"
)

func communicationFixtures() (*fakeCommunicationRepo, *fakeTicketRepo, *fakeChatRepo, *fakeUserRepo) {
	communications := newFakeCommunicationRepo()
	tickets := newFakeTicketRepo(
		&domain.Ticket{ID: "TKT_0000000001", TenantID: "TNT_0000000001", Subject: "Broken login"},
		&domain.Ticket{ID: "TKT_0000000002", TenantID: "TNT_0000000001", Subject: "Slow dashboard"},
	)
	chats := newFakeChatRepo(
		&domain.Chat{ID: "CHT_0000000001", TenantID: "TNT_0000000001", TicketID: "TKT_0000000001", StartedByUserID: "USR_0000000002"},
	)
	users := newFakeUserRepo(
		&domain.User{ID: "USR_0000000001", TenantID: "TNT_0000000001", Name: "Lin", Role: domain.RoleAgent},
		&domain.User{ID: "USR_0000000002", TenantID: "TNT_0000000001", Name: "Ada", Role: domain.RoleCustomer},
	)
	return communications, tickets, chats, users
}

func validCommunicationInput() CommunicationCreateInput {
	return CommunicationCreateInput{
		TenantID: "TNT_0000000001",
		TicketID: "TKT_0000000001",
		Type:     domain.CommunicationTypeEmail,
		UserID:   "USR_0000000001",
	}
}

func TestCommunicationCreateRejectsUnknownType(t *testing.T) {
	communications, tickets, chats, users := communicationFixtures()
	svc := NewCommunicationService(communications, tickets, chats, users, nil)

	input := validCommunicationInput()
	input.Type = "carrier_pigeon"
	_, err := svc.Create(context.Background(), input)
	assertAPIError(t, err, http.StatusBadRequest, "Type must be one of: email, sms, call, push")
}

func TestCommunicationCreateRequiresStaffRole(t *testing.T) {
	communications, tickets, chats, users := communicationFixtures()
	svc := NewCommunicationService(communications, tickets, chats, users, nil)

	input := validCommunicationInput()
	input.UserID = "USR_0000000002"
	_, err := svc.Create(context.Background(), input)
	assertAPIError(t, err, http.StatusForbidden, "Only agents and admins can create communications")
}

func TestCommunicationCreateChatMustMatchTicket(t *testing.T) {
	communications, tickets, chats, users := communicationFixtures()
	svc := NewCommunicationService(communications, tickets, chats, users, nil)

	input := validCommunicationInput()
	input.TicketID = "TKT_0000000002"
	input.ChatID = strPtr("CHT_0000000001")
	_, err := svc.Create(context.Background(), input)
	assertAPIError(t, err, http.StatusBadRequest, "Chat is not associated with the specified ticket")
}

func TestCommunicationCreateCapsSummaryLength(t *testing.T) {
	communications, tickets, chats, users := communicationFixtures()
	svc := NewCommunicationService(communications, tickets, chats, users, nil)

	input := validCommunicationInput()
	input.Summary = strPtr(strings.Repeat("x", maxSummaryLength+1))
	_, err := svc.Create(context.Background(), input)
	assertAPIError(t, err, http.StatusBadRequest, "Summary cannot exceed 1000 characters")
}

func TestCommunicationCreateSurfacesWindowConflict(t *testing.T) {
	communications, tickets, chats, users := communicationFixtures()
	communications.createErr = util.NewConflictError("A similar communication was recently created for this ticket")
	svc := NewCommunicationService(communications, tickets, chats, users, nil)

	_, err := svc.Create(context.Background(), validCommunicationInput())
	assertAPIError(t, err, http.StatusConflict, "A similar communication was recently created for this ticket")
}

func TestCommunicationCreateSuccess(t *testing.T) {
	communications, tickets, chats, users := communicationFixtures()
	svc := NewCommunicationService(communications, tickets, chats, users, nil)

	input := validCommunicationInput()
	input.ChatID = strPtr("CHT_0000000001")
	input.Summary = strPtr("Called the customer back")
	comm, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "COM_0000000001", comm.ID)
	assert.Equal(t, domain.CommunicationTypeEmail, comm.Type)
}
