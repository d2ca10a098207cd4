package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supporthub/api/internal/domain"
	"github.com/supporthub/api/internal/events"
)

func ticketFixtures() (*fakeTicketRepo, *fakeCategoryRepo, *fakeUserRepo) {
	tickets := newFakeTicketRepo()
	categories := newFakeCategoryRepo(
		&domain.Category{ID: "CAT_0000000001", TenantID: "TNT_0000000001", Name: "Billing"},
		&domain.Category{ID: "CAT_0000000002", TenantID: "TNT_0000000002", Name: "Billing"},
	)
	users := newFakeUserRepo(
		&domain.User{ID: "USR_0000000001", TenantID: "TNT_0000000001", Name: "Ada", Email: "ada@example.com", Role: domain.RoleCustomer},
		&domain.User{ID: "USR_0000000002", TenantID: "TNT_0000000001", Name: "Lin", Email: "lin@example.com", Role: domain.RoleAgent},
		&domain.User{ID: "USR_0000000003", TenantID: "TNT_0000000002", Name: "Bo", Email: "bo@example.com", Role: domain.RoleCustomer},
	)
	return tickets, categories, users
}

func validTicketInput() TicketCreateInput {
	return TicketCreateInput{
		TenantID:   "TNT_0000000001",
		Subject:    "Printer on fire",
		Status:     domain.TicketStatusOpen,
		Priority:   domain.TicketPriorityHigh,
		CategoryID: "CAT_0000000001",
		CustomerID: "USR_0000000001",
	}
}

func TestTicketCreateRequiresFields(t *testing.T) {
	tickets, categories, users := ticketFixtures()
	svc := NewTicketService(tickets, categories, users, nil)

	input := validTicketInput()
	input.Subject = ""
	_, err := svc.Create(context.Background(), input)
	assertAPIError(t, err, http.StatusBadRequest, "tenant_id, subject, status, priority, category_id, and customer_id are required")
}

func TestTicketCreateRejectsUnknownEnums(t *testing.T) {
	tickets, categories, users := ticketFixtures()
	svc := NewTicketService(tickets, categories, users, nil)

	input := validTicketInput()
	input.Status = "parked"
	_, err := svc.Create(context.Background(), input)
	assertAPIError(t, err, http.StatusBadRequest, "Status must be one of: open, in_progress, resolved, closed")

	input = validTicketInput()
	input.Priority = "whenever"
	_, err = svc.Create(context.Background(), input)
	assertAPIError(t, err, http.StatusBadRequest, "Priority must be one of: low, medium, high, urgent")
}

func TestTicketCreateScopesReferencesToTenant(t *testing.T) {
	tickets, categories, users := ticketFixtures()
	svc := NewTicketService(tickets, categories, users, nil)

	input := validTicketInput()
	input.CategoryID = "CAT_0000000002"
	_, err := svc.Create(context.Background(), input)
	assertAPIError(t, err, http.StatusBadRequest, "Category does not belong to the specified tenant")

	input = validTicketInput()
	input.CustomerID = "USR_0000000003"
	_, err = svc.Create(context.Background(), input)
	assertAPIError(t, err, http.StatusBadRequest, "Customer does not belong to the specified tenant")
}

func TestTicketCreateCustomerMustHaveCustomerRole(t *testing.T) {
	tickets, categories, users := ticketFixtures()
	svc := NewTicketService(tickets, categories, users, nil)

	input := validTicketInput()
	input.CustomerID = "USR_0000000002"
	_, err := svc.Create(context.Background(), input)
	assertAPIError(t, err, http.StatusBadRequest, "Customer ID must be a user with customer role")
}

func TestTicketCreateRejectsCustomerAsAgent(t *testing.T) {
	tickets, categories, users := ticketFixtures()
	svc := NewTicketService(tickets, categories, users, nil)

	input := validTicketInput()
	input.AgentID = strPtr("USR_0000000001")
	_, err := svc.Create(context.Background(), input)
	assertAPIError(t, err, http.StatusBadRequest, "Agent ID must be a user with agent or admin role")
}

func TestTicketCreatePublishesEvent(t *testing.T) {
	tickets, categories, users := ticketFixtures()
	dispatcher := events.NewInMemoryDispatcher()
	var published []events.Event
	dispatcher.Subscribe(events.EventTicketCreated, func(_ context.Context, e events.Event) error {
		published = append(published, e)
		return nil
	})
	svc := NewTicketService(tickets, categories, users, dispatcher)

	input := validTicketInput()
	input.AgentID = strPtr("USR_0000000002")
	ticket, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "TKT_0000000001", ticket.ID)

	require.Len(t, published, 1)
	assert.Equal(t, ticket.ID, published[0].EntityID)
	assert.Equal(t, "TNT_0000000001", published[0].TenantID)
}

func TestTicketUpdateRejectsSameCustomerAndAgent(t *testing.T) {
	tickets, categories, users := ticketFixtures()
	svc := NewTicketService(tickets, categories, users, nil)

	ticket, err := svc.Create(context.Background(), validTicketInput())
	require.NoError(t, err)

	// Assigning the existing customer as agent must fail even though only one
	// side changes.
	_, err = svc.Update(context.Background(), ticket.ID, TicketUpdateInput{AgentID: strPtr("USR_0000000001")})
	assertAPIError(t, err, http.StatusBadRequest, "Customer and agent cannot be the same person")
}

func TestTicketUpdateAppliesPartialFields(t *testing.T) {
	tickets, categories, users := ticketFixtures()
	svc := NewTicketService(tickets, categories, users, nil)

	ticket, err := svc.Create(context.Background(), validTicketInput())
	require.NoError(t, err)

	status := domain.TicketStatusResolved
	updated, err := svc.Update(context.Background(), ticket.ID, TicketUpdateInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusResolved, updated.Status)
	assert.Equal(t, ticket.Subject, updated.Subject)
	assert.Equal(t, ticket.Priority, updated.Priority)
	assert.Equal(t, ticket.CustomerID, updated.CustomerID)
}

func TestTicketUpdateUnknownTicket(t *testing.T) {
	tickets, categories, users := ticketFixtures()
	svc := NewTicketService(tickets, categories, users, nil)

	_, err := svc.Update(context.Background(), "TKT_9999999999", TicketUpdateInput{})
	assertAPIError(t, err, http.StatusNotFound, "Ticket not found")
}
