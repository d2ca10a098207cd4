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

type TicketCreateInput struct {
	TenantID    string                `json:"tenant_id" validate:"required"`
	Subject     string                `json:"subject" validate:"required"`
	Description *string               `json:"description"`
	Status      domain.TicketStatus   `json:"status" validate:"required"`
	Priority    domain.TicketPriority `json:"priority" validate:"required"`
	CategoryID  string                `json:"category_id" validate:"required"`
	CustomerID  string                `json:"customer_id" validate:"required"`
	AgentID     *string               `json:"agent_id"`
}

type TicketUpdateInput struct {
	Subject     *string                `json:"subject"`
	Description *string                `json:"description"`
	Status      *domain.TicketStatus   `json:"status"`
	Priority    *domain.TicketPriority `json:"priority"`
	CategoryID  *string                `json:"category_id"`
	CustomerID  *string                `json:"customer_id"`
	AgentID     *string                `json:"agent_id"`
}

type TicketService struct {
	tickets    repository.TicketRepository
	categories repository.CategoryRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

func NewTicketService(
	tickets repository.TicketRepository,
	categories repository.CategoryRepository,
	users repository.UserRepository,
	dispatcher events.Dispatcher,
) *TicketService {
	return &TicketService{tickets: tickets, categories: categories, users: users, dispatcher: dispatcher}
}

func (s *TicketService) Create(ctx context.Context, input TicketCreateInput) (*domain.Ticket, error) {
	if err := requireFields(input, "tenant_id, subject, status, priority, category_id, and customer_id are required"); err != nil {
		return nil, err
	}
	if !input.Status.Valid() {
		return nil, util.NewValidationError("Status must be one of: open, in_progress, resolved, closed")
	}
	if !input.Priority.Valid() {
		return nil, util.NewValidationError("Priority must be one of: low, medium, high, urgent")
	}
	if err := s.checkReferences(ctx, input.TenantID, input.CategoryID, input.CustomerID, input.AgentID); err != nil {
		return nil, err
	}
	ticket := &domain.Ticket{
		TenantID:    input.TenantID,
		Subject:     input.Subject,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		CategoryID:  input.CategoryID,
		CustomerID:  input.CustomerID,
		AgentID:     input.AgentID,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventTicketCreated, ticket)
	return ticket, nil
}

func (s *TicketService) List(ctx context.Context) ([]domain.Ticket, error) {
	return s.tickets.List(ctx)
}

func (s *TicketService) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	return s.tickets.GetByID(ctx, id)
}

func (s *TicketService) Update(ctx context.Context, id string, input TicketUpdateInput) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, util.NewValidationError("Status must be one of: open, in_progress, resolved, closed")
	}
	if input.Priority != nil && !input.Priority.Valid() {
		return nil, util.NewValidationError("Priority must be one of: low, medium, high, urgent")
	}

	// Reference checks run against effective post-update values so a
	// customer/agent collision is caught no matter which side changed.
	categoryID := ticket.CategoryID
	if input.CategoryID != nil {
		categoryID = *input.CategoryID
	}
	customerID := ticket.CustomerID
	if input.CustomerID != nil {
		customerID = *input.CustomerID
	}
	agentID := ticket.AgentID
	if input.AgentID != nil {
		agentID = input.AgentID
	}
	if err := s.checkReferences(ctx, ticket.TenantID, categoryID, customerID, agentID); err != nil {
		return nil, err
	}

	if input.Subject != nil {
		ticket.Subject = *input.Subject
	}
	if input.Description != nil {
		ticket.Description = input.Description
	}
	if input.Status != nil {
		ticket.Status = *input.Status
	}
	if input.Priority != nil {
		ticket.Priority = *input.Priority
	}
	ticket.CategoryID = categoryID
	ticket.CustomerID = customerID
	ticket.AgentID = agentID

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventTicketUpdated, ticket)
	return ticket, nil
}

func (s *TicketService) Delete(ctx context.Context, id string) (*domain.Ticket, error) {
	return s.tickets.Delete(ctx, id)
}

// checkReferences verifies category, customer and agent all live in the
// ticket's tenant, hold the right role, and are distinct people.
func (s *TicketService) checkReferences(ctx context.Context, tenantID, categoryID, customerID string, agentID *string) error {
	if _, err := s.categories.GetByIDInTenant(ctx, categoryID, tenantID); err != nil {
		return scopeError(err, "Category does not belong to the specified tenant")
	}
	customer, err := s.users.GetByIDInTenant(ctx, customerID, tenantID)
	if err != nil {
		return scopeError(err, "Customer does not belong to the specified tenant")
	}
	if customer.Role != domain.RoleCustomer {
		return util.NewValidationError("Customer ID must be a user with customer role")
	}
	if agentID != nil {
		agent, err := s.users.GetByIDInTenant(ctx, *agentID, tenantID)
		if err != nil {
			return scopeError(err, "Agent does not belong to the specified tenant")
		}
		if !agent.Role.IsStaff() {
			return util.NewValidationError("Agent ID must be a user with agent or admin role")
		}
		if *agentID == customerID {
			return util.NewValidationError("Customer and agent cannot be the same person")
		}
	}
	return nil
}

func (s *TicketService) publish(ctx context.Context, eventType events.EventType, ticket *domain.Ticket) {
	if s.dispatcher == nil {
		return
	}
	userID := ticket.CustomerID
	if ticket.AgentID != nil {
		userID = *ticket.AgentID
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		TenantID:  ticket.TenantID,
		EntityID:  ticket.ID,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Payload:   ticket,
	})
}
