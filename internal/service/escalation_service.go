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

// maxReasonLength caps the free-text reason on an escalation.
const maxReasonLength = 2000

type EscalationCreateInput struct {
	TicketID       string  `json:"ticket_id" validate:"required"`
	RaisedByUserID string  `json:"raised_by_user_id" validate:"required"`
	TypeID         string  `json:"type_id" validate:"required"`
	Reason         *string `json:"reason"`
}

type EscalationUpdateInput struct {
	TypeID *string `json:"type_id"`
	Reason *string `json:"reason"`
}

type EscalationService struct {
	escalations repository.EscalationRepository
	tickets     repository.TicketRepository
	users       repository.UserRepository
	types       repository.EscalationTypeRepository
	dispatcher  events.Dispatcher
}

func NewEscalationService(
	escalations repository.EscalationRepository,
	tickets repository.TicketRepository,
	users repository.UserRepository,
	types repository.EscalationTypeRepository,
	dispatcher events.Dispatcher,
) *EscalationService {
	return &EscalationService{
		escalations: escalations,
		tickets:     tickets,
		users:       users,
		types:       types,
		dispatcher:  dispatcher,
	}
}

func (s *EscalationService) Create(ctx context.Context, input EscalationCreateInput) (*domain.Escalation, error) {
	if err := requireFields(input, "ticket_id, raised_by_user_id, and type_id are required"); err != nil {
		return nil, err
	}
	// The ticket anchors the tenant every other reference is checked against.
	ticket, err := s.tickets.GetByID(ctx, input.TicketID)
	if err != nil {
		return nil, scopeError(err, "Ticket not found")
	}
	user, err := s.users.GetByIDInTenant(ctx, input.RaisedByUserID, ticket.TenantID)
	if err != nil {
		return nil, scopeError(err, "User does not belong to the ticket's tenant")
	}
	if !user.Role.IsStaff() {
		return nil, util.NewAuthorizationError("Only agents and admins can raise escalations")
	}
	if _, err := s.types.GetByIDInTenant(ctx, input.TypeID, ticket.TenantID); err != nil {
		return nil, scopeError(err, "Escalation type does not belong to the ticket's tenant")
	}
	if input.Reason != nil && len(*input.Reason) > maxReasonLength {
		return nil, util.NewValidationError("Reason cannot exceed 2000 characters")
	}
	escalation := &domain.Escalation{
		TicketID:       input.TicketID,
		RaisedByUserID: input.RaisedByUserID,
		TypeID:         input.TypeID,
		Reason:         input.Reason,
	}
	if err := s.escalations.Create(ctx, escalation); err != nil {
		return nil, err
	}
	s.publish(ctx, escalation, ticket.TenantID)
	return escalation, nil
}

func (s *EscalationService) List(ctx context.Context) ([]domain.Escalation, error) {
	return s.escalations.List(ctx)
}

func (s *EscalationService) GetByID(ctx context.Context, id string) (*domain.Escalation, error) {
	return s.escalations.GetByID(ctx, id)
}

func (s *EscalationService) Update(ctx context.Context, id string, input EscalationUpdateInput) (*domain.Escalation, error) {
	escalation, err := s.escalations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Reason != nil && len(*input.Reason) > maxReasonLength {
		return nil, util.NewValidationError("Reason cannot exceed 2000 characters")
	}
	if input.TypeID != nil {
		ticket, err := s.tickets.GetByID(ctx, escalation.TicketID)
		if err != nil {
			return nil, err
		}
		if _, err := s.types.GetByIDInTenant(ctx, *input.TypeID, ticket.TenantID); err != nil {
			return nil, scopeError(err, "Escalation type does not belong to the ticket's tenant")
		}
		escalation.TypeID = *input.TypeID
	}
	if input.Reason != nil {
		escalation.Reason = input.Reason
	}
	if err := s.escalations.Update(ctx, escalation); err != nil {
		return nil, err
	}
	return escalation, nil
}

func (s *EscalationService) Delete(ctx context.Context, id string) (*domain.Escalation, error) {
	return s.escalations.Delete(ctx, id)
}

func (s *EscalationService) publish(ctx context.Context, escalation *domain.Escalation, tenantID string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.New().String(),
		Type:      events.EventEscalationRaised,
		TenantID:  tenantID,
		EntityID:  escalation.ID,
		UserID:    escalation.RaisedByUserID,
		Timestamp: time.Now().UTC(),
		Payload:   escalation,
	})
}
