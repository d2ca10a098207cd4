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

func escalationFixtures() (*fakeEscalationRepo, *fakeTicketRepo, *fakeUserRepo, *fakeEscalationTypeRepo) {
	escalations := newFakeEscalationRepo()
	tickets := newFakeTicketRepo(
		&domain.Ticket{ID: "TKT_0000000001", TenantID: "TNT_0000000001", Subject: "Broken login"},
	)
	users := newFakeUserRepo(
		&domain.User{ID: "USR_0000000001", TenantID: "TNT_0000000001", Name: "Lin", Role: domain.RoleAgent},
		&domain.User{ID: "USR_0000000002", TenantID: "TNT_0000000001", Name: "Ada", Role: domain.RoleCustomer},
	)
	types := newFakeEscalationTypeRepo(
		&domain.EscalationType{ID: "ESC_0000000001", TenantID: "TNT_0000000001", Label: "SLA breach"},
		&domain.EscalationType{ID: "ESC_0000000002", TenantID: "TNT_0000000002", Label: "VIP"},
	)
	return escalations, tickets, users, types
}

func validEscalationInput() EscalationCreateInput {
	return EscalationCreateInput{
		TicketID:       "TKT_0000000001",
		RaisedByUserID: "USR_0000000001",
		TypeID:         "ESC_0000000001",
	}
}

func TestEscalationCreateRequiresStaffRole(t *testing.T) {
	escalations, tickets, users, types := escalationFixtures()
	svc := NewEscalationService(escalations, tickets, users, types, nil)

	input := validEscalationInput()
	input.RaisedByUserID = "USR_0000000002"
	_, err := svc.Create(context.Background(), input)
	assertAPIError(t, err, http.StatusForbidden, "Only agents and admins can raise escalations")
}

func TestEscalationCreateTypeScopedToTicketTenant(t *testing.T) {
	escalations, tickets, users, types := escalationFixtures()
	svc := NewEscalationService(escalations, tickets, users, types, nil)

	input := validEscalationInput()
	input.TypeID = "ESC_0000000002"
	_, err := svc.Create(context.Background(), input)
	assertAPIError(t, err, http.StatusBadRequest, "Escalation type does not belong to the ticket's tenant")
}

func TestEscalationCreateCapsReasonLength(t *testing.T) {
	escalations, tickets, users, types := escalationFixtures()
	svc := NewEscalationService(escalations, tickets, users, types, nil)

	input := validEscalationInput()
	input.Reason = strPtr(strings.Repeat("x", maxReasonLength+1))
	_, err := svc.Create(context.Background(), input)
	assertAPIError(t, err, http.StatusBadRequest, "Reason cannot exceed 2000 characters")
}

func TestEscalationCreateSurfacesConflicts(t *testing.T) {
	escalations, tickets, users, types := escalationFixtures()
	svc := NewEscalationService(escalations, tickets, users, types, nil)

	escalations.createErr = util.NewConflictError("Ticket is already escalated")
	_, err := svc.Create(context.Background(), validEscalationInput())
	assertAPIError(t, err, http.StatusConflict, "Ticket is already escalated")

	escalations.createErr = util.NewConflictError("You have recently escalated this ticket")
	_, err = svc.Create(context.Background(), validEscalationInput())
	assertAPIError(t, err, http.StatusConflict, "You have recently escalated this ticket")
}

func TestEscalationCreateSuccess(t *testing.T) {
	escalations, tickets, users, types := escalationFixtures()
	svc := NewEscalationService(escalations, tickets, users, types, nil)

	input := validEscalationInput()
	input.Reason = strPtr("Customer threatened to churn")
	escalation, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "ESC_0000000001", escalation.ID)
	assert.Equal(t, "TKT_0000000001", escalation.TicketID)
}

func TestEscalationUpdatePersistsTypeChange(t *testing.T) {
	escalations, tickets, users, types := escalationFixtures()
	types.types["ESC_0000000003"] = &domain.EscalationType{
		ID: "ESC_0000000003", TenantID: "TNT_0000000001", Label: "Legal",
	}
	svc := NewEscalationService(escalations, tickets, users, types, nil)

	created, err := svc.Create(context.Background(), validEscalationInput())
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, EscalationUpdateInput{
		TypeID: strPtr("ESC_0000000003"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ESC_0000000003", updated.TypeID)

	stored, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ESC_0000000003", stored.TypeID)
}

func TestEscalationUpdateTypeScopedToTicketTenant(t *testing.T) {
	escalations, tickets, users, types := escalationFixtures()
	svc := NewEscalationService(escalations, tickets, users, types, nil)

	created, err := svc.Create(context.Background(), validEscalationInput())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, EscalationUpdateInput{
		TypeID: strPtr("ESC_0000000002"),
	})
	assertAPIError(t, err, http.StatusBadRequest, "Escalation type does not belong to the ticket's tenant")
}

func TestEscalationCreateUnknownTicket(t *testing.T) {
	escalations, tickets, users, types := escalationFixtures()
	svc := NewEscalationService(escalations, tickets, users, types, nil)

	input := validEscalationInput()
	input.TicketID = "TKT_9999999999"
	_, err := svc.Create(context.Background(), input)
	assertAPIError(t, err, http.StatusBadRequest, "Ticket not found")
}
