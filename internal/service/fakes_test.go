package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supporthub/api/internal/domain"
	"github.com/supporthub/api/pkg/util"
)

func assertAPIError(t *testing.T, err error, status int, message string) {
	t.Helper()
	var apiErr *util.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, status, apiErr.StatusCode)
	assert.Equal(t, message, apiErr.Message)
}

// In-memory repository fakes. Lookups return copies so assertions never see
// aliased state, and missing rows surface the same 404s the SQL layer builds.

type fakeTenantRepo struct {
	tenants map[string]*domain.Tenant
}

func newFakeTenantRepo(tenants ...*domain.Tenant) *fakeTenantRepo {
	repo := &fakeTenantRepo{tenants: make(map[string]*domain.Tenant)}
	for _, t := range tenants {
		repo.tenants[t.ID] = t
	}
	return repo
}

func (f *fakeTenantRepo) Create(_ context.Context, tenant *domain.Tenant) error {
	tenant.ID = fmt.Sprintf("TNT_%010d", len(f.tenants)+1)
	tenant.CreatedAt = time.Now()
	tenant.UpdatedAt = tenant.CreatedAt
	clone := *tenant
	f.tenants[tenant.ID] = &clone
	return nil
}

func (f *fakeTenantRepo) List(context.Context) ([]domain.Tenant, error) {
	out := make([]domain.Tenant, 0, len(f.tenants))
	for _, t := range f.tenants {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTenantRepo) GetByID(_ context.Context, id string) (*domain.Tenant, error) {
	t, ok := f.tenants[id]
	if !ok {
		return nil, util.NewNotFoundError("Tenant")
	}
	clone := *t
	return &clone, nil
}

func (f *fakeTenantRepo) Update(_ context.Context, tenant *domain.Tenant) error {
	if _, ok := f.tenants[tenant.ID]; !ok {
		return util.NewNotFoundError("Tenant")
	}
	clone := *tenant
	f.tenants[tenant.ID] = &clone
	return nil
}

func (f *fakeTenantRepo) Delete(_ context.Context, id string) (*domain.Tenant, error) {
	t, ok := f.tenants[id]
	if !ok {
		return nil, util.NewNotFoundError("Tenant")
	}
	delete(f.tenants, id)
	return t, nil
}

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = fmt.Sprintf("USR_%010d", len(f.users)+1)
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) List(context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, util.NewNotFoundError("User")
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) GetByIDInTenant(_ context.Context, id, tenantID string) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok || u.TenantID != tenantID {
		return nil, util.NewNotFoundError("User")
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return util.NewNotFoundError("User")
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, util.NewNotFoundError("User")
	}
	delete(f.users, id)
	return u, nil
}

type fakeCategoryRepo struct {
	categories map[string]*domain.Category
}

func newFakeCategoryRepo(categories ...*domain.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{categories: make(map[string]*domain.Category)}
	for _, c := range categories {
		repo.categories[c.ID] = c
	}
	return repo
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *domain.Category) error {
	category.ID = fmt.Sprintf("CAT_%010d", len(f.categories)+1)
	clone := *category
	f.categories[category.ID] = &clone
	return nil
}

func (f *fakeCategoryRepo) List(context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id string) (*domain.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, util.NewNotFoundError("Category")
	}
	clone := *c
	return &clone, nil
}

func (f *fakeCategoryRepo) GetByIDInTenant(_ context.Context, id, tenantID string) (*domain.Category, error) {
	c, ok := f.categories[id]
	if !ok || c.TenantID != tenantID {
		return nil, util.NewNotFoundError("Category")
	}
	clone := *c
	return &clone, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *domain.Category) error {
	if _, ok := f.categories[category.ID]; !ok {
		return util.NewNotFoundError("Category")
	}
	clone := *category
	f.categories[category.ID] = &clone
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id string) (*domain.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, util.NewNotFoundError("Category")
	}
	delete(f.categories, id)
	return c, nil
}

type fakeEscalationTypeRepo struct {
	types map[string]*domain.EscalationType
}

func newFakeEscalationTypeRepo(types ...*domain.EscalationType) *fakeEscalationTypeRepo {
	repo := &fakeEscalationTypeRepo{types: make(map[string]*domain.EscalationType)}
	for _, t := range types {
		repo.types[t.ID] = t
	}
	return repo
}

func (f *fakeEscalationTypeRepo) Create(_ context.Context, escType *domain.EscalationType) error {
	escType.ID = fmt.Sprintf("ESC_%010d", len(f.types)+1)
	clone := *escType
	f.types[escType.ID] = &clone
	return nil
}

func (f *fakeEscalationTypeRepo) List(context.Context) ([]domain.EscalationType, error) {
	out := make([]domain.EscalationType, 0, len(f.types))
	for _, t := range f.types {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeEscalationTypeRepo) GetByID(_ context.Context, id string) (*domain.EscalationType, error) {
	t, ok := f.types[id]
	if !ok {
		return nil, util.NewNotFoundError("Escalation type")
	}
	clone := *t
	return &clone, nil
}

func (f *fakeEscalationTypeRepo) GetByIDInTenant(_ context.Context, id, tenantID string) (*domain.EscalationType, error) {
	t, ok := f.types[id]
	if !ok || t.TenantID != tenantID {
		return nil, util.NewNotFoundError("Escalation type")
	}
	clone := *t
	return &clone, nil
}

func (f *fakeEscalationTypeRepo) Update(_ context.Context, escType *domain.EscalationType) error {
	if _, ok := f.types[escType.ID]; !ok {
		return util.NewNotFoundError("Escalation type")
	}
	clone := *escType
	f.types[escType.ID] = &clone
	return nil
}

func (f *fakeEscalationTypeRepo) Delete(_ context.Context, id string) (*domain.EscalationType, error) {
	t, ok := f.types[id]
	if !ok {
		return nil, util.NewNotFoundError("Escalation type")
	}
	delete(f.types, id)
	return t, nil
}

type fakeTemplateRepo struct {
	templates map[string]*domain.Template
}

func (f *fakeTemplateRepo) Create(_ context.Context, template *domain.Template) error {
	template.ID = fmt.Sprintf("TPL_%010d", len(f.templates)+1)
	clone := *template
	f.templates[template.ID] = &clone
	return nil
}

func (f *fakeTemplateRepo) List(context.Context) ([]domain.Template, error) {
	out := make([]domain.Template, 0, len(f.templates))
	for _, t := range f.templates {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTemplateRepo) GetByID(_ context.Context, id string) (*domain.Template, error) {
	t, ok := f.templates[id]
	if !ok {
		return nil, util.NewNotFoundError("Template")
	}
	clone := *t
	return &clone, nil
}

func (f *fakeTemplateRepo) Update(_ context.Context, template *domain.Template) error {
	if _, ok := f.templates[template.ID]; !ok {
		return util.NewNotFoundError("Template")
	}
	clone := *template
	f.templates[template.ID] = &clone
	return nil
}

func (f *fakeTemplateRepo) Delete(_ context.Context, id string) (*domain.Template, error) {
	t, ok := f.templates[id]
	if !ok {
		return nil, util.NewNotFoundError("Template")
	}
	delete(f.templates, id)
	return t, nil
}

type fakeTicketRepo struct {
	tickets map[string]*domain.Ticket
	events  []domain.ActivityEvent
}

func newFakeTicketRepo(tickets ...*domain.Ticket) *fakeTicketRepo {
	repo := &fakeTicketRepo{tickets: make(map[string]*domain.Ticket)}
	for _, t := range tickets {
		repo.tickets[t.ID] = t
	}
	return repo
}

func (f *fakeTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	ticket.ID = fmt.Sprintf("TKT_%010d", len(f.tickets)+1)
	ticket.CreatedAt = time.Now()
	ticket.UpdatedAt = ticket.CreatedAt
	clone := *ticket
	f.tickets[ticket.ID] = &clone
	return nil
}

func (f *fakeTicketRepo) List(context.Context) ([]domain.Ticket, error) {
	out := make([]domain.Ticket, 0, len(f.tickets))
	for _, t := range f.tickets {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTicketRepo) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	t, ok := f.tickets[id]
	if !ok {
		return nil, util.NewNotFoundError("Ticket")
	}
	clone := *t
	return &clone, nil
}

func (f *fakeTicketRepo) GetByIDInTenant(_ context.Context, id, tenantID string) (*domain.Ticket, error) {
	t, ok := f.tickets[id]
	if !ok || t.TenantID != tenantID {
		return nil, util.NewNotFoundError("Ticket")
	}
	clone := *t
	return &clone, nil
}

func (f *fakeTicketRepo) Update(_ context.Context, ticket *domain.Ticket) error {
	if _, ok := f.tickets[ticket.ID]; !ok {
		return util.NewNotFoundError("Ticket")
	}
	ticket.UpdatedAt = time.Now()
	clone := *ticket
	f.tickets[ticket.ID] = &clone
	return nil
}

func (f *fakeTicketRepo) Delete(_ context.Context, id string) (*domain.Ticket, error) {
	t, ok := f.tickets[id]
	if !ok {
		return nil, util.NewNotFoundError("Ticket")
	}
	delete(f.tickets, id)
	return t, nil
}

func (f *fakeTicketRepo) ActivityEvents(_ context.Context, since time.Time) ([]domain.ActivityEvent, error) {
	return filterEvents(f.events, since), nil
}

type fakeChatRepo struct {
	chats          map[string]*domain.Chat
	customerByChat map[string]string
	events         []domain.ActivityEvent
}

func newFakeChatRepo(chats ...*domain.Chat) *fakeChatRepo {
	repo := &fakeChatRepo{
		chats:          make(map[string]*domain.Chat),
		customerByChat: make(map[string]string),
	}
	for _, c := range chats {
		repo.chats[c.ID] = c
	}
	return repo
}

func (f *fakeChatRepo) Create(_ context.Context, chat *domain.Chat) error {
	chat.ID = fmt.Sprintf("CHT_%010d", len(f.chats)+1)
	chat.CreatedAt = time.Now()
	clone := *chat
	f.chats[chat.ID] = &clone
	return nil
}

func (f *fakeChatRepo) List(context.Context) ([]domain.Chat, error) {
	out := make([]domain.Chat, 0, len(f.chats))
	for _, c := range f.chats {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeChatRepo) GetByID(_ context.Context, id string) (*domain.Chat, error) {
	c, ok := f.chats[id]
	if !ok {
		return nil, util.NewNotFoundError("Chat")
	}
	clone := *c
	return &clone, nil
}

func (f *fakeChatRepo) GetWithCustomer(ctx context.Context, id string) (*domain.Chat, string, error) {
	c, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	return c, f.customerByChat[id], nil
}

func (f *fakeChatRepo) Update(_ context.Context, chat *domain.Chat) error {
	if _, ok := f.chats[chat.ID]; !ok {
		return util.NewNotFoundError("Chat")
	}
	clone := *chat
	f.chats[chat.ID] = &clone
	return nil
}

func (f *fakeChatRepo) Delete(_ context.Context, id string) (*domain.Chat, error) {
	c, ok := f.chats[id]
	if !ok {
		return nil, util.NewNotFoundError("Chat")
	}
	delete(f.chats, id)
	return c, nil
}

func (f *fakeChatRepo) ActivityEvents(_ context.Context, since time.Time) ([]domain.ActivityEvent, error) {
	return filterEvents(f.events, since), nil
}

type fakeChatMessageRepo struct {
	messages map[string]*domain.ChatMessage
}

func newFakeChatMessageRepo(messages ...*domain.ChatMessage) *fakeChatMessageRepo {
	repo := &fakeChatMessageRepo{messages: make(map[string]*domain.ChatMessage)}
	for _, m := range messages {
		repo.messages[m.ID] = m
	}
	return repo
}

func (f *fakeChatMessageRepo) Create(_ context.Context, msg *domain.ChatMessage) error {
	msg.ID = fmt.Sprintf("MSG_%010d", len(f.messages)+1)
	msg.SentAt = time.Now()
	clone := *msg
	f.messages[msg.ID] = &clone
	return nil
}

func (f *fakeChatMessageRepo) List(context.Context) ([]domain.ChatMessage, error) {
	out := make([]domain.ChatMessage, 0, len(f.messages))
	for _, m := range f.messages {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeChatMessageRepo) GetByID(_ context.Context, id string) (*domain.ChatMessage, error) {
	m, ok := f.messages[id]
	if !ok {
		return nil, util.NewNotFoundError("Chat message")
	}
	clone := *m
	return &clone, nil
}

func (f *fakeChatMessageRepo) Update(_ context.Context, msg *domain.ChatMessage) error {
	if _, ok := f.messages[msg.ID]; !ok {
		return util.NewNotFoundError("Chat message")
	}
	clone := *msg
	f.messages[msg.ID] = &clone
	return nil
}

func (f *fakeChatMessageRepo) Delete(_ context.Context, id string) (*domain.ChatMessage, error) {
	m, ok := f.messages[id]
	if !ok {
		return nil, util.NewNotFoundError("Chat message")
	}
	delete(f.messages, id)
	return m, nil
}

type fakeRecordingRepo struct {
	recordings map[string]*domain.Recording
	createErr  error
}

func newFakeRecordingRepo(recordings ...*domain.Recording) *fakeRecordingRepo {
	repo := &fakeRecordingRepo{recordings: make(map[string]*domain.Recording)}
	for _, r := range recordings {
		repo.recordings[r.ID] = r
	}
	return repo
}

func (f *fakeRecordingRepo) Create(_ context.Context, recording *domain.Recording) error {
	if f.createErr != nil {
		return f.createErr
	}
	recording.ID = fmt.Sprintf("REC_%010d", len(f.recordings)+1)
	recording.CreatedAt = time.Now()
	clone := *recording
	f.recordings[recording.ID] = &clone
	return nil
}

func (f *fakeRecordingRepo) List(context.Context) ([]domain.Recording, error) {
	out := make([]domain.Recording, 0, len(f.recordings))
	for _, r := range f.recordings {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRecordingRepo) GetByID(_ context.Context, id string) (*domain.Recording, error) {
	r, ok := f.recordings[id]
	if !ok {
		return nil, util.NewNotFoundError("Recording")
	}
	clone := *r
	return &clone, nil
}

func (f *fakeRecordingRepo) Update(_ context.Context, recording *domain.Recording) error {
	if _, ok := f.recordings[recording.ID]; !ok {
		return util.NewNotFoundError("Recording")
	}
	clone := *recording
	f.recordings[recording.ID] = &clone
	return nil
}

func (f *fakeRecordingRepo) Delete(_ context.Context, id string) (*domain.Recording, error) {
	r, ok := f.recordings[id]
	if !ok {
		return nil, util.NewNotFoundError("Recording")
	}
	delete(f.recordings, id)
	return r, nil
}

type fakeCommunicationRepo struct {
	communications map[string]*domain.Communication
	events         []domain.ActivityEvent
	createErr      error
}

func newFakeCommunicationRepo(communications ...*domain.Communication) *fakeCommunicationRepo {
	repo := &fakeCommunicationRepo{communications: make(map[string]*domain.Communication)}
	for _, c := range communications {
		repo.communications[c.ID] = c
	}
	return repo
}

func (f *fakeCommunicationRepo) Create(_ context.Context, comm *domain.Communication) error {
	if f.createErr != nil {
		return f.createErr
	}
	comm.ID = fmt.Sprintf("COM_%010d", len(f.communications)+1)
	comm.CreatedAt = time.Now()
	clone := *comm
	f.communications[comm.ID] = &clone
	return nil
}

func (f *fakeCommunicationRepo) List(context.Context) ([]domain.Communication, error) {
	out := make([]domain.Communication, 0, len(f.communications))
	for _, c := range f.communications {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCommunicationRepo) GetByID(_ context.Context, id string) (*domain.Communication, error) {
	c, ok := f.communications[id]
	if !ok {
		return nil, util.NewNotFoundError("Communication")
	}
	clone := *c
	return &clone, nil
}

func (f *fakeCommunicationRepo) Update(_ context.Context, comm *domain.Communication) error {
	if _, ok := f.communications[comm.ID]; !ok {
		return util.NewNotFoundError("Communication")
	}
	clone := *comm
	f.communications[comm.ID] = &clone
	return nil
}

func (f *fakeCommunicationRepo) Delete(_ context.Context, id string) (*domain.Communication, error) {
	c, ok := f.communications[id]
	if !ok {
		return nil, util.NewNotFoundError("Communication")
	}
	delete(f.communications, id)
	return c, nil
}

func (f *fakeCommunicationRepo) ActivityEvents(_ context.Context, since time.Time) ([]domain.ActivityEvent, error) {
	return filterEvents(f.events, since), nil
}

type fakeEscalationRepo struct {
	escalations map[string]*domain.Escalation
	events      []domain.ActivityEvent
	createErr   error
}

func newFakeEscalationRepo(escalations ...*domain.Escalation) *fakeEscalationRepo {
	repo := &fakeEscalationRepo{escalations: make(map[string]*domain.Escalation)}
	for _, e := range escalations {
		repo.escalations[e.ID] = e
	}
	return repo
}

func (f *fakeEscalationRepo) Create(_ context.Context, escalation *domain.Escalation) error {
	if f.createErr != nil {
		return f.createErr
	}
	escalation.ID = fmt.Sprintf("ESC_%010d", len(f.escalations)+1)
	escalation.CreatedAt = time.Now()
	clone := *escalation
	f.escalations[escalation.ID] = &clone
	return nil
}

func (f *fakeEscalationRepo) List(context.Context) ([]domain.Escalation, error) {
	out := make([]domain.Escalation, 0, len(f.escalations))
	for _, e := range f.escalations {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEscalationRepo) GetByID(_ context.Context, id string) (*domain.Escalation, error) {
	e, ok := f.escalations[id]
	if !ok {
		return nil, util.NewNotFoundError("Escalation")
	}
	clone := *e
	return &clone, nil
}

func (f *fakeEscalationRepo) Update(_ context.Context, escalation *domain.Escalation) error {
	if _, ok := f.escalations[escalation.ID]; !ok {
		return util.NewNotFoundError("Escalation")
	}
	clone := *escalation
	f.escalations[escalation.ID] = &clone
	return nil
}

func (f *fakeEscalationRepo) Delete(_ context.Context, id string) (*domain.Escalation, error) {
	e, ok := f.escalations[id]
	if !ok {
		return nil, util.NewNotFoundError("Escalation")
	}
	delete(f.escalations, id)
	return e, nil
}

func (f *fakeEscalationRepo) ActivityEvents(_ context.Context, since time.Time) ([]domain.ActivityEvent, error) {
	return filterEvents(f.events, since), nil
}

// filterEvents mirrors the created_at >= since predicate the SQL projections
// apply.
func filterEvents(events []domain.ActivityEvent, since time.Time) []domain.ActivityEvent {
	out := make([]domain.ActivityEvent, 0, len(events))
	for _, e := range events {
		if !e.CreatedAt.Before(since) {
			out = append(out, e)
		}
	}
	return out
}

func strPtr(s string) *string { return &s }
