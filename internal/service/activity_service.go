package service

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/supporthub/api/internal/domain"
	"github.com/supporthub/api/internal/repository"
	"github.com/supporthub/api/pkg/util"
)

// Feed parameter bounds and defaults.
const (
	FeedDefaultLimit = 20
	feedMaxLimit     = 100
	FeedDefaultDays  = 30
	feedMaxDays      = 365
)

type ActivityListInput struct {
	EntityType string
	TenantID   string
	Limit      int
	Offset     int
	Days       int
}

type ActivityPagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

type ActivityFilters struct {
	EntityType string  `json:"entity_type"`
	TenantID   *string `json:"tenant_id"`
	Days       int     `json:"days"`
}

type ActivityFeed struct {
	Activities []domain.Activity  `json:"activities"`
	Pagination ActivityPagination `json:"pagination"`
	Filters    ActivityFilters    `json:"filters"`
}

// activitySource is the per-entity projection the feed merges.
type activitySource interface {
	ActivityEvents(ctx context.Context, since time.Time) ([]domain.ActivityEvent, error)
}

type ActivityService struct {
	tickets        repository.TicketRepository
	chats          repository.ChatRepository
	escalations    repository.EscalationRepository
	communications repository.CommunicationRepository
	users          repository.UserRepository
}

func NewActivityService(
	tickets repository.TicketRepository,
	chats repository.ChatRepository,
	escalations repository.EscalationRepository,
	communications repository.CommunicationRepository,
	users repository.UserRepository,
) *ActivityService {
	return &ActivityService{
		tickets:        tickets,
		chats:          chats,
		escalations:    escalations,
		communications: communications,
		users:          users,
	}
}

// List builds the reverse-chronological feed. Pagination and total are
// computed over the merged, tenant-unfiltered union; the tenant filter is
// applied to the already-cut page, so a filtered page can carry fewer than
// limit items even when more exist. Callers depend on that accounting.
// Limit and Days must carry their defaults when unset; zero is out of range.
func (s *ActivityService) List(ctx context.Context, input ActivityListInput) (*ActivityFeed, error) {
	if input.EntityType == "" {
		input.EntityType = "all"
	}
	sources, err := s.sourcesFor(input.EntityType)
	if err != nil {
		return nil, err
	}
	if input.Limit < 1 || input.Limit > feedMaxLimit {
		return nil, util.NewValidationError("Limit must be between 1 and 100")
	}
	if input.Offset < 0 {
		return nil, util.NewValidationError("Offset must be 0 or greater")
	}
	if input.Days < 1 || input.Days > feedMaxDays {
		return nil, util.NewValidationError("Days must be between 1 and 365")
	}

	since := time.Now().UTC().AddDate(0, 0, -input.Days)
	merged := make([]domain.ActivityEvent, 0)
	for _, source := range sources {
		events, err := source.ActivityEvents(ctx, since)
		if err != nil {
			return nil, err
		}
		merged = append(merged, events...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	total := len(merged)
	start := input.Offset
	if start > total {
		start = total
	}
	end := start + input.Limit
	if end > total {
		end = total
	}
	page := merged[start:end]

	if input.TenantID != "" {
		filtered := page[:0:0]
		for _, event := range page {
			if event.TenantID == input.TenantID {
				filtered = append(filtered, event)
			}
		}
		page = filtered
	}

	activities, err := s.resolveUsers(ctx, page)
	if err != nil {
		return nil, err
	}

	feed := &ActivityFeed{
		Activities: activities,
		Pagination: ActivityPagination{
			Total:   total,
			Limit:   input.Limit,
			Offset:  input.Offset,
			HasMore: input.Offset+input.Limit < total,
		},
		Filters: ActivityFilters{EntityType: input.EntityType, Days: input.Days},
	}
	if input.TenantID != "" {
		feed.Filters.TenantID = &input.TenantID
	}
	return feed, nil
}

// GetByID reconstructs the action history of one record and resolves its
// actor.
func (s *ActivityService) GetByID(ctx context.Context, entityType, id string) (*domain.ActivityDetail, error) {
	var detail *domain.ActivityDetail
	var err error
	switch entityType {
	case "ticket":
		detail, err = s.ticketDetail(ctx, id)
	case "chat":
		detail, err = s.chatDetail(ctx, id)
	case "escalation":
		detail, err = s.escalationDetail(ctx, id)
	case "communication":
		detail, err = s.communicationDetail(ctx, id)
	default:
		return nil, util.NewValidationError("Invalid entity_type. Must be one of: ticket, chat, escalation, communication")
	}
	if err != nil {
		return nil, err
	}
	detail.User = s.lookupUser(ctx, detail.UserID)
	return detail, nil
}

func (s *ActivityService) sourcesFor(entityType string) ([]activitySource, error) {
	switch entityType {
	case "all":
		return []activitySource{s.tickets, s.chats, s.escalations, s.communications}, nil
	case "tickets":
		return []activitySource{s.tickets}, nil
	case "chats":
		return []activitySource{s.chats}, nil
	case "escalations":
		return []activitySource{s.escalations}, nil
	case "communications":
		return []activitySource{s.communications}, nil
	default:
		return nil, util.NewValidationError("Invalid entity_type. Must be one of: all, tickets, chats, escalations, communications")
	}
}

// resolveUsers attaches actor details to each page entry. Lookups are
// independent reads, so distinct users are fetched concurrently.
func (s *ActivityService) resolveUsers(ctx context.Context, page []domain.ActivityEvent) ([]domain.Activity, error) {
	ids := make(map[string]struct{})
	for _, event := range page {
		if event.UserID != nil {
			ids[*event.UserID] = struct{}{}
		}
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	resolved := make(map[string]*domain.ActivityUser, len(ids))
	for id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			user := s.lookupUserID(ctx, id)
			mu.Lock()
			resolved[id] = user
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	activities := make([]domain.Activity, 0, len(page))
	for _, event := range page {
		activity := domain.Activity{ActivityEvent: event}
		if event.UserID != nil {
			activity.User = resolved[*event.UserID]
		}
		activities = append(activities, activity)
	}
	return activities, nil
}

func (s *ActivityService) lookupUser(ctx context.Context, userID *string) *domain.ActivityUser {
	if userID == nil {
		return nil
	}
	return s.lookupUserID(ctx, *userID)
}

// lookupUserID returns nil for users that no longer exist; the feed keeps
// the row and renders a null actor.
func (s *ActivityService) lookupUserID(ctx context.Context, id string) *domain.ActivityUser {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		var apiErr *util.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil
		}
		return nil
	}
	return &domain.ActivityUser{Name: user.Name, Email: user.Email, Role: user.Role}
}

func (s *ActivityService) ticketDetail(ctx context.Context, id string) (*domain.ActivityDetail, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	actions := []domain.ActivityAction{domain.ActionTicketCreated}
	var updatedAt *time.Time
	if !ticket.UpdatedAt.Equal(ticket.CreatedAt) {
		actions = append(actions, domain.ActionTicketUpdated)
		updatedAt = &ticket.UpdatedAt
	}
	customerID := ticket.CustomerID
	return &domain.ActivityDetail{
		ID:         ticket.ID,
		TenantID:   ticket.TenantID,
		UserID:     &customerID,
		CreatedAt:  ticket.CreatedAt,
		UpdatedAt:  updatedAt,
		EntityType: "ticket",
		Title:      ticket.Subject,
		Actions:    actions,
	}, nil
}

func (s *ActivityService) chatDetail(ctx context.Context, id string) (*domain.ActivityDetail, error) {
	chat, err := s.chats.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	actions := []domain.ActivityAction{domain.ActionChatStarted}
	title := "Chat started"
	if chat.Closed() {
		actions = append(actions, domain.ActionChatClosed)
		title = "Chat closed"
	}
	starterID := chat.StartedByUserID
	return &domain.ActivityDetail{
		ID:         chat.ID,
		TenantID:   chat.TenantID,
		UserID:     &starterID,
		CreatedAt:  chat.CreatedAt,
		ClosedAt:   chat.ClosedAt,
		EntityType: "chat",
		Title:      title,
		Actions:    actions,
	}, nil
}

func (s *ActivityService) escalationDetail(ctx context.Context, id string) (*domain.ActivityDetail, error) {
	escalation, err := s.escalations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Escalations carry no tenant column; it comes from the ticket.
	ticket, err := s.tickets.GetByID(ctx, escalation.TicketID)
	if err != nil {
		return nil, err
	}
	raisedBy := escalation.RaisedByUserID
	return &domain.ActivityDetail{
		ID:         escalation.ID,
		TenantID:   ticket.TenantID,
		UserID:     &raisedBy,
		CreatedAt:  escalation.CreatedAt,
		EntityType: "escalation",
		Title:      "Escalation raised",
		Actions:    []domain.ActivityAction{domain.ActionEscalationRaised},
	}, nil
}

func (s *ActivityService) communicationDetail(ctx context.Context, id string) (*domain.ActivityDetail, error) {
	comm, err := s.communications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	userID := comm.UserID
	return &domain.ActivityDetail{
		ID:         comm.ID,
		TenantID:   comm.TenantID,
		UserID:     &userID,
		CreatedAt:  comm.CreatedAt,
		EntityType: "communication",
		Title:      string(comm.Type),
		Actions:    []domain.ActivityAction{domain.ActionCommunicationCreated},
	}, nil
}
