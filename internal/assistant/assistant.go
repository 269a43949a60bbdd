// Package assistant translates natural-language queries into booking
// intents via a generative model. It is a thin collaborator around the
// booking core: every "book" intent it produces goes through the exact
// same propose contract as a direct API request, so the no-overlap
// invariant holds regardless of where a proposal came from.
package assistant

import (
	"context"
	"encoding/json"
	"regexp"
	"time"

	bookingservice "bookable/internal/bookings/service"
	"bookable/pkg/config"
	apperrors "bookable/pkg/errors"
	"bookable/pkg/model"
)

// Model is the generative backend. Implemented by GeminiClient in
// production and by fakes in tests.
type Model interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Catalog is the read-only catalog slice the assistant needs for prompt
// grounding.
type Catalog interface {
	GetTenant(ctx context.Context, tenantID string) (*model.Tenant, error)
	ListResources(ctx context.Context, tenantID string) ([]model.Resource, error)
}

// Identity is the authenticated requester on whose behalf the assistant
// acts. It comes from verified token claims, never from the query text.
type Identity struct {
	Name  string
	Email string
}

const (
	ActionAnswer   = "answer"
	ActionBooked   = "booked"
	ActionConflict = "conflict"
)

// Reply is the assistant's response to one query.
type Reply struct {
	Action      string         `json:"action"`
	Message     string         `json:"message,omitempty"`
	Booking     *model.Booking `json:"booking,omitempty"`
	Suggestions []model.Slot   `json:"suggestions,omitempty"`
}

// intent mirrors the JSON contract the prompt imposes on the model.
type intent struct {
	Action     string `json:"action"`
	Message    string `json:"message"`
	ResourceID string `json:"resourceId"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Attendees  int    `json:"attendees"`
}

type Service struct {
	model    Model
	catalog  Catalog
	bookings bookingservice.BookingService
	cfg      *config.Config
	now      func() time.Time
}

func NewService(m Model, catalog Catalog, bookings bookingservice.BookingService, cfg *config.Config) *Service {
	return &Service{
		model:    m,
		catalog:  catalog,
		bookings: bookings,
		cfg:      cfg,
		now:      time.Now,
	}
}

// HandleQuery grounds the model in the tenant's current state, asks it
// to classify the query, and dispatches the resulting intent.
func (s *Service) HandleQuery(ctx context.Context, tenantID string, user Identity, query string) (*Reply, error) {
	if query == "" {
		return nil, apperrors.InvalidInput("Query cannot be empty")
	}

	tenant, err := s.catalog.GetTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	resources, err := s.catalog.ListResources(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var userBookings []model.Booking
	for _, b := range bookings {
		if b.UserEmail == user.Email {
			userBookings = append(userBookings, b)
		}
	}

	prompt := buildSystemPrompt(tenant, resources, bookings, userBookings, user, s.now())

	raw, err := s.model.GenerateContent(ctx, prompt+"\n\n## User Query\n"+query)
	if err != nil {
		s.cfg.Log.Error("Assistant model call failed", "tenant_id", tenantID, "error", err)
		return nil, apperrors.Unavailable("Assistant")
	}

	parsed := parseIntent(raw)

	if parsed.Action == "book" {
		return s.book(ctx, tenantID, user, parsed)
	}
	return &Reply{Action: ActionAnswer, Message: parsed.Message}, nil
}

func (s *Service) book(ctx context.Context, tenantID string, user Identity, parsed intent) (*Reply, error) {
	start, errStart := time.Parse(time.RFC3339, parsed.StartTime)
	end, errEnd := time.Parse(time.RFC3339, parsed.EndTime)
	if errStart != nil || errEnd != nil {
		return &Reply{
			Action:  ActionAnswer,
			Message: "I couldn't pin down the exact times for that booking. Could you rephrase with a specific date and time?",
		}, nil
	}

	attendees := parsed.Attendees
	if attendees <= 0 {
		attendees = 1
	}

	req := &model.BookingRequest{
		ResourceID: parsed.ResourceID,
		UserEmail:  user.Email,
		UserName:   user.Name,
		StartTime:  start,
		EndTime:    end,
		Attendees:  attendees,
	}

	booking, err := s.bookings.Propose(ctx, tenantID, req)
	if err != nil {
		appErr := apperrors.AsAppError(err)
		if appErr.Code == apperrors.CodeConflict {
			reply := &Reply{
				Action:  ActionConflict,
				Message: appErr.Message,
			}
			if slots, ok := appErr.Details["suggestions"].([]model.Slot); ok {
				reply.Suggestions = slots
			}
			return reply, nil
		}
		return nil, err
	}

	return &Reply{Action: ActionBooked, Booking: booking}, nil
}

var jsonFenceRe = regexp.MustCompile("```json\\s*([\\s\\S]*?)\\s*```")

// parseIntent extracts the model's JSON, tolerating a ```json fence.
// Unparseable output degrades to a plain answer carrying the raw text
// rather than an error; the model occasionally breaks its own contract.
func parseIntent(raw string) intent {
	jsonText := raw
	if m := jsonFenceRe.FindStringSubmatch(raw); m != nil {
		jsonText = m[1]
	}

	var parsed intent
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		return intent{
			Action:  ActionAnswer,
			Message: "I seem to have encountered a formatting error. Here is the raw response I generated:\n\n---\n" + raw,
		}
	}
	return parsed
}
