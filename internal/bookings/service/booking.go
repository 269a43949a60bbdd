package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	bookingserrors "bookable/internal/bookings/errors"
	"bookable/internal/bookings/ledger"
	"bookable/internal/bookings/policy"
	"bookable/internal/bookings/schedule"
	"bookable/internal/bookings/validator"
	"bookable/pkg/config"
	apperrors "bookable/pkg/errors"
	"bookable/pkg/events"
	"bookable/pkg/model"
	"bookable/pkg/sanitizer"
)

// Catalog is the read-only slice of the tenant/resource catalog the
// booking core needs.
type Catalog interface {
	GetTenant(ctx context.Context, tenantID string) (*model.Tenant, error)
	GetResource(ctx context.Context, tenantID, resourceID string) (*model.Resource, error)
}

type BookingService interface {
	Propose(ctx context.Context, tenantID string, req *model.BookingRequest) (*model.Booking, error)
	Cancel(ctx context.Context, tenantID, bookingID string) error
	List(ctx context.Context, tenantID string) ([]model.Booking, error)
}

type bookingService struct {
	ledger    *ledger.Ledger
	catalog   Catalog
	validator *validator.BookingValidator
	publisher events.Publisher
	cfg       *config.Config

	// Injected so tests control time and IDs; the core never reads
	// ambient state.
	now   func() time.Time
	newID func() string
}

func NewBookingService(
	bookingLedger *ledger.Ledger,
	catalog Catalog,
	bookingValidator *validator.BookingValidator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		ledger:    bookingLedger,
		catalog:   catalog,
		validator: bookingValidator,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
		newID: func() string {
			return "booking-" + uuid.NewString()
		},
	}
}

// Propose validates a candidate booking and commits it if the resource
// is free. The conflict check and the commit run as one atomic ledger
// update, so two racing proposals for the same slot cannot both land.
// On conflict the returned error carries up to MaxSuggestions alternative
// slots. Proposals from the assistant arrive through this same path with
// no relaxed validation.
func (s *bookingService) Propose(ctx context.Context, tenantID string, req *model.BookingRequest) (*model.Booking, error) {
	if tenantID == "" {
		return nil, apperrors.InvalidInput("Tenant ID cannot be empty")
	}

	s.sanitize(req)
	if err := s.validator.ValidateRequest(req); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "tenant_id", tenantID, "error", err)
		return nil, apperrors.Validation("Invalid booking request", map[string]any{"error": err.Error()})
	}

	tenant, err := s.catalog.GetTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	resource, err := s.catalog.GetResource(ctx, tenantID, req.ResourceID)
	if err != nil {
		return nil, err
	}
	if !resource.IsActive {
		return nil, apperrors.InvalidInput(fmt.Sprintf("Resource %s is inactive", resource.ID))
	}

	if err := policy.ValidateDuration(req.StartTime, req.EndTime, tenant.Settings); err != nil {
		switch {
		case errors.Is(err, bookingserrors.ErrTooShort):
			return nil, apperrors.InvalidInput("Booking must be at least 30 minutes long")
		case errors.Is(err, bookingserrors.ErrTooLong):
			return nil, apperrors.InvalidInput(fmt.Sprintf("Booking cannot be longer than %g hours", tenant.Settings.MaxBookingHours))
		default:
			return nil, apperrors.Internal("Failed to validate booking duration", err)
		}
	}

	buffer := tenant.Settings.Buffer()
	candidate := schedule.Interval{Start: req.StartTime, End: req.EndTime}

	var booking model.Booking
	err = s.ledger.Update(func(tx *ledger.Tx) error {
		snapshot := tx.ForResource(req.ResourceID)

		if hit := schedule.FindConflict(candidate, req.ResourceID, snapshot, buffer); hit != nil {
			slots := schedule.SuggestSlots(candidate, req.ResourceID, *hit, buffer, s.cfg.MaxSuggestions, snapshot)
			return apperrors.BookingConflict(
				"Booking conflict detected. The resource is already booked for the selected time.",
				schedule.Slots(slots),
			)
		}

		booking = model.Booking{
			ID:         s.newID(),
			TenantID:   tenantID,
			ResourceID: resource.ID,
			UserEmail:  req.UserEmail,
			UserName:   req.UserName,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
			Attendees:  req.Attendees,
			Status:     model.StatusConfirmed,
			TotalCost:  policy.TotalCost(req.StartTime, req.EndTime, resource.HourlyRate),
			CreatedAt:  s.now().UTC(),
		}
		tx.Append(booking)
		return nil
	})
	if err != nil {
		s.cfg.Log.Info("Booking rejected with conflict",
			"tenant_id", tenantID,
			"resource_id", req.ResourceID,
			"start_time", req.StartTime,
			"end_time", req.EndTime,
		)
		return nil, err
	}

	s.publish(ctx, events.BookingCreated(booking, booking.CreatedAt))

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"tenant_id", booking.TenantID,
		"resource_id", booking.ResourceID,
		"start_time", booking.StartTime,
		"total_cost", booking.TotalCost,
	)
	return &booking, nil
}

func (s *bookingService) Cancel(ctx context.Context, tenantID, bookingID string) error {
	if tenantID == "" || bookingID == "" {
		return apperrors.InvalidInput("Tenant ID and booking ID are required")
	}

	var removed model.Booking
	err := s.ledger.Update(func(tx *ledger.Tx) error {
		b, ok := tx.Remove(tenantID, bookingID)
		if !ok {
			return apperrors.NotFoundWithID("Booking", bookingID)
		}
		removed = b
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events.BookingCancelled(tenantID, removed.ResourceID, bookingID, s.now().UTC()))

	s.cfg.Log.Info("Booking cancelled", "id", bookingID, "tenant_id", tenantID)
	return nil
}

func (s *bookingService) List(ctx context.Context, tenantID string) ([]model.Booking, error) {
	if tenantID == "" {
		return nil, apperrors.InvalidInput("Tenant ID cannot be empty")
	}
	return s.ledger.ListForTenant(tenantID), nil
}

func (s *bookingService) sanitize(req *model.BookingRequest) {
	req.UserName = sanitizer.SanitizeName(req.UserName)
	req.UserEmail = sanitizer.SanitizeEmail(req.UserEmail)
}

// publish is best-effort: event delivery failures are logged, never
// surfaced to the booking caller.
func (s *bookingService) publish(ctx context.Context, event events.BookingEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.cfg.Log.Error("Failed to publish booking event",
			"type", event.Type,
			"booking_id", event.BookingID,
			"error", err,
		)
	}
}
