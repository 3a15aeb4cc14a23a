package service

import (
	"context"
	"errors"
	"time"

	"shareit-booking/internal/booking"
	"shareit-booking/internal/domain"
	"shareit-booking/internal/logger"
	"shareit-booking/internal/repository"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	clock       booking.Clock
	publisher   EventPublisher
}

// NewBookingService wires the booking lifecycle. publisher may be nil.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	clock booking.Clock,
	publisher EventPublisher,
) BookingService {
	if clock == nil {
		clock = booking.SystemClock{}
	}
	return &bookingService{
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		clock:       clock,
		publisher:   publisher,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*domain.Booking, error) {
	logger.EnterMethod("bookingService.CreateBooking", "bookerID", bookerID, "itemID", itemID)

	if err := booking.ValidateRange(start, end); err != nil {
		logger.ExitMethodWithError("bookingService.CreateBooking", err, "bookerID", bookerID)
		return nil, err
	}
	booker, err := s.userRepo.GetByID(ctx, bookerID)
	if err != nil {
		logger.ExitMethodWithError("bookingService.CreateBooking", err, "bookerID", bookerID)
		return nil, err
	}
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		logger.ExitMethodWithError("bookingService.CreateBooking", err, "itemID", itemID)
		return nil, err
	}
	if err := booking.ValidateAvailability(start, end, item, bookerID); err != nil {
		logger.ExitMethodWithError("bookingService.CreateBooking", err, "itemID", itemID)
		return nil, err
	}

	b := booking.NewBooking(item, booker, start, end)
	if err := s.bookingRepo.Create(ctx, b); err != nil {
		logger.ExitMethodWithError("bookingService.CreateBooking", err, "itemID", itemID)
		return nil, err
	}

	s.publish(ctx, domain.BookingEventCreated, b)
	logger.ExitMethod("bookingService.CreateBooking", "bookingID", b.ID)
	return b, nil
}

func (s *bookingService) DecideBooking(ctx context.Context, bookingID, deciderID int64, approve bool) (*domain.Booking, error) {
	logger.EnterMethod("bookingService.DecideBooking", "bookingID", bookingID, "deciderID", deciderID, "approve", approve)

	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		logger.ExitMethodWithError("bookingService.DecideBooking", err, "bookingID", bookingID)
		return nil, err
	}
	if !booking.CanDecide(deciderID, b) {
		logger.ExitMethodWithError("bookingService.DecideBooking", domain.ErrForbidden, "bookingID", bookingID, "deciderID", deciderID)
		return nil, domain.ErrForbidden
	}
	target, err := booking.Decide(b, approve)
	if err != nil {
		logger.ExitMethodWithError("bookingService.DecideBooking", err, "bookingID", bookingID, "status", b.Status)
		return nil, err
	}
	// Another decision may have landed since the read; the write only
	// succeeds while the row is still WAITING.
	if err := s.bookingRepo.UpdateStatusIfWaiting(ctx, bookingID, target); err != nil {
		logger.ExitMethodWithError("bookingService.DecideBooking", err, "bookingID", bookingID)
		return nil, err
	}
	b.Status = target

	s.publish(ctx, booking.EventType(target), b)
	logger.ExitMethod("bookingService.DecideBooking", "bookingID", bookingID, "status", target)
	return b, nil
}

func (s *bookingService) GetBooking(ctx context.Context, viewerID, bookingID int64) (*domain.Booking, error) {
	logger.EnterMethod("bookingService.GetBooking", "viewerID", viewerID, "bookingID", bookingID)

	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		logger.ExitMethodWithError("bookingService.GetBooking", err, "bookingID", bookingID)
		return nil, err
	}
	// Strangers get the same answer as for a missing booking.
	if !booking.CanView(viewerID, b) {
		err := domain.NotFoundf("booking %d", bookingID)
		logger.ExitMethodWithError("bookingService.GetBooking", err, "bookingID", bookingID, "viewerID", viewerID)
		return nil, err
	}

	logger.ExitMethod("bookingService.GetBooking", "bookingID", bookingID)
	return b, nil
}

func (s *bookingService) ListBookerBookings(ctx context.Context, userID int64, state string, page domain.Page) ([]domain.Booking, error) {
	logger.EnterMethod("bookingService.ListBookerBookings", "userID", userID, "state", state)

	st, err := booking.ParseState(state)
	if err != nil {
		logger.ExitMethodWithError("bookingService.ListBookerBookings", err, "userID", userID)
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		logger.ExitMethodWithError("bookingService.ListBookerBookings", err, "userID", userID)
		return nil, err
	}
	candidates, err := s.bookingRepo.ListByBooker(ctx, userID)
	if err != nil {
		logger.ExitMethodWithError("bookingService.ListBookerBookings", err, "userID", userID)
		return nil, err
	}

	result := page.Apply(booking.Classify(st, candidates, s.clock.Now()))
	logger.ExitMethod("bookingService.ListBookerBookings", "userID", userID, "count", len(result))
	return result, nil
}

func (s *bookingService) ListOwnerBookings(ctx context.Context, userID int64, state string, page domain.Page) ([]domain.Booking, error) {
	logger.EnterMethod("bookingService.ListOwnerBookings", "userID", userID, "state", state)

	st, err := booking.ParseState(state)
	if err != nil {
		logger.ExitMethodWithError("bookingService.ListOwnerBookings", err, "userID", userID)
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		logger.ExitMethodWithError("bookingService.ListOwnerBookings", err, "userID", userID)
		return nil, err
	}
	itemIDs, err := s.itemRepo.ListIDsByOwner(ctx, userID)
	if err != nil {
		logger.ExitMethodWithError("bookingService.ListOwnerBookings", err, "userID", userID)
		return nil, err
	}
	if len(itemIDs) == 0 {
		logger.ExitMethod("bookingService.ListOwnerBookings", "userID", userID, "count", 0)
		return []domain.Booking{}, nil
	}
	candidates, err := s.bookingRepo.ListByItemIDs(ctx, itemIDs)
	if err != nil {
		logger.ExitMethodWithError("bookingService.ListOwnerBookings", err, "userID", userID)
		return nil, err
	}

	result := page.Apply(booking.Classify(st, candidates, s.clock.Now()))
	logger.ExitMethod("bookingService.ListOwnerBookings", "userID", userID, "count", len(result))
	return result, nil
}

// publish runs after the write has committed, so a failure is only logged.
func (s *bookingService) publish(ctx context.Context, eventType string, b *domain.Booking) {
	if s.publisher == nil {
		return
	}
	event := domain.NewBookingEvent(eventType, b, s.clock.Now())
	if err := s.publisher.PublishBookingEvent(ctx, event); err != nil && !errors.Is(err, context.Canceled) {
		logger.WarnContext(ctx, "Failed to publish booking event", "type", eventType, "bookingID", b.ID, "error", err)
	}
}
