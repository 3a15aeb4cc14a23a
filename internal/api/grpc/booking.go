package grpc

import (
	"context"

	"shareit-booking/internal/domain"
	"shareit-booking/internal/service"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const defaultPageSize = 10

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*BookingResponse, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.ItemID <= 0 {
		return nil, status.Error(codes.InvalidArgument, "item_id is required")
	}
	if req.Start.IsZero() || req.End.IsZero() {
		return nil, status.Error(codes.InvalidArgument, "start and end are required")
	}

	b, err := h.svc.CreateBooking(ctx, userID, req.ItemID, req.Start, req.End)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &BookingResponse{Booking: MapDomainBookingToMessage(b)}, nil
}

func (h *BookingHandler) DecideBooking(ctx context.Context, req *DecideBookingRequest) (*BookingResponse, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	b, err := h.svc.DecideBooking(ctx, req.BookingID, userID, req.Approved)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &BookingResponse{Booking: MapDomainBookingToMessage(b)}, nil
}

func (h *BookingHandler) GetBooking(ctx context.Context, req *GetBookingRequest) (*BookingResponse, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	b, err := h.svc.GetBooking(ctx, userID, req.BookingID)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &BookingResponse{Booking: MapDomainBookingToMessage(b)}, nil
}

func (h *BookingHandler) ListBookerBookings(ctx context.Context, req *ListBookingsRequest) (*ListBookingsResponse, error) {
	return h.list(ctx, req, h.svc.ListBookerBookings)
}

func (h *BookingHandler) ListOwnerBookings(ctx context.Context, req *ListBookingsRequest) (*ListBookingsResponse, error) {
	return h.list(ctx, req, h.svc.ListOwnerBookings)
}

type listFunc func(ctx context.Context, userID int64, state string, page domain.Page) ([]domain.Booking, error)

func (h *BookingHandler) list(ctx context.Context, req *ListBookingsRequest, fn listFunc) (*ListBookingsResponse, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.From < 0 || req.Size < 0 {
		return nil, status.Error(codes.InvalidArgument, "from and size must not be negative")
	}
	state := req.State
	if state == "" {
		state = "ALL"
	}
	size := int(req.Size)
	if size == 0 {
		size = defaultPageSize
	}

	bookings, err := fn(ctx, userID, state, domain.Page{Offset: int(req.From), Limit: size})
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &ListBookingsResponse{Bookings: MapDomainBookingsToMessages(bookings)}, nil
}
