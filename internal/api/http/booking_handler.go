package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"shareit-booking/internal/domain"
	"shareit-booking/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

const (
	defaultPageSize = 10
	localTimeLayout = "2006-01-02T15:04:05"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type createBookingRequest struct {
	ItemID int64  `json:"itemId" validate:"required,gt=0"`
	Start  string `json:"start" validate:"required"`
	End    string `json:"end" validate:"required"`
}

// BookingHandler serves the /bookings REST resource.
type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// NewRouter registers the booking routes behind auth, plus an open /health.
func NewRouter(svc service.BookingService, auth *Authenticator) *mux.Router {
	h := NewBookingHandler(svc)

	r := mux.NewRouter()
	r.Use(RequestID, AccessLog)
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	b := r.PathPrefix("/bookings").Subrouter()
	b.Use(auth.Middleware)
	b.HandleFunc("", h.CreateBooking).Methods(http.MethodPost)
	b.HandleFunc("", h.ListBookerBookings).Methods(http.MethodGet)
	b.HandleFunc("/owner", h.ListOwnerBookings).Methods(http.MethodGet)
	b.HandleFunc("/{id:[0-9]+}", h.GetBooking).Methods(http.MethodGet)
	b.HandleFunc("/{id:[0-9]+}", h.DecideBooking).Methods(http.MethodPatch)
	return r
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	start, err := parseTime(req.Start)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid start: "+err.Error())
		return
	}
	end, err := parseTime(req.End)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid end: "+err.Error())
		return
	}

	b, err := h.svc.CreateBooking(r.Context(), userID, req.ItemID, start, end)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBookingResponse(b))
}

func (h *BookingHandler) DecideBooking(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())
	bookingID, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	approve, err := parseApproved(r.URL.Query().Get("approved"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	b, err := h.svc.DecideBooking(r.Context(), bookingID, userID, approve)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponse(b))
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())
	bookingID, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	b, err := h.svc.GetBooking(r.Context(), userID, bookingID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponse(b))
}

func (h *BookingHandler) ListBookerBookings(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())
	state, page, err := listParams(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	bookings, err := h.svc.ListBookerBookings(r.Context(), userID, state, page)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponses(bookings))
}

func (h *BookingHandler) ListOwnerBookings(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())
	state, page, err := listParams(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	bookings, err := h.svc.ListOwnerBookings(r.Context(), userID, state, page)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponses(bookings))
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid booking id")
	}
	return id, nil
}

// parseApproved accepts only true or false, in any case.
func parseApproved(raw string) (bool, error) {
	switch {
	case strings.EqualFold(raw, "true"):
		return true, nil
	case strings.EqualFold(raw, "false"):
		return false, nil
	}
	return false, fmt.Errorf("approved must be true or false, got %q", raw)
}

// listParams reads state (default ALL) and from/size paging.
func listParams(r *http.Request) (string, domain.Page, error) {
	q := r.URL.Query()
	state := q.Get("state")
	if state == "" {
		state = "ALL"
	}

	from, err := intParam(q.Get("from"), 0)
	if err != nil || from < 0 {
		return "", domain.Page{}, fmt.Errorf("from must be a non-negative integer")
	}
	size, err := intParam(q.Get("size"), defaultPageSize)
	if err != nil || size <= 0 {
		return "", domain.Page{}, fmt.Errorf("size must be a positive integer")
	}
	return state, domain.Page{Offset: from, Limit: size}, nil
}

func intParam(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// parseTime accepts RFC 3339 or a zone-less local timestamp.
func parseTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation(localTimeLayout, raw, time.Local)
}

func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}
