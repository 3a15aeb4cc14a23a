package config

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityAccess                      // Access token required
)

// EndpointSecurityConfig maps gRPC methods to their required security level
var EndpointSecurityConfig = map[string]SecurityLevel{
	// Health - Public
	"/grpc.health.v1.Health/Check": SecurityPublic,
	"/grpc.health.v1.Health/Watch": SecurityPublic,

	// BookingService - Access Protected
	"/shareit.booking.v1.BookingService/CreateBooking":      SecurityAccess,
	"/shareit.booking.v1.BookingService/DecideBooking":      SecurityAccess,
	"/shareit.booking.v1.BookingService/GetBooking":         SecurityAccess,
	"/shareit.booking.v1.BookingService/ListBookerBookings": SecurityAccess,
	"/shareit.booking.v1.BookingService/ListOwnerBookings":  SecurityAccess,
}

// GetSecurityLevel returns the security level for a given method
func GetSecurityLevel(method string) SecurityLevel {
	if level, exists := EndpointSecurityConfig[method]; exists {
		return level
	}
	// Default to highest security for unknown endpoints
	return SecurityAccess
}
