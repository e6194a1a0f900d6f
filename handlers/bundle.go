package handlers

import (
	userRepo "vedicjivan/database/repository/user"
)

// HandlerBundle groups all endpoint handlers for route registration.
type HandlerBundle struct {
	Auth         *AuthHandler
	Bookings     *BookingHandler
	Availability *AvailabilityHandler
	Payments     *PaymentHandler
	Admin        *AdminHandler

	// UserRepo is handed to the auth middleware so it can load the
	// authenticated user per request.
	UserRepo userRepo.UserRepository
}
