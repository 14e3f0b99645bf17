package handlers

import (
	"errors"
	"net/http"

	"nanny_booking/internal/usecase"
	"nanny_booking/pkg"
)

var (
	errInvalidPayload  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidSession  = pkg.NewDomainErrorSimple("INVALID_SESSION", "A session id is required", http.StatusBadRequest)
	errInvalidProvider = pkg.NewDomainErrorSimple("INVALID_PROVIDER", "A provider id is required", http.StatusBadRequest)
)

// mapSessionError covers the errors every session-scoped use case can return.
func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return errInvalidSession
	case errors.Is(err, usecase.ErrInvalidProviderID):
		return errInvalidProvider
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapPricingError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrNoProviderSelected) {
		return pkg.NewDomainErrorSimple("NO_PROVIDER_SELECTED", "Select a provider or send one to price", http.StatusUnprocessableEntity)
	}
	return mapSessionError(err)
}

func mapBookingError(err error) *pkg.AppError {
	var validation *usecase.ValidationError
	var creation *usecase.BookingCreationError
	switch {
	case errors.As(err, &validation):
		return pkg.NewDomainError("BOOKING_INCOMPLETE", "Some booking details are missing", err, http.StatusUnprocessableEntity).
			WithDetails(validation.MissingFields...)
	case errors.As(err, &creation):
		return pkg.NewDomainError("BOOKING_CREATION_FAILED", "The booking could not be created, please try again", err, http.StatusBadGateway).
			WithDetails(creation.Cause.Error())
	case errors.Is(err, usecase.ErrSubmissionInFlight):
		return pkg.NewDomainErrorSimple("SUBMISSION_IN_FLIGHT", "A booking is already being submitted for this session", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Sign in to book a nanny", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidBookingID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid booking id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	default:
		return mapSessionError(err)
	}
}
