package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Authentication-specific error types
const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeAccountInactive    ErrorType = "account_inactive"
	ErrorTypeTokenExpired       ErrorType = "token_expired"
	ErrorTypeTokenInvalid       ErrorType = "token_invalid"
)

// AuthError is an AppError raised by the identity layer
type AuthError struct {
	*AppError
	// ShouldLog is false for expected failures such as a wrong password
	ShouldLog bool
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.AppError.Error()
}

// Unwrap exposes the embedded AppError to errors.As
func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewInvalidCredentialsError does not reveal whether the email or the password was wrong.
func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError: newAppError(ErrorTypeInvalidCredentials, http.StatusUnauthorized, "Invalid email or password", nil),
	}
}

// NewAccountInactiveError creates an error for deactivated accounts
func NewAccountInactiveError() *AuthError {
	return &AuthError{
		AppError: newAppError(ErrorTypeAccountInactive, http.StatusUnauthorized, "Account is not active", nil),
	}
}

// NewTokenExpiredError creates an error for expired access tokens
func NewTokenExpiredError(tokenType string) *AuthError {
	return &AuthError{
		AppError: newAppError(ErrorTypeTokenExpired, http.StatusUnauthorized,
			fmt.Sprintf("%s has expired", tokenType), []string{"Please login again"}),
	}
}

// NewTokenInvalidError creates an error for malformed or tampered tokens
func NewTokenInvalidError(tokenType string) *AuthError {
	return &AuthError{
		AppError: newAppError(ErrorTypeTokenInvalid, http.StatusUnauthorized,
			fmt.Sprintf("Invalid %s", tokenType), nil),
		ShouldLog: true,
	}
}

// GetAuthError extracts AuthError from the error chain
func GetAuthError(err error) *AuthError {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr
	}
	return nil
}

// ShouldLogAuthError reports whether an authentication failure deserves a log line
func ShouldLogAuthError(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.ShouldLog
	}
	return true
}
