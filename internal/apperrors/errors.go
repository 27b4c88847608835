package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the request cannot be applied in the current state,
// e.g. volunteer capacity reached or a singleton row violated.
var ErrConflict = errors.New("conflict with current state")

// ErrUnauthorized indicates that no valid credential accompanied the request.
var ErrUnauthorized = errors.New("not authenticated")

// ErrForbidden indicates the authenticated caller lacks the required role.
var ErrForbidden = errors.New("forbidden")

// ErrRefreshTokenExpired indicates the presented refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")
