package service

import "errors"

var (
	// ErrInvalidInput marks caller mistakes that should map to 400/422.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotGroupMember is returned when the caller is not on the group roster.
	ErrNotGroupMember = errors.New("not a member of this group")

	// ErrPermissionDenied is returned when the caller may not modify the record.
	ErrPermissionDenied = errors.New("permission denied")
)
