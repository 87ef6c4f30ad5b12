// Package common defines shared constants and sentinel errors used across
// client and server layers of the task board. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Lookup errors.
	ErrUserNotFound    = errors.New("user not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrCardNotFound    = errors.New("card not found")

	// Conflict errors (the thing already exists or is already in that state).
	ErrUserExists       = errors.New("user already exists")
	ErrProjectExists    = errors.New("project already exists")
	ErrCardExists       = errors.New("card already exists")
	ErrAlreadyMember    = errors.New("user is already a member")
	ErrAlreadyLoggedIn  = errors.New("user is already logged in")
	ErrAlreadyLoggedOut = errors.New("user is already logged out")

	// Permission errors.
	ErrWrongPassword  = errors.New("wrong password")
	ErrNotMember      = errors.New("user is not a project member")
	ErrProjectNotDone = errors.New("project has cards not yet done")

	// Card movement errors.
	ErrIllegalMove  = errors.New("illegal card movement")
	ErrUnknownState = errors.New("unknown card state")

	// Protocol errors.
	ErrBadRequest = errors.New("bad request")
)
