// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the authorization role attached to a user account and carried in
// every token issued for it.
type Role string

const (
	// RoleUser is the default role assigned on registration.
	RoleUser Role = "User"

	// RoleAdmin grants access to administrative operations such as prompt deletion.
	RoleAdmin Role = "Admin"
)

// IsValid reports whether r belongs to the closed set of known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// String implements [fmt.Stringer].
func (r Role) String() string {
	return string(r)
}

// User represents a registered account.
// Username is unique and case-sensitive; it never changes after registration.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique login of the user.
	Username string `json:"username"`

	// PasswordHash is the bcrypt digest of the user's password.
	// The plaintext password is never stored.
	PasswordHash string `json:"-"`

	// Role is the authorization role of the account.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the payload accepted by registration and login.
// Role is honoured only at registration and defaults to [RoleUser].
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role,omitempty"`
}

// AuthResult is returned by a successful login.
type AuthResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
