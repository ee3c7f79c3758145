// Package models defines the persisted domain records of curio. All records
// carry json tags because they round-trip through string blobs in the local
// store; decode and encode must be lossless.
package models

// User is a registered account. Emails are stored lowercased and are unique
// (case-insensitive). Users are never mutated or deleted once created.
type User struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

// Session marks who is currently logged in. At most one session exists per
// store; logging in as another user replaces it.
type Session struct {
	Email string `json:"email"`
}
