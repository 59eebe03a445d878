// Package model defines the domain types shared across the service.
package model

import "time"

// User is the persisted user record. ID is assigned by the store and
// RegistrationDate is stamped once at creation and never modified.
type User struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	RegistrationDate time.Time `json:"registrationDate"`
}

// UserEditRequest is the write-path wire shape for create and update.
// ID is absent on create and required on update.
type UserEditRequest struct {
	ID    *int64 `json:"id"`
	Name  string `json:"name" validate:"notblank,max=100"`
	Email string `json:"email" validate:"required,email,max=100"`
}

// UserView is the read-path projection of a User. It never round-trips
// back into storage.
type UserView struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	RegistrationDate time.Time `json:"registrationDate"`
}
