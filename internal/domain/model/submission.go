package model

import (
	"errors"
	"time"
)

// ErrInvalidSubmission indicates a contact or newsletter submission failed
// validation. It is wrapped with the offending field.
var ErrInvalidSubmission = errors.New("invalid submission")

// ContactMessage is a message left through the contact form.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}

// Subscriber is a newsletter sign-up.
type Subscriber struct {
	Email        string
	SubscribedAt time.Time
}
