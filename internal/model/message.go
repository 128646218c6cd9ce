package model

import "time"

// Message is a contact form submission. It is written once and never read
// back by the API.
type Message struct {
	Name    string `json:"name" validate:"min=2,max=80"`
	Email   string `json:"email" validate:"email_shape"`
	Message string `json:"message" validate:"min=10,max=2000"`
	// Source is where the form was sent from (cta, footer, sticky, ...).
	Source    *string   `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks name, email and message constraints.
func (m *Message) Validate() error {
	return validateStruct("Message", m)
}
