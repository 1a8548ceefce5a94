package models

// ContactForm is the outbound payload of the contact section
type ContactForm struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// ContactErrorResponse is the body of a rejected contact submission
type ContactErrorResponse struct {
	Error string `json:"error,omitempty"`
}
