//nolint:revive // types is a standard Go package name pattern
package types

// ContactMessage represents a contact form submission.
type ContactMessage struct {
	Name    string `json:"name" validate:"required,min=2,max=100,personname"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Subject string `json:"subject,omitempty" validate:"max=150"`
	Message string `json:"message" validate:"required,min=10,max=2000"`
}
