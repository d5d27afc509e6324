package domain

import "time"

// ContactMessage is a contact-form submission. The backend assigns ID
// and CreatedAt; this system never retains a message past the request.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Language  Language  `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

// PageView is a single navigation record for a public page.
type PageView struct {
	ID        int64     `json:"id"`
	Page      string    `json:"page"`
	CreatedAt time.Time `json:"created_at"`
}
