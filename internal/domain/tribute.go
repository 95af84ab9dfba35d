package domain

import "time"

// MaxTributesReturned caps the tribute wall listing.
const MaxTributesReturned = 50

// Tribute is a public message of remembrance left by an authenticated user.
// The author may delete their own tribute; nobody else can.
type Tribute struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	AuthorName string    `json:"author_name"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

// IsOwnedBy reports whether the tribute belongs to the given user.
func (t *Tribute) IsOwnedBy(userID string) bool {
	return t.UserID == userID
}
