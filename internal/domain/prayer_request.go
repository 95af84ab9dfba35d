package domain

import "time"

// MaxPrayerRequestsReturned caps the prayer request listing.
const MaxPrayerRequestsReturned = 20

// PrayerRequest is a prayer submitted by an authenticated user. The author is
// always recorded in storage; anonymity is applied when the request is read.
type PrayerRequest struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Request     string    `json:"request"`
	IsAnonymous bool      `json:"is_anonymous"`
	CreatedAt   time.Time `json:"created_at"`
}

// View returns the read-time projection of the request. For anonymous
// requests the author's user ID is withheld; the stored record keeps it.
func (p *PrayerRequest) View() PrayerRequestView {
	view := PrayerRequestView{
		ID:          p.ID,
		Request:     p.Request,
		IsAnonymous: p.IsAnonymous,
		CreatedAt:   p.CreatedAt,
	}
	if !p.IsAnonymous {
		view.UserID = p.UserID
	}
	return view
}

// PrayerRequestView is the public projection of a prayer request.
// UserID is empty when the request is anonymous.
type PrayerRequestView struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id,omitempty"`
	Request     string    `json:"request"`
	IsAnonymous bool      `json:"is_anonymous"`
	CreatedAt   time.Time `json:"created_at"`
}
