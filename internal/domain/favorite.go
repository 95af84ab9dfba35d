package domain

import "time"

// Favorite marks a work as favorited by a user. At most one favorite exists
// per (user, work) pair; toggling flips between present and absent.
type Favorite struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	WorkID    string    `json:"work_id"`
	CreatedAt time.Time `json:"created_at"`
}

// FavoritedWork is a favorite joined with its catalog entry, as returned
// by the favorites listing.
type FavoritedWork struct {
	Work
	FavoriteID string `json:"favorite_id"`
}
