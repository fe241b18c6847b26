package entity

// FavoriteEntry records that a user favorited a place. The entry holds a
// snapshot of the place as it was when favorited; the existence of the
// entry is the favorite flag, there is no separate boolean anywhere.
type FavoriteEntry struct {
	UserID  string
	PlaceID string
	Place   *Place
}
