package models

// GratitudeEntry is one day's list of things the user is grateful for.
type GratitudeEntry struct {
	ID        string   `json:"id"`
	CreatedAt string   `json:"createdAt"` // RFC3339
	Date      string   `json:"date"`      // YYYY-MM-DD, user-assigned
	Entries   []string `json:"entries"`
}
