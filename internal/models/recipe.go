package models

// Recipe is owned by exactly one user. CreatorID is never exposed in API
// responses; ownership is enforced server-side.
type Recipe struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	CreatorID    int    `json:"-"`
}
