package domain

// Team groups owners. Members keeps the order owners were added in.
type Team struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description,omitempty"`
	Members     []int64 `db:"members" json:"members"`
}
