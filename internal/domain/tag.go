package domain

// ProjectTag is a reusable label. Tasks reference tags by name, not by id.
type ProjectTag struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
