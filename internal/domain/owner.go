package domain

// Owner is a person tasks can be assigned to.
type Owner struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
}
