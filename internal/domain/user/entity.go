package user

// User is the only persisted entity. Field order matches the JSON shape.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
