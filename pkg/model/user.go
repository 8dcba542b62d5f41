package model

const RoleAdmin = "admin"

// User is keyed by email. Role is absent for regular users and set to
// RoleAdmin only through the promotion endpoint; profile upserts never
// touch it.
type User struct {
	ID        string `json:"_id,omitempty" bson:"_id,omitempty"`
	Email     string `json:"email" bson:"email" validate:"required,email"`
	Role      string `json:"role,omitempty" bson:"role,omitempty"`
	Name      string `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,max=100"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,max=20"`
	Education string `json:"education,omitempty" bson:"education,omitempty" validate:"omitempty,max=200"`
	Address   string `json:"address,omitempty" bson:"address,omitempty" validate:"omitempty,max=200"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
