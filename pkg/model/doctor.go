package model

type Doctor struct {
	ID        string `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Email     string `json:"email" bson:"email" validate:"required,email"`
	Specialty string `json:"specialty" bson:"specialty" validate:"required,min=2,max=100"`
	Education string `json:"education,omitempty" bson:"education,omitempty" validate:"omitempty,max=200"`
	Img       string `json:"img,omitempty" bson:"img,omitempty" validate:"omitempty,url"`
}
