package model

// Service is a bookable treatment in the catalog. Slots is the full
// daily slot sequence; availability responses replace it with the
// subset still open for the requested date, never persisting the
// narrowed list back.
type Service struct {
	ID    string   `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string   `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Slots []string `json:"slots" bson:"slots" validate:"required,min=1,dive,min=2,max=30"`
	Price int      `json:"price" bson:"price" validate:"required,min=1"`
}

// ServiceName is the projection returned by the public catalog listing.
type ServiceName struct {
	ID   string `json:"_id,omitempty" bson:"_id,omitempty"`
	Name string `json:"name" bson:"name"`
}
