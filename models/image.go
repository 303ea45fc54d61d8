package models

// Image is a hosted asset reference.
type Image struct {
	URL      string `bson:"url" json:"url"`
	PublicID string `bson:"publicId" json:"public_id"`
}
