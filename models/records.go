package models

import "time"

// Inquiry is a customer contact request.
type Inquiry struct {
	ID           string    `bson:"id" json:"id"`
	FirstName    string    `bson:"firstName" json:"firstName"`
	LastName     string    `bson:"lastName" json:"lastName"`
	Email        string    `bson:"email" json:"email"`
	MobileNumber string    `bson:"mobileNumber" json:"mobileNumber"`
	Message      string    `bson:"message" json:"message"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Review is a testimonial shown on the site.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	Username  string    `bson:"username" json:"username"`
	Message   string    `bson:"message" json:"message"`
	Star      int       `bson:"star" json:"star"`
	Image     *Image    `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

type InquiryRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	Message      string `json:"message"`
}

type ReviewInput struct {
	Username string `json:"username" form:"username"`
	Message  string `json:"message" form:"message"`
	Star     int    `json:"star" form:"star"`
}
