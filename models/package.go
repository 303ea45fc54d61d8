package models

import (
	"io"
	"time"
)

const (
	MaxPackageImages = 5
	MaxPackageTags   = 5
)

// PackageTags is the fixed tag vocabulary.
var PackageTags = []string{
	"Popular Destinations",
	"Seasonal Specials",
	"Family-Friendly Tours",
	"Adventure & Treks",
	"Couples & Honeymoon",
	"Budget Friendly Options",
}

func IsPackageTag(tag string) bool {
	for _, t := range PackageTags {
		if t == tag {
			return true
		}
	}
	return false
}

type ItineraryDay struct {
	Day         int    `bson:"day" json:"day"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
}

// Package is a sellable travel product.
type Package struct {
	ID            string         `bson:"id" json:"id"`
	Title         string         `bson:"title" json:"title"`
	Description   string         `bson:"description" json:"description"`
	Price         float64        `bson:"price" json:"price"`
	Discount      float64        `bson:"discount" json:"discount"`
	FinalPrice    float64        `bson:"finalPrice" json:"finalPrice"`
	Duration      string         `bson:"duration" json:"duration"`
	Images        []Image        `bson:"images" json:"images"`
	GroupID       string         `bson:"group,omitempty" json:"group,omitempty"`
	Hot           bool           `bson:"hot" json:"hot"`
	Itinerary     []ItineraryDay `bson:"itinerary" json:"itinerary"`
	BookingsCount int            `bson:"bookingsCount" json:"bookingsCount"`
	Tags          []string       `bson:"tags" json:"tags"`
	CreatedBy     string         `bson:"createdBy" json:"createdBy"`
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// ComputeFinalPrice derives the discounted price.
func ComputeFinalPrice(price, discount float64) float64 {
	return price - price*discount/100
}

// PackageSummary is the package view embedded in booking responses.
type PackageSummary struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
	FinalPrice float64 `json:"finalPrice"`
	Duration   string  `json:"duration"`
}

func (p Package) Summary() PackageSummary {
	return PackageSummary{ID: p.ID, Title: p.Title, Price: p.Price, FinalPrice: p.FinalPrice, Duration: p.Duration}
}

// PackageInput carries create and update fields. Nil fields are left untouched on update.
type PackageInput struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Price       *float64       `json:"price"`
	Discount    *float64       `json:"discount"`
	Duration    *string        `json:"duration"`
	GroupID     *string        `json:"group"`
	Hot         *bool          `json:"hot"`
	Itinerary   []ItineraryDay `json:"itinerary"`
	Tags        []string       `json:"tags"`
}

// Upload is an image file received from a client.
type Upload struct {
	Filename string
	Content  io.Reader
}
