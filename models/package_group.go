package models

import "time"

// PackageGroup is a named collection of packages.
type PackageGroup struct {
	ID         string    `bson:"id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Photo      Image     `bson:"photo" json:"photo"`
	PackageIDs []string  `bson:"packages" json:"packageIds"`
	CreatedBy  string    `bson:"createdBy" json:"createdBy"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// GroupView is a group with member packages resolved.
type GroupView struct {
	PackageGroup
	Packages []Package `json:"packages"`
}

type GroupInput struct {
	Name          *string  `json:"name"`
	PackageIDs    []string `json:"packages"`
	ExistingPhoto *Image   `json:"existingPhoto"`
}
