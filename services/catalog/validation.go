package catalog

import (
	"fmt"
	"strings"

	"tourbook/models"
	"tourbook/utils"
)

// applyInput merges the non-nil fields of input onto pkg and re-derives finalPrice.
func applyInput(pkg *models.Package, input models.PackageInput) {
	if input.Title != nil {
		pkg.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		pkg.Description = strings.TrimSpace(*input.Description)
	}
	if input.Price != nil {
		pkg.Price = *input.Price
	}
	if input.Discount != nil {
		pkg.Discount = *input.Discount
	}
	if input.Duration != nil {
		pkg.Duration = strings.TrimSpace(*input.Duration)
	}
	if input.Hot != nil {
		pkg.Hot = *input.Hot
	}
	if input.Itinerary != nil {
		pkg.Itinerary = input.Itinerary
	}
	if input.Tags != nil {
		pkg.Tags = input.Tags
	}
	pkg.FinalPrice = models.ComputeFinalPrice(pkg.Price, pkg.Discount)
}

func validatePackage(pkg *models.Package) error {
	switch {
	case pkg.Title == "":
		return utils.InvalidInput("title", "title is required")
	case pkg.Price <= 0:
		return utils.InvalidInput("price", "price must be greater than zero")
	case pkg.Discount < 0 || pkg.Discount > 100:
		return utils.InvalidInput("discount", "discount must be between 0 and 100")
	case pkg.Duration == "":
		return utils.InvalidInput("duration", "duration is required")
	}

	for i, day := range pkg.Itinerary {
		field := fmt.Sprintf("itinerary[%d]", i)
		if day.Day <= 0 || strings.TrimSpace(day.Title) == "" || strings.TrimSpace(day.Description) == "" {
			return utils.InvalidInput(field, "itinerary entries need a positive day, a title and a description")
		}
	}

	if len(pkg.Tags) > models.MaxPackageTags {
		return utils.InvalidInput("tags", fmt.Sprintf("at most %d tags are allowed", models.MaxPackageTags))
	}
	seen := make(map[string]bool, len(pkg.Tags))
	for _, tag := range pkg.Tags {
		if !models.IsPackageTag(tag) {
			return utils.InvalidInput("tags", fmt.Sprintf("unknown tag %q", tag))
		}
		if seen[tag] {
			return utils.InvalidInput("tags", fmt.Sprintf("duplicate tag %q", tag))
		}
		seen[tag] = true
	}
	return nil
}

func requireAdmin(actor models.Actor) error {
	if actor.UserID == "" {
		return utils.Unauthorized("authentication required")
	}
	if !actor.IsAdmin() {
		return utils.Forbidden("admin access required")
	}
	return nil
}
