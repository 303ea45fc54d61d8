package booking

import (
	"context"

	"tourbook/models"
	"tourbook/utils"
)

// ListMyBookings returns the actor's bookings with their packages resolved.
func (s *DefaultBookingService) ListMyBookings(ctx context.Context, actor models.Actor) ([]models.BookingView, error) {
	if actor.UserID == "" {
		return nil, utils.Unauthorized("authentication required")
	}
	bookings, err := s.Bookings.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, utils.Internal("failed to list bookings", err)
	}
	return s.resolve(ctx, bookings, false)
}

// GetBooking returns one booking with owner and package resolved.
func (s *DefaultBookingService) GetBooking(ctx context.Context, actor models.Actor, bookingID string) (*models.BookingView, error) {
	if actor.UserID == "" {
		return nil, utils.Unauthorized("authentication required")
	}
	booking, err := s.loadOwned(ctx, actor, bookingID)
	if err != nil {
		return nil, err
	}
	views, err := s.resolve(ctx, []models.Booking{*booking}, true)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// ListAllBookings returns every booking. Admin only.
func (s *DefaultBookingService) ListAllBookings(ctx context.Context, actor models.Actor) ([]models.BookingView, error) {
	if !actor.IsAdmin() {
		return nil, utils.Forbidden("admin access required")
	}
	bookings, err := s.Bookings.ListAll(ctx)
	if err != nil {
		return nil, utils.Internal("failed to list bookings", err)
	}
	return s.resolve(ctx, bookings, true)
}

func (s *DefaultBookingService) resolve(ctx context.Context, bookings []models.Booking, withOwner bool) ([]models.BookingView, error) {
	views := make([]models.BookingView, 0, len(bookings))
	if len(bookings) == 0 {
		return views, nil
	}

	pkgIDs := make([]string, 0, len(bookings))
	userIDs := make([]string, 0, len(bookings))
	seenPkg, seenUser := map[string]bool{}, map[string]bool{}
	for _, b := range bookings {
		if !seenPkg[b.PackageID] {
			seenPkg[b.PackageID] = true
			pkgIDs = append(pkgIDs, b.PackageID)
		}
		if !seenUser[b.UserID] {
			seenUser[b.UserID] = true
			userIDs = append(userIDs, b.UserID)
		}
	}

	pkgs, err := s.Packages.GetByIDs(ctx, pkgIDs)
	if err != nil {
		return nil, utils.Internal("failed to resolve packages", err)
	}
	pkgByID := make(map[string]models.PackageSummary, len(pkgs))
	for _, p := range pkgs {
		pkgByID[p.ID] = p.Summary()
	}

	userByID := map[string]models.UserSummary{}
	if withOwner {
		users, err := s.Users.GetByIDs(ctx, userIDs)
		if err != nil {
			return nil, utils.Internal("failed to resolve booking owners", err)
		}
		for _, u := range users {
			userByID[u.ID] = u.Summary()
		}
	}

	for _, b := range bookings {
		view := models.BookingView{Booking: b}
		if p, ok := pkgByID[b.PackageID]; ok {
			view.Package = &p
		}
		if u, ok := userByID[b.UserID]; ok {
			view.Owner = &u
		}
		views = append(views, view)
	}
	return views, nil
}
