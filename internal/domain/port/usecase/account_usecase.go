package usecase

import (
	"context"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
)

// ReferralsView is everything the referrals page shows
type ReferralsView struct {
	Made    []entity.Referral
	Summary *entity.ReferralSummary
	// Link is the signup URL carrying the user's referral code
	Link string
}

// AccountUseCase reads the signed-in user's account data.
// Every method reads the session from ctx.
type AccountUseCase interface {
	User(ctx context.Context) (*entity.User, error)
	Dashboard(ctx context.Context) (*entity.Dashboard, error)
	// Setting is public and needs no sign-in
	Setting(ctx context.Context) (*entity.Setting, error)
	// Limits merges configured limits with the platform setting. A failed setting read falls back to configuration.
	Limits(ctx context.Context) entity.Limits
	Referrals(ctx context.Context) (*ReferralsView, error)
	// UpdateProfile requires name and email, then refreshes the user and dashboard queries
	UpdateProfile(ctx context.Context, update entity.ProfileUpdate) (*entity.User, error)
}
