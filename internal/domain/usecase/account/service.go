package account

import (
	"context"
	"net/url"
	"strings"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	errs "github.com/amirhossein-jamali/invest-dashboard/internal/domain/error"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/query"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/usecase/common"
)

var _ usecase.AccountUseCase = (*Service)(nil)

// Service implements AccountUseCase
type Service struct {
	platform  gateway.AccountGateway
	caches    query.Provider
	limits    entity.Limits
	publicURL string
	logger    core.Logger
}

// NewService creates an account service. limits are the configured defaults the
// platform setting may override; publicURL is the base of referral links.
func NewService(platform gateway.AccountGateway, caches query.Provider, limits entity.Limits, publicURL string, logger core.Logger) *Service {
	return &Service{
		platform:  platform,
		caches:    caches,
		limits:    limits,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    logger,
	}
}

// User returns the signed-in user
func (s *Service) User(ctx context.Context) (*entity.User, error) {
	scope := common.ScopeFrom(ctx, s.caches)
	return common.Fetch(ctx, scope, query.UserKey(scope.UserID), query.Defaults.Stale(common.LongStale),
		func(ctx context.Context) (*entity.User, error) {
			return s.platform.GetUser(ctx, scope.UserID)
		})
}

// Dashboard returns the KPI and chart payload
func (s *Service) Dashboard(ctx context.Context) (*entity.Dashboard, error) {
	scope := common.ScopeFrom(ctx, s.caches)
	return common.Fetch(ctx, scope, query.DashboardKey(scope.UserID), query.Defaults,
		func(ctx context.Context) (*entity.Dashboard, error) {
			return s.platform.GetDashboard(ctx, scope.UserID)
		})
}

// Setting returns the public platform settings. It needs no sign-in.
func (s *Service) Setting(ctx context.Context) (*entity.Setting, error) {
	cache := query.ForContext(ctx, s.caches)
	return query.Get(ctx, cache, query.SettingKey(), query.Defaults.Stale(common.LongStale),
		func(ctx context.Context) (*entity.Setting, error) {
			return s.platform.GetSetting(ctx)
		})
}

// Limits merges the configured limits with the platform setting
func (s *Service) Limits(ctx context.Context) entity.Limits {
	setting, err := s.Setting(ctx)
	if err != nil {
		s.logger.Warn("Using configured limits, platform setting unavailable", map[string]any{
			"error_code": errs.ErrorCode(err),
		})
		return s.limits
	}
	return s.limits.Merge(setting)
}

// Referrals returns the referrals made, the referral summary and the share link
func (s *Service) Referrals(ctx context.Context) (*usecase.ReferralsView, error) {
	scope := common.ScopeFrom(ctx, s.caches)

	user, err := s.User(ctx)
	if err != nil {
		return nil, err
	}

	made, err := common.Fetch(ctx, scope, query.ReferralsMadeKey(scope.UserID), query.Defaults,
		func(ctx context.Context) ([]entity.Referral, error) {
			return s.platform.ListReferralsMade(ctx, scope.UserID)
		})
	if err != nil {
		return nil, err
	}

	summary, err := common.Fetch(ctx, scope, query.ReferralSummaryKey(scope.UserID), query.Defaults,
		func(ctx context.Context) (*entity.ReferralSummary, error) {
			return s.platform.GetReferralSummary(ctx, scope.UserID)
		})
	if err != nil {
		return nil, err
	}

	return &usecase.ReferralsView{
		Made:    made,
		Summary: summary,
		Link:    s.referralLink(user.ReferralCode),
	}, nil
}

func (s *Service) referralLink(code string) string {
	if code == "" {
		return ""
	}
	return s.publicURL + "/auth/signup?ref=" + url.QueryEscape(code)
}

// UpdateProfile saves name and email, then refreshes the user and dashboard queries
func (s *Service) UpdateProfile(ctx context.Context, update entity.ProfileUpdate) (*entity.User, error) {
	scope := common.ScopeFrom(ctx, s.caches)
	if err := scope.RequireUser(); err != nil {
		return nil, err
	}

	update.Name = strings.TrimSpace(update.Name)
	update.Email = strings.TrimSpace(update.Email)
	if update.Name == "" || update.Email == "" {
		return nil, errs.NewValidationError("profile", "Name and email are required", errs.ErrRequiredField)
	}

	user, err := s.platform.UpdateUser(ctx, scope.UserID, update)
	if err != nil {
		return nil, err
	}

	scope.Invalidate(query.UserKey(scope.UserID), query.DashboardKey(scope.UserID))
	s.logger.Info("Profile updated", map[string]any{"user_id": scope.UserID})
	return user, nil
}
