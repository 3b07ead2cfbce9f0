package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	errs "github.com/amirhossein-jamali/invest-dashboard/internal/domain/error"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/gateway"
)

var _ gateway.Platform = (*Client)(nil)

func idPath(prefix, id string) string {
	return prefix + url.PathEscape(id)
}

func number(s string) json.Number {
	return json.Number(s)
}

// Login implements gateway.AuthGateway
func (c *Client) Login(ctx context.Context, email, password string) (*entity.Credentials, error) {
	var env envelope[authUserDTO]
	err := c.do(ctx, call{
		method: http.MethodPost,
		route:  "/user/login",
		path:   "/user/login",
		body:   loginRequest{Email: email, Password: password},
	}, &env)
	if err != nil {
		return nil, err
	}
	return &entity.Credentials{Token: env.Token, UserID: env.Data.ID.String()}, nil
}

// Signup implements gateway.AuthGateway
func (c *Client) Signup(ctx context.Context, input entity.SignupInput) (*entity.Credentials, error) {
	var env envelope[authUserDTO]
	err := c.do(ctx, call{
		method: http.MethodPost,
		route:  "/user/create",
		path:   "/user/create",
		body: signupRequest{
			Name:           input.Name,
			Email:          input.Email,
			Password:       input.Password,
			WalletAddress:  input.WalletAddress,
			ReferredByCode: input.ReferredByCode,
		},
	}, &env)
	if err != nil {
		return nil, err
	}
	return &entity.Credentials{Token: env.Token, UserID: env.Data.ID.String()}, nil
}

// GetUser implements gateway.AccountGateway
func (c *Client) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	var env envelope[userDTO]
	err := c.do(ctx, call{method: http.MethodGet, route: "/user/{id}", path: idPath("/user/", userID)}, &env)
	if err != nil {
		return nil, err
	}
	return env.Data.toEntity(), nil
}

// UpdateUser implements gateway.AccountGateway
func (c *Client) UpdateUser(ctx context.Context, userID string, update entity.ProfileUpdate) (*entity.User, error) {
	var env envelope[userDTO]
	err := c.do(ctx, call{
		method: http.MethodPut,
		route:  "/user/{id}",
		path:   idPath("/user/", userID),
		body:   updateUserRequest{Name: update.Name, Email: update.Email},
	}, &env)
	if err != nil {
		return nil, err
	}
	return env.Data.toEntity(), nil
}

// GetDashboard implements gateway.AccountGateway. A payload with success=false is an error.
func (c *Client) GetDashboard(ctx context.Context, userID string) (*entity.Dashboard, error) {
	var env envelope[dashboardDTO]
	path := idPath("/user-dashboard/", userID)
	err := c.do(ctx, call{method: http.MethodGet, route: "/user-dashboard/{id}", path: path}, &env)
	if err != nil {
		return nil, err
	}
	if env.Success != nil && !*env.Success {
		message := env.Message
		if message == "" {
			message = "Failed to fetch dashboard data"
		}
		return nil, &errs.APIError{
			Kind:       errs.KindValidation,
			StatusCode: http.StatusOK,
			Method:     http.MethodGet,
			Path:       path,
			Message:    message,
		}
	}
	return env.Data.toEntity(), nil
}

// GetSetting implements gateway.AccountGateway
func (c *Client) GetSetting(ctx context.Context) (*entity.Setting, error) {
	var env envelope[settingDTO]
	if err := c.do(ctx, call{method: http.MethodGet, route: "/setting", path: "/setting"}, &env); err != nil {
		return nil, err
	}
	return env.Data.toEntity(), nil
}

// ListReferralsMade implements gateway.AccountGateway
func (c *Client) ListReferralsMade(ctx context.Context, userID string) ([]entity.Referral, error) {
	var env listEnvelope[referralDTO]
	err := c.do(ctx, call{method: http.MethodGet, route: "/referral/referrer/{id}", path: idPath("/referral/referrer/", userID)}, &env)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Referral, 0, len(env.Data))
	for _, r := range env.Data {
		out = append(out, r.toEntity())
	}
	return out, nil
}

// GetReferralSummary implements gateway.AccountGateway
func (c *Client) GetReferralSummary(ctx context.Context, userID string) (*entity.ReferralSummary, error) {
	var env envelope[referralSummaryDTO]
	err := c.do(ctx, call{method: http.MethodGet, route: "/user/referrals/{id}", path: idPath("/user/referrals/", userID)}, &env)
	if err != nil {
		return nil, err
	}
	return env.Data.toEntity(), nil
}

// GetWallet implements gateway.WalletGateway
func (c *Client) GetWallet(ctx context.Context, userID string) (*entity.Wallet, error) {
	var env envelope[walletDTO]
	err := c.do(ctx, call{method: http.MethodGet, route: "/wallet/{id}", path: idPath("/wallet/", userID)}, &env)
	if err != nil {
		return nil, err
	}
	return env.Data.toEntity(), nil
}

// CreateWallet implements gateway.WalletGateway
func (c *Client) CreateWallet(ctx context.Context, userID, address, currency string) (*entity.Wallet, error) {
	var env envelope[walletDTO]
	err := c.do(ctx, call{
		method: http.MethodPost,
		route:  "/wallet/create",
		path:   "/wallet/create",
		body:   createWalletRequest{UserID: userID, WalletAddress: address, Currency: currency},
	}, &env)
	if err != nil {
		return nil, err
	}
	return env.Data.toEntity(), nil
}

// GetDepositAddress implements gateway.WalletGateway
func (c *Client) GetDepositAddress(ctx context.Context) (*entity.DepositAddress, error) {
	var env envelope[qrCodeDTO]
	if err := c.do(ctx, call{method: http.MethodGet, route: "/qr-code/get", path: "/qr-code/get"}, &env); err != nil {
		return nil, err
	}
	return env.Data.toEntity(), nil
}

// ListPlans implements gateway.InvestmentGateway
func (c *Client) ListPlans(ctx context.Context) ([]entity.Plan, error) {
	var env listEnvelope[planDTO]
	if err := c.do(ctx, call{method: http.MethodGet, route: "/subscription/all", path: "/subscription/all"}, &env); err != nil {
		return nil, err
	}
	out := make([]entity.Plan, 0, len(env.Data))
	for _, p := range env.Data {
		out = append(out, p.toEntity())
	}
	return out, nil
}

// CreateInvestment implements gateway.InvestmentGateway
func (c *Client) CreateInvestment(ctx context.Context, input entity.NewInvestment) (*entity.Investment, error) {
	var env envelope[investmentDTO]
	err := c.do(ctx, call{
		method: http.MethodPost,
		route:  "/investment/create",
		path:   "/investment/create",
		body: createInvestmentRequest{
			UserID:         input.UserID,
			PlanID:         input.PlanID,
			AmountInvested: number(input.AmountInvested.String()),
			ROIPercentage:  number(input.ROIPercentage.String()),
			StartDate:      input.StartDate.UTC().Format(time.RFC3339),
			EndDate:        input.EndDate.UTC().Format(time.RFC3339),
			TransactionID:  input.TransactionID,
		},
	}, &env)
	if err != nil {
		return nil, err
	}
	return env.Data.toEntity(), nil
}

func (c *Client) listTransfers(ctx context.Context, route, path string) ([]entity.Transfer, error) {
	var env listEnvelope[transferDTO]
	if err := c.do(ctx, call{method: http.MethodGet, route: route, path: path}, &env); err != nil {
		return nil, err
	}
	out := make([]entity.Transfer, 0, len(env.Data))
	for _, t := range env.Data {
		out = append(out, t.toEntity())
	}
	return out, nil
}

// ListSentTransfers implements gateway.FundsGateway
func (c *Client) ListSentTransfers(ctx context.Context, userID string) ([]entity.Transfer, error) {
	return c.listTransfers(ctx, "/transfer/sender/{id}", idPath("/transfer/sender/", userID))
}

// ListReceivedTransfers implements gateway.FundsGateway
func (c *Client) ListReceivedTransfers(ctx context.Context, userID string) ([]entity.Transfer, error) {
	return c.listTransfers(ctx, "/transfer/receiver/{id}", idPath("/transfer/receiver/", userID))
}

// CreateTransfer implements gateway.FundsGateway
func (c *Client) CreateTransfer(ctx context.Context, input entity.NewTransfer) (*entity.Transfer, error) {
	var env envelope[transferDTO]
	err := c.do(ctx, call{
		method: http.MethodPost,
		route:  "/transfer/create",
		path:   "/transfer/create",
		body: createTransferRequest{
			SenderID:   input.SenderID,
			ReceiverID: input.ReceiverID,
			Amount:     number(input.Amount.String()),
			Note:       input.Note,
		},
	}, &env)
	if err != nil {
		return nil, err
	}
	t := env.Data.toEntity()
	return &t, nil
}

// ListWithdrawals implements gateway.FundsGateway
func (c *Client) ListWithdrawals(ctx context.Context, userID string) ([]entity.Withdrawal, error) {
	var env listEnvelope[withdrawalDTO]
	err := c.do(ctx, call{method: http.MethodGet, route: "/withdraw/user/{id}", path: idPath("/withdraw/user/", userID)}, &env)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Withdrawal, 0, len(env.Data))
	for _, w := range env.Data {
		out = append(out, w.toEntity())
	}
	return out, nil
}

// CreateWithdrawal implements gateway.FundsGateway
func (c *Client) CreateWithdrawal(ctx context.Context, input entity.NewWithdrawal) (*entity.Withdrawal, error) {
	var env envelope[withdrawalDTO]
	err := c.do(ctx, call{
		method: http.MethodPost,
		route:  "/withdraw/create",
		path:   "/withdraw/create",
		body: createWithdrawalRequest{
			UserID:             input.UserID,
			Amount:             number(input.Amount.String()),
			DestinationAddress: input.DestinationAddress,
		},
	}, &env)
	if err != nil {
		return nil, err
	}
	w := env.Data.toEntity()
	return &w, nil
}

// ListTransactions implements gateway.LedgerGateway
func (c *Client) ListTransactions(ctx context.Context, userID string) ([]entity.Transaction, error) {
	var env listEnvelope[transactionDTO]
	err := c.do(ctx, call{method: http.MethodGet, route: "/transaction/user/{id}", path: idPath("/transaction/user/", userID)}, &env)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Transaction, 0, len(env.Data))
	for _, t := range env.Data {
		out = append(out, t.toEntity())
	}
	return out, nil
}

// ListROIRecords implements gateway.LedgerGateway
func (c *Client) ListROIRecords(ctx context.Context, userID string, filter entity.ROIFilter, page, limit int) (*entity.Page[entity.ROIRecord], error) {
	params := url.Values{}
	params.Set("userId", userID)
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))
	if filter.PlanID != "" {
		params.Set("planId", filter.PlanID)
	}
	if filter.StartDate != "" {
		params.Set("startDate", filter.StartDate)
	}
	if filter.EndDate != "" {
		params.Set("endDate", filter.EndDate)
	}

	var env listEnvelope[roiRecordDTO]
	if err := c.do(ctx, call{method: http.MethodGet, route: "/record/all", path: "/record/all", params: params}, &env); err != nil {
		return nil, err
	}

	out := &entity.Page[entity.ROIRecord]{Pagination: env.Pagination.toEntity()}
	for _, r := range env.Data {
		out.Items = append(out.Items, r.toEntity())
	}
	return out, nil
}

// ListNotifications implements gateway.LedgerGateway
func (c *Client) ListNotifications(ctx context.Context, userID string, page, limit int) (*entity.Page[entity.Notification], error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	var env listEnvelope[notificationDTO]
	err := c.do(ctx, call{
		method: http.MethodGet,
		route:  "/notification/user/{id}",
		path:   idPath("/notification/user/", userID),
		params: params,
	}, &env)
	if err != nil {
		return nil, err
	}

	out := &entity.Page[entity.Notification]{Pagination: env.Pagination.toEntity()}
	for _, n := range env.Data {
		out.Items = append(out.Items, n.toEntity())
	}
	return out, nil
}
