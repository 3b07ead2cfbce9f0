package funds

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	errs "github.com/amirhossein-jamali/invest-dashboard/internal/domain/error"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	portusecase "github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/query"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/invest-dashboard/mocks/port/gateway"
	"github.com/amirhossein-jamali/invest-dashboard/mocks/port/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validAddress = "0x1234567890abcdef1234567890abcdef12345678"

var limits = entity.Limits{
	MinWithdrawal:        decimal.NewFromInt(10),
	MinTransfer:          decimal.NewFromInt(5),
	WithdrawalFeePercent: decimal.RequireFromString("1.5"),
	Network:              entity.NetworkBEP20,
}

type fixture struct {
	svc      *Service
	platform *gateway.MockPlatform
	account  *usecase.MockAccountUseCase
	caches   *cache.Manager
	ctx      context.Context
}

func setup(t *testing.T, balance int64) fixture {
	t.Helper()

	clock := timeprovider.NewFixedTimeProvider(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	caches, err := cache.NewManager(8, 15*time.Second, clock, core.NoopMetrics{}, logger.NewNoopLogger())
	require.NoError(t, err)

	session := entity.NewSession("s1", clock.Now())
	session.Authenticate("tok", "u1")
	ctx := entity.WithSession(context.Background(), session)

	platform := gateway.NewMockPlatform(t)
	account := new(usecase.MockAccountUseCase)
	account.On("User", mock.Anything).Return(&entity.User{ID: "u1", USDTBalance: decimal.NewFromInt(balance)}, nil).Maybe()
	account.On("Limits", mock.Anything).Return(limits).Maybe()

	return fixture{
		svc:      NewService(platform, account, caches, logger.NewNoopLogger()),
		platform: platform,
		account:  account,
		caches:   caches,
		ctx:      ctx,
	}
}

func TestService_Transfers(t *testing.T) {
	t.Run("should merge sent and received transfers newest first", func(t *testing.T) {
		// Arrange
		f := setup(t, 100)
		base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		f.platform.On("ListSentTransfers", mock.Anything, "u1").Return([]entity.Transfer{
			{ID: "t1", SenderID: "u1", CreatedAt: base},
		}, nil).Once()
		f.platform.On("ListReceivedTransfers", mock.Anything, "u1").Return([]entity.Transfer{
			{ID: "t2", ReceiverID: "u1", CreatedAt: base.Add(time.Hour)},
		}, nil).Once()

		// Act
		transfers, err := f.svc.Transfers(f.ctx)

		// Assert
		require.NoError(t, err)
		require.Len(t, transfers, 2)
		assert.Equal(t, "t2", transfers[0].ID)
		assert.False(t, transfers[0].Outgoing("u1"))
		assert.True(t, transfers[1].Outgoing("u1"))
	})
}

func TestService_CreateTransfer(t *testing.T) {
	tests := []struct {
		name    string
		form    portusecase.TransferForm
		message string
	}{
		{"should require a receiver", portusecase.TransferForm{Amount: "20"}, "Please enter recipient wallet ID or referral code"},
		{"should reject an unparsable amount", portusecase.TransferForm{ReceiverID: "REF1", Amount: "abc"}, "Please enter a valid amount"},
		{"should reject an amount below the minimum", portusecase.TransferForm{ReceiverID: "REF1", Amount: "4.99"}, "Minimum transfer amount is $5.00"},
		{"should reject an amount above the balance", portusecase.TransferForm{ReceiverID: "REF1", Amount: "150"}, "Insufficient balance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			f := setup(t, 100)

			// Act
			_, err := f.svc.CreateTransfer(f.ctx, tt.form)

			// Assert
			require.Error(t, err)
			assert.True(t, errs.IsValidationError(err))
			assert.Equal(t, tt.message, errs.UserMessage(err, ""))
			f.platform.AssertNotCalled(t, "CreateTransfer", mock.Anything, mock.Anything)
		})
	}

	t.Run("should send the transfer and invalidate dependent queries", func(t *testing.T) {
		// Arrange
		f := setup(t, 100)
		qc := f.caches.For("s1")
		qc.SetData(query.SentTransfersKey("u1"), []entity.Transfer{})
		qc.SetData(query.TransactionsKey("u1"), []entity.Transaction{})
		qc.SetData(query.WalletKey("u1"), &entity.Wallet{})

		f.platform.On("CreateTransfer", mock.Anything, entity.NewTransfer{
			SenderID:   "u1",
			ReceiverID: "REF1",
			Amount:     decimal.RequireFromString("25.50"),
			Note:       "rent",
		}).Return(&entity.Transfer{ID: "t9"}, nil).Once()

		// Act
		transfer, err := f.svc.CreateTransfer(f.ctx, portusecase.TransferForm{ReceiverID: " REF1 ", Amount: "25.50", Note: " rent "})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "t9", transfer.ID)
		_, sentCached := qc.Peek(query.SentTransfersKey("u1"))
		_, txCached := qc.Peek(query.TransactionsKey("u1"))
		_, walletCached := qc.Peek(query.WalletKey("u1"))
		assert.False(t, sentCached)
		assert.False(t, txCached)
		assert.True(t, walletCached)
	})

	t.Run("should refuse an anonymous session", func(t *testing.T) {
		// Arrange
		f := setup(t, 100)
		ctx := entity.WithSession(context.Background(), entity.NewSession("s2", time.Now()))

		// Act
		_, err := f.svc.CreateTransfer(ctx, portusecase.TransferForm{ReceiverID: "REF1", Amount: "20"})

		// Assert
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}

func TestService_CreateWithdrawal(t *testing.T) {
	tests := []struct {
		name    string
		form    portusecase.WithdrawalForm
		message string
	}{
		{"should reject an amount below the minimum", portusecase.WithdrawalForm{Amount: "9", DestinationAddress: validAddress}, "Minimum withdrawal amount is $10.00"},
		{"should reject an amount above the balance", portusecase.WithdrawalForm{Amount: "101", DestinationAddress: validAddress}, "Insufficient balance"},
		{"should require an address", portusecase.WithdrawalForm{Amount: "20"}, "Please enter a destination address"},
		{"should reject a malformed address", portusecase.WithdrawalForm{Amount: "20", DestinationAddress: "0x12"}, "Please enter a valid BEP-20 address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			f := setup(t, 100)

			// Act
			_, err := f.svc.CreateWithdrawal(f.ctx, tt.form)

			// Assert
			require.Error(t, err)
			assert.Equal(t, tt.message, errs.UserMessage(err, ""))
			f.platform.AssertNotCalled(t, "CreateWithdrawal", mock.Anything, mock.Anything)
		})
	}

	t.Run("should submit exactly one withdrawal", func(t *testing.T) {
		// Arrange
		f := setup(t, 100)
		f.platform.On("CreateWithdrawal", mock.Anything, entity.NewWithdrawal{
			UserID:             "u1",
			Amount:             decimal.NewFromInt(100),
			DestinationAddress: validAddress,
		}).Return(&entity.Withdrawal{ID: "w1", Status: "PENDING"}, nil).Once()

		// Act
		w, err := f.svc.CreateWithdrawal(f.ctx, portusecase.WithdrawalForm{Amount: "100", DestinationAddress: validAddress})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "w1", w.ID)
		f.platform.AssertNumberOfCalls(t, "CreateWithdrawal", 1)
	})

	t.Run("should refetch the withdrawals list after a withdrawal", func(t *testing.T) {
		// Arrange
		f := setup(t, 100)
		qc := f.caches.For("s1")
		f.platform.On("ListWithdrawals", mock.Anything, "u1").Return([]entity.Withdrawal{}, nil).Once()
		before, err := f.svc.Withdrawals(f.ctx)
		require.NoError(t, err)
		require.Empty(t, before)
		_, seeded := qc.Peek(query.WithdrawalsKey("u1"))
		require.True(t, seeded)

		created := entity.Withdrawal{ID: "w1", Status: "PENDING", Amount: decimal.NewFromInt(40)}
		f.platform.On("CreateWithdrawal", mock.Anything, mock.Anything).Return(&created, nil).Once()
		f.platform.On("ListWithdrawals", mock.Anything, "u1").Return([]entity.Withdrawal{created}, nil).Once()

		// Act
		_, err = f.svc.CreateWithdrawal(f.ctx, portusecase.WithdrawalForm{Amount: "40", DestinationAddress: validAddress})
		require.NoError(t, err)
		_, stillCached := qc.Peek(query.WithdrawalsKey("u1"))
		after, err := f.svc.Withdrawals(f.ctx)

		// Assert
		require.NoError(t, err)
		assert.False(t, stillCached)
		require.Len(t, after, 1)
		assert.Equal(t, "w1", after[0].ID)
		f.platform.AssertNumberOfCalls(t, "ListWithdrawals", 2)
	})

	t.Run("should surface the platform message on failure", func(t *testing.T) {
		// Arrange
		f := setup(t, 100)
		f.platform.On("CreateWithdrawal", mock.Anything, mock.Anything).
			Return(nil, errs.NewAPIError("POST", "/withdrawals", 400, "Withdrawals are paused")).Once()

		// Act
		_, err := f.svc.CreateWithdrawal(f.ctx, portusecase.WithdrawalForm{Amount: "50", DestinationAddress: validAddress})

		// Assert
		assert.Equal(t, "Withdrawals are paused", errs.UserMessage(err, "Withdrawal failed"))
	})
}

func TestService_QuoteWithdrawal(t *testing.T) {
	svc := NewService(nil, nil, nil, logger.NewNoopLogger())

	t.Run("should compute the fee and the received amount", func(t *testing.T) {
		quote := svc.QuoteWithdrawal(limits, "200")

		assert.Equal(t, "3", quote.Fee.String())
		assert.Equal(t, "197", quote.Receive.String())
	})

	t.Run("should return zeros for an invalid amount", func(t *testing.T) {
		quote := svc.QuoteWithdrawal(limits, "")

		assert.True(t, quote.Amount.IsZero())
		assert.True(t, quote.Fee.IsZero())
		assert.True(t, quote.Receive.IsZero())
	})
}
