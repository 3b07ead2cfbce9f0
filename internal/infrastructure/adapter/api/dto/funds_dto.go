package dto

import "github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/usecase"

// TransferForm is the transfer form submission
type TransferForm struct {
	ReceiverID string `form:"receiverId"`
	Amount     string `form:"amount"`
	Note       string `form:"note" binding:"max=500"`
}

// ToForm maps the submission onto the use case form
func (f TransferForm) ToForm() usecase.TransferForm {
	return usecase.TransferForm{ReceiverID: f.ReceiverID, Amount: f.Amount, Note: f.Note}
}

// WithdrawalForm is the withdrawal form submission
type WithdrawalForm struct {
	Amount             string `form:"amount"`
	DestinationAddress string `form:"destinationAddress"`
}

// ToForm maps the submission onto the use case form
func (f WithdrawalForm) ToForm() usecase.WithdrawalForm {
	return usecase.WithdrawalForm{Amount: f.Amount, DestinationAddress: f.DestinationAddress}
}

// WithdrawalPreviewQuery carries the amount typed into the fee preview
type WithdrawalPreviewQuery struct {
	Amount  string `form:"amount"`
	Address string `form:"address"`
}
