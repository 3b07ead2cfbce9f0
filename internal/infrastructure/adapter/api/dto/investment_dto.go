package dto

// InvestAmountForm is the amount step of the investment flow
type InvestAmountForm struct {
	Amount string `form:"amount"`
}

// InvestProofForm is the payment proof step of the investment flow
type InvestProofForm struct {
	TransactionID string `form:"transactionId"`
}
