package dto

import "github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"

// ProfileForm is the settings form submission
type ProfileForm struct {
	Name  string `form:"name"`
	Email string `form:"email"`
}

// ToUpdate maps the form onto a profile update
func (f ProfileForm) ToUpdate() entity.ProfileUpdate {
	return entity.ProfileUpdate{Name: f.Name, Email: f.Email}
}

// WalletForm is the wallet creation form submission
type WalletForm struct {
	WalletAddress string `form:"walletAddress"`
	Currency      string `form:"currency" binding:"omitempty,alpha,max=10"`
}
