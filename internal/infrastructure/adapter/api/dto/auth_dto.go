package dto

import "github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"

// LoginForm is the login form submission
type LoginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// SignupForm is the signup form submission
type SignupForm struct {
	Name            string `form:"name"`
	Email           string `form:"email"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirmPassword"`
	WalletAddress   string `form:"walletAddress"`
	ReferredByCode  string `form:"referredByCode"`
}

// ToInput maps the form onto the signup use case input
func (f SignupForm) ToInput() entity.SignupInput {
	return entity.SignupInput{
		Name:            f.Name,
		Email:           f.Email,
		Password:        f.Password,
		ConfirmPassword: f.ConfirmPassword,
		WalletAddress:   f.WalletAddress,
		ReferredByCode:  f.ReferredByCode,
	}
}

// SignupQuery pre-fills the referral code from a shared link
type SignupQuery struct {
	Ref string `form:"ref" binding:"omitempty,max=64"`
}
