package dto

// RegisterRequest creates a new user account. BirthDate uses ISO dates;
// Tel is stored raw and only formatted at render time.
type RegisterRequest struct {
	FirstName  string  `json:"first_name" binding:"required,max=50"`
	MiddleName string  `json:"middle_name" binding:"required,max=50"`
	LastName   string  `json:"last_name" binding:"required,max=50"`
	BirthDate  string  `json:"birth_date" binding:"required,datetime=2006-01-02"`
	Email      string  `json:"email" binding:"required,email"`
	Tel        string  `json:"tel" binding:"required,tel_digits"`
	Password   string  `json:"password" binding:"required,min=8"`
	CityID     *string `json:"city_id,omitempty" binding:"omitempty,uuid"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthResponse carries the session tokens.
type AuthResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	User         UserDTO `json:"user"`
}
