package dto

import (
	"time"

	"cvgen_backend/internal/models"
)

// UserDTO is the public projection of a user, with derived fields
// resolved server-side.
type UserDTO struct {
	ID          string  `json:"id"`
	FirstName   string  `json:"first_name"`
	MiddleName  string  `json:"middle_name"`
	LastName    string  `json:"last_name"`
	BirthDate   string  `json:"birth_date"`
	Age         int     `json:"age"`
	Email       string  `json:"email"`
	Tel         string  `json:"tel"`
	City        *string `json:"city,omitempty"`
	IsSuperuser bool    `json:"is_superuser"`
}

func NewUserDTO(user *models.User) UserDTO {
	out := UserDTO{
		ID:          user.ID,
		FirstName:   user.FirstName,
		MiddleName:  user.MiddleName,
		LastName:    user.LastName,
		BirthDate:   user.BirthDate.Format(time.DateOnly),
		Age:         user.Age(),
		Email:       user.Email,
		Tel:         user.Tel,
		IsSuperuser: user.IsSuperuser,
	}
	if user.City != nil {
		name := user.City.Name
		out.City = &name
	}
	return out
}

type UpdateUserRequest struct {
	FirstName  string  `json:"first_name" binding:"required,max=50"`
	MiddleName string  `json:"middle_name" binding:"required,max=50"`
	LastName   string  `json:"last_name" binding:"required,max=50"`
	BirthDate  string  `json:"birth_date" binding:"required,datetime=2006-01-02"`
	Email      string  `json:"email" binding:"required,email"`
	Tel        string  `json:"tel" binding:"required,tel_digits"`
	CityID     *string `json:"city_id,omitempty" binding:"omitempty,uuid"`
}
