package repositories

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRecordNotFound       = errors.New("record not found")
	ErrDuplicateRecord      = errors.New("record already exists")
)

// IsDuplicate reports whether err is a uniqueness violation. Requires
// the connection to be opened with TranslateError.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, ErrDuplicateRecord)
}

// translateError maps gorm errors onto the repository sentinels.
func translateError(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateRecord
	default:
		return err
	}
}
