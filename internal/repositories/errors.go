package repositories

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrSponsorNotFound = errors.New("sponsor not found")
	ErrCardNotFound    = errors.New("payout card not found")
)
