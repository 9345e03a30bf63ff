package service

import "errors"

var (
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrEmailTaken             = errors.New("email already registered")
	ErrUserNotFound           = errors.New("user not found")
	ErrWrongPassword          = errors.New("current password is incorrect")
	ErrDueRecordNotFound      = errors.New("due record not found")
	ErrDueAlreadyPaid         = errors.New("due record already marked as paid")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidToken           = errors.New("invalid token")
)
