package service

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized access")
	ErrRevocationDisabled = errors.New("token revocation is not configured")
	ErrInvalidID          = errors.New("invalid id")
	ErrInvalidRole        = errors.New("invalid role")
	ErrSurveyNotFound     = errors.New("survey not found")
	ErrAlreadyVoted       = errors.New("user already voted on this survey")
	ErrInvalidPrice       = errors.New("price must be a positive number")
	ErrPaymentGateway     = errors.New("payment gateway failure")
)
