package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrExpenseTitleEmpty        = errors.New("expense titles must not be empty")
	ErrExpenseAmountNotPositive = errors.New("expense amounts must be larger than zero")
	ErrBudgetNegative           = errors.New("the total budget must not be negative")
)
