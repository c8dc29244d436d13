package accrual

import "errors"

var ErrAccrualNotFound = errors.New("hour accrual not found")
