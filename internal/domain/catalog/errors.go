package catalog

import "errors"

var (
	ErrServiceNotFound  = errors.New("service not found")
	ErrServiceNameTaken = errors.New("a service with that name already exists")
	ErrServiceInUse     = errors.New("service still has assigned profiles")
)
