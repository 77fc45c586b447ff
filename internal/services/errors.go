// internal/services/errors.go
package services

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrBlankMessage    = errors.New("message must not be blank")
)
