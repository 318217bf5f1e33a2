// Package errors provides the sentinel errors shared by the catalog stores, services and transports.
package errors

import "errors"

// Lookups that do not resolve to a record.
var ErrProductNotFound = errors.New("product does not exist")
var ErrStoreNotFound = errors.New("store does not exist")

// Business rule and relational precondition violations.
var ErrStoreNotAssociated = errors.New("store is not associated to the product")
var ErrInvalidProductType = errors.New("product type is not valid: must be one of Perishable, Non-perishable")
var ErrInvalidCityCode = errors.New("store city code is not valid: must be a 3 letter code")

// Transaction lifecycle failures. The driver error is wrapped alongside.
var ErrTransactionBegin = errors.New("failed to begin transaction")
var ErrTransactionCommit = errors.New("failed to commit transaction")
var ErrTransactionRollback = errors.New("failed to rollback transaction")

// IsNotFound reports whether err is one of the lookup failures.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) || errors.Is(err, ErrStoreNotFound)
}

// IsPreconditionFailed reports whether err violates a business rule or a relational precondition.
func IsPreconditionFailed(err error) bool {
	return errors.Is(err, ErrStoreNotAssociated) ||
		errors.Is(err, ErrInvalidProductType) ||
		errors.Is(err, ErrInvalidCityCode)
}
