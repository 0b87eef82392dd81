package domain

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrMissingCompanyID indicates a request without the required company id
	ErrMissingCompanyID = errors.New("missing company id")

	// ErrInvalidMetricType indicates an unknown metric type key
	ErrInvalidMetricType = errors.New("invalid metric type")

	// ErrNoCompaniesSelected indicates an export request without companies
	ErrNoCompaniesSelected = errors.New("no companies selected")

	// ErrNoFieldsSelected indicates an export request without field keys
	ErrNoFieldsSelected = errors.New("no fields selected")
)
