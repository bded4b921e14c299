// Package constants defines numerical limits.
package constants

const (
	// First page of any search
	FirstPage = 1

	// Upper bound accepted for a JSON request body
	MaxRequestBodyBytes = 1 << 16
)
