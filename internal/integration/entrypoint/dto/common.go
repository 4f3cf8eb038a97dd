// Package dto defines request and response payloads for the API endpoints.
package dto

// ErrorResponse is the standard error payload returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
