// Package api defines the daemon's own HTTP response models and, in its
// versioned sub-packages, the contract catalog of the remote deployment API.
//
// The v1 and v2 sub-packages each split into body, query and uri packages.
// Nothing here performs validation or conversion; the shapes are contracts
// that a client and the backend agree on.
package api

// ErrorResponse represents the JSON body returned by the daemon when a
// request cannot be served.
//
// Status is a short machine-readable code such as "unavailable" or
// "not_found"; Error is populated with a human-readable explanation.
type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ReloadResponse represents the JSON response for POST /api/reload.
//
// The daemon re-reads its configuration file and reports the endpoint it is
// polling after the reload.
type ReloadResponse struct {
	Status string `json:"status"`
	APIURL string `json:"apiURL"`
}
