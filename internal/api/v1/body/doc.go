// Package body contains the request and response payload shapes of the v1 API.
//
// Mandatory fields are plain values. Optional fields are pointers tagged with
// omitempty so that an absent field stays absent across a round trip. The
// shapes carry no behavior; validation is owned by the backend.
package body
