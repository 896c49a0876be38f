// Package body contains the request and response payload shapes of the v2 API.
//
// The v2 API targets a different infrastructure backend than v1. Shapes that
// share a name with a v1 shape are deliberately separate types.
package body
