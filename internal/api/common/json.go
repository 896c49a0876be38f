// Package common holds wire-level helpers shared by every API version.
package common

import "encoding/json"

// JSON is an opaque JSON value. It is used for payload fragments whose
// structure is owned by third parties (Harbor and GitHub webhooks) or is
// open-ended (notification content). The bytes are kept verbatim.
type JSON = json.RawMessage

// IsNull reports whether j is absent or a JSON null.
func IsNull(j JSON) bool {
	return len(j) == 0 || string(j) == "null"
}
