package body

import (
	"time"

	"github.com/meyrevived/deploy-dashboard/internal/api/common"
)

// BindingError is returned by the backend when a request fails validation.
// ValidationErrors maps a field name to its violation messages.
type BindingError struct {
	ValidationErrors map[string][]string `json:"validationErrors"`
}

type SmDeleted struct {
	ID    string `json:"id"`
	JobID string `json:"jobId"`
}

type SmRead struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	Zone      string    `json:"zone"`
	URL       *string   `json:"url,omitempty"`
}

type ZoneEndpoints struct {
	Deployment *string `json:"deployment,omitempty"`
	Storage    *string `json:"storage,omitempty"`
	VM         *string `json:"vm,omitempty"`
	VmApp      *string `json:"vmApp,omitempty"`
}

type ZoneRead struct {
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Capabilities []string      `json:"capabilities"`
	Endpoints    ZoneEndpoints `json:"endpoints"`
	Legacy       bool          `json:"legacy"`
	Enabled      bool          `json:"enabled"`
}

// HarborWebhook is the payload Harbor posts on repository events.
type HarborWebhook struct {
	Type      string      `json:"type"`
	OccurAt   int64       `json:"occur_at"`
	Operator  string      `json:"operator"`
	EventData common.JSON `json:"event_data"`
}
