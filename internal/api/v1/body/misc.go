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

type ZoneRead struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Interface   *string `json:"interface,omitempty"`
}

// HarborWebhook is the payload Harbor posts on repository events. The event
// data is owned by Harbor and kept opaque.
type HarborWebhook struct {
	Type      string      `json:"type"`
	OccurAt   int64       `json:"occur_at"`
	Operator  string      `json:"operator"`
	EventData common.JSON `json:"event_data"`
}

type GitHubWebhookPing struct {
	Hook       common.JSON `json:"hook"`
	Repository common.JSON `json:"repository"`
}

type GithubWebhookPayloadPush struct {
	Ref        string      `json:"ref"`
	Repository common.JSON `json:"repository"`
}

type GitHubWebhookPush struct {
	ID        int64                    `json:"ID"`
	Event     string                   `json:"Event"`
	Signature string                   `json:"Signature"`
	Payload   GithubWebhookPayloadPush `json:"Payload"`
}
