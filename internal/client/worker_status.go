package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/meyrevived/deploy-dashboard/internal/api/v2/body"
)

// WorkerStatus reads the list of named worker statuses. The client's remote
// URL is the status endpoint itself, so requests carry no extra path.
type WorkerStatus struct {
	HTTP *HTTP
}

// List fetches the worker statuses in the order the endpoint returns them.
func (w *WorkerStatus) List(ctx context.Context) ([]body.WorkerStatusRead, error) {
	header := map[string]string{
		"Accept": "application/json",
	}
	output, err := w.HTTP.Request(ctx, http.MethodGet, "", header, nil)
	if err != nil {
		return nil, err
	}

	ret := []body.WorkerStatusRead{}
	if err := json.Unmarshal(output, &ret); err != nil {
		return nil, fmt.Errorf("failed to decode worker statuses: %w", err)
	}
	return ret, nil
}
