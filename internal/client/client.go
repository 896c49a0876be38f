package client

// Client groups the typed resource accessors of one endpoint.
type Client struct {
	HTTP *HTTP
}

// New returns a Client for the endpoint at remoteURL.
func New(remoteURL string) *Client {
	return &Client{
		HTTP: NewHTTP(remoteURL),
	}
}

// WorkerStatus returns the accessor for the worker status list.
func (c *Client) WorkerStatus() *WorkerStatus {
	return &WorkerStatus{
		HTTP: c.HTTP,
	}
}
