package google

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/option/internaloption"
	htransport "google.golang.org/api/transport/http"
)

// Defaults describe an API to NewClient.
type Defaults struct {
	// BasePath is the API root, e.g. "https://www.googleapis.com/drive/v3/".
	BasePath string
	// Scopes are requested when the caller sets none.
	Scopes []string
}

// Client is the HTTP collaborator shared by every service of one API. It
// holds no per-call state and is safe for concurrent use.
type Client struct {
	client *http.Client

	// BasePath is the API endpoint base URL.
	BasePath string
	// UserAgent is an optional additional User-Agent fragment.
	UserAgent string
	// RateLimiter, when set, paces every call made through the client.
	RateLimiter *RateLimiter
}

// NewClient creates a Client whose transport authenticates with the given
// options. Without options, Application Default Credentials are used.
func NewClient(ctx context.Context, d Defaults, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{
		internaloption.WithDefaultEndpoint(d.BasePath),
		internaloption.WithDefaultScopes(d.Scopes...),
	}, opts...)

	hc, endpoint, err := htransport.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating http client: %w", err)
	}

	c, err := NewClientWithHTTPClient(hc, d.BasePath)
	if err != nil {
		return nil, err
	}
	if endpoint != "" {
		c.BasePath = endpoint
	}
	return c, nil
}

// NewClientWithHTTPClient creates a Client around an already authenticated
// *http.Client.
func NewClientWithHTTPClient(hc *http.Client, basePath string) (*Client, error) {
	if hc == nil {
		return nil, errors.New("client is nil")
	}
	return &Client{client: hc, BasePath: basePath}, nil
}

// HTTPClient returns the underlying *http.Client.
func (c *Client) HTTPClient() *http.Client {
	return c.client
}

func (c *Client) userAgent() string {
	if c.UserAgent == "" {
		return googleapi.UserAgent
	}
	return googleapi.UserAgent + " " + c.UserAgent
}
