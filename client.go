package jsonapi

import (
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Client is a convenience layer for fetching JSON:API documents over HTTP.
// The zero value is ready to use.
type Client struct {
	// The underlying HTTP client. If nil, http.DefaultClient is used.
	HTTPClient *http.Client

	// Logger for request diagnostics. If nil, the standard logrus logger is
	// used.
	Logger logrus.FieldLogger
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) logger() logrus.FieldLogger {
	if c.Logger != nil {
		return c.Logger
	}
	return logrus.StandardLogger()
}

// Get fetches url and parses the response body as a JSON:API document. An
// empty or literal-null body produces no document and no error, regardless
// of status code; callers that care about error documents can inspect the
// returned document's Errors.
//
// Network and body-read failures are returned as *TransportError.
// Cancelling ctx aborts the pending request and read; the codec is never
// invoked on a failed transport.
func (c *Client) Get(ctx context.Context, url string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create request")
	}
	req.Header.Set("Accept", MediaType)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	c.logger().WithFields(logrus.Fields{
		"url":    url,
		"status": resp.StatusCode,
		"bytes":  len(body),
	}).Debug("fetched json:api document")

	return ParseDocument(body)
}
