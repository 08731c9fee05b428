package fetchers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"spaceexplorer/internal/models"

	"github.com/go-resty/resty/v2"
)

// DefaultTimeout is the per-call upstream timeout
const DefaultTimeout = 5 * time.Second

// StatusError reports a non-200 upstream response
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.Code)
}

// NewHTTPClient creates the resty client shared by a component's fetchers.
// Retries are left at zero: every failure is surfaced to the caller.
func NewHTTPClient(timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("User-Agent", "spaceexplorer/1.0")
	return client
}

// getBody performs a GET and returns the body of a 200 response
func getBody(ctx context.Context, client *resty.Client, url string, params map[string]string) ([]byte, error) {
	req := client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json")
	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	resp, err := req.Get(url)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode()}
	}
	return resp.Body(), nil
}

// networkError wraps err as a NetworkError for source
func networkError(source string, err error) error {
	return models.NewFetchError(models.KindNetwork, source, err)
}

// notFoundError builds a NotFound error for source
func notFoundError(source string, err error) error {
	return models.NewFetchError(models.KindNotFound, source, err)
}

// isStatus reports whether err is a StatusError with the given code
func isStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}
