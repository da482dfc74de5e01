// Package upload performs the single authenticated POST the tool
// exists for.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var ErrUnauthorized = errors.New("unauthorized (401) - invalid token")

type Result struct {
	Status int
	Body   []byte
}

func (r *Result) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Put POSTs body to url with a Bearer token. A nil client means
// http.DefaultClient. Network failures return an error; HTTP level
// failures are reported in the Result, except 401 which additionally
// yields ErrUnauthorized.
func Put(ctx context.Context, client *http.Client, url, token string, body io.Reader) (*Result, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/octet-stream")
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	res := &Result{Status: resp.StatusCode, Body: respBody}
	if res.Status == http.StatusUnauthorized {
		return res, ErrUnauthorized
	}
	return res, nil
}
