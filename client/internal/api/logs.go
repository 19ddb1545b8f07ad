package api

import (
	"context"
	"net/http"
)

// ListLogs returns the account's log stream as decoded by the registry.
// The server has no dedicated log type, so entries come back as generic
// maps.
func ListLogs(ctx context.Context, c Conn) (any, error) {
	resp, err := Do(ctx, c, http.MethodGet, "/logs", nil)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}
