package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// WaitForHealthy polls baseURL/health until it answers 200, ctx is done or
// fifty attempts have failed.
func WaitForHealthy(ctx context.Context, baseURL string) error {
	url := strings.TrimRight(baseURL, "/") + "/health"

	var lastErr error
	for i := 0; i < 50; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("failed to build health request: %w", err)
		}

		resp, err := http.DefaultClient.Do(req)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
			lastErr = fmt.Errorf("health check returned %s", resp.Status)
		} else {
			lastErr = err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}
	}
	return fmt.Errorf("server at %s not healthy: %w", baseURL, lastErr)
}
