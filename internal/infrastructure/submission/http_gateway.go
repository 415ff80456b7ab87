// Package submission posts finished order documents to the backend
// endpoint that forwards them to the finance mailbox.
package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"pedido_venda/internal/domain/entities"
	"pedido_venda/internal/usecase/interfaces"
	"strings"
	"time"
)

var ErrMissingSubmissionURL = errors.New("missing SUBMISSION_URL")

const DefaultTimeout = 15 * time.Second

type HTTPGateway struct {
	client   *http.Client
	url      string
	timeout  time.Duration
	mockMode bool
}

var _ interfaces.ISubmissionGateway = (*HTTPGateway)(nil)

// NewHTTPGateway builds a gateway for url. In mock mode no request is made
// and every submission is reported as delivered.
func NewHTTPGateway(url string, timeout time.Duration, mock bool) (*HTTPGateway, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if mock {
		log.Printf("[submission][gateway] mock mode enabled")
		return &HTTPGateway{mockMode: true, timeout: timeout}, nil
	}

	url = strings.TrimSpace(url)
	if url == "" {
		log.Printf("[submission][gateway] missing SUBMISSION_URL")
		return nil, ErrMissingSubmissionURL
	}
	log.Printf("[submission][gateway] client initialized url=%s timeout=%s", url, timeout)

	// Send bounds each call with a context deadline so an expired call always
	// surfaces as context.DeadlineExceeded.
	return &HTTPGateway{client: &http.Client{}, url: url, timeout: timeout}, nil
}

// Send posts req as JSON. Any 2xx answer is a success; transport failures
// and timeouts wrap ErrSubmissionUnavailable, other statuses wrap
// ErrSubmissionRejected.
func (g *HTTPGateway) Send(ctx context.Context, req entities.SubmissionRequest) error {
	if g != nil && g.mockMode {
		log.Printf("[submission][gateway] mock send file_name=%s document_len=%d", req.FileName, len(req.DocumentBase64))
		return nil
	}
	if g == nil || g.client == nil {
		log.Printf("[submission][gateway] gateway not configured")
		return interfaces.ErrSubmissionUnavailable
	}

	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %w", interfaces.ErrSubmissionUnavailable, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	log.Printf("[submission][gateway] send start file_name=%s payload_len=%d", req.FileName, len(body))
	resp, err := g.client.Do(httpReq)
	if err != nil {
		log.Printf("[submission][gateway] send failed err=%v", err)
		return fmt.Errorf("%w: %w", interfaces.ErrSubmissionUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[submission][gateway] send rejected status=%d", resp.StatusCode)
		return fmt.Errorf("%w: status=%d", interfaces.ErrSubmissionRejected, resp.StatusCode)
	}

	log.Printf("[submission][gateway] send success status=%d", resp.StatusCode)
	return nil
}
