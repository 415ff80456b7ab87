package interfaces

import (
	"context"
	"errors"
	"pedido_venda/internal/domain/entities"
)

var (
	// ErrSubmissionUnavailable covers a missing configuration, an unreachable
	// endpoint and a timeout.
	ErrSubmissionUnavailable = errors.New("submission endpoint unavailable")
	// ErrSubmissionRejected is a non-2xx answer from the endpoint.
	ErrSubmissionRejected = errors.New("submission rejected")
)

// ISubmissionGateway delivers a finished order document to the backend that
// forwards it to the finance mailbox.
type ISubmissionGateway interface {
	Send(ctx context.Context, req entities.SubmissionRequest) error
}
