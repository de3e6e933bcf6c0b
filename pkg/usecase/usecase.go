package usecase

import (
	"time"

	"github.com/octagram/jaemin/pkg/domain/interfaces"
	"github.com/octagram/jaemin/pkg/domain/types"
	"github.com/octagram/jaemin/pkg/infra"
)

const defaultSummaryTimeout = 30 * time.Second

type UseCase struct {
	clients *infra.Clients

	webhookSecret  types.WebhookSecret
	summaryTimeout time.Duration
}

var _ interfaces.UseCase = &UseCase{}

type Option func(*UseCase)

// WithWebhookSecret sets the shared secret for webhook signature
// verification. An empty secret leaves verification effectively disabled.
func WithWebhookSecret(secret types.WebhookSecret) Option {
	return func(x *UseCase) {
		x.webhookSecret = secret
	}
}

// WithSummaryTimeout bounds how long the webhook pipeline waits for a
// summarization reply before falling back to the raw PR body.
func WithSummaryTimeout(timeout time.Duration) Option {
	return func(x *UseCase) {
		x.summaryTimeout = timeout
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:        clients,
		summaryTimeout: defaultSummaryTimeout,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}
