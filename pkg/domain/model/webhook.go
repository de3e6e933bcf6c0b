package model

import (
	"encoding/json"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/octagram/jaemin/pkg/domain/types"
)

// WebhookKind discriminates the webhook event union.
type WebhookKind string

const (
	KindPush        WebhookKind = "push"
	KindPullRequest WebhookKind = "pull_request"
	KindIssues      WebhookKind = "issues"
	KindUnknown     WebhookKind = "unknown"
)

// WebhookInput is the raw material of one inbound webhook request: the event
// kind header, the signature header (may be empty) and the exact body bytes.
// Verification must run against Payload as received, not a re-serialized form.
type WebhookInput struct {
	Kind      string
	Signature string
	Payload   []byte
}

// WebhookEvent is a tagged union over the event kinds this bot handles.
// Exactly one of the pointer fields is set for a recognized kind; none are
// set for KindUnknown. The value lives only for the handling of one request.
type WebhookEvent struct {
	Kind        WebhookKind
	Push        *github.PushEvent
	PullRequest *github.PullRequestEvent
	Issues      *github.IssuesEvent
}

// ParseWebhookEvent decodes a webhook payload into the event union. It is
// total over the kind: unrecognized kinds yield KindUnknown without touching
// the payload. A payload that fails to decode for a recognized kind is the
// only error path.
func ParseWebhookEvent(kind string, payload []byte) (*WebhookEvent, error) {
	switch WebhookKind(kind) {
	case KindPush:
		var ev github.PushEvent
		if err := json.Unmarshal(payload, &ev); err != nil {
			return nil, goerr.Wrap(types.ErrInvalidPayload, "decoding push event", goerr.V("cause", err.Error()))
		}
		return &WebhookEvent{Kind: KindPush, Push: &ev}, nil

	case KindPullRequest:
		var ev github.PullRequestEvent
		if err := json.Unmarshal(payload, &ev); err != nil {
			return nil, goerr.Wrap(types.ErrInvalidPayload, "decoding pull_request event", goerr.V("cause", err.Error()))
		}
		return &WebhookEvent{Kind: KindPullRequest, PullRequest: &ev}, nil

	case KindIssues:
		var ev github.IssuesEvent
		if err := json.Unmarshal(payload, &ev); err != nil {
			return nil, goerr.Wrap(types.ErrInvalidPayload, "decoding issues event", goerr.V("cause", err.Error()))
		}
		return &WebhookEvent{Kind: KindIssues, Issues: &ev}, nil

	default:
		return &WebhookEvent{Kind: KindUnknown}, nil
	}
}
