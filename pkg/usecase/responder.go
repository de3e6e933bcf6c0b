package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/octagram/jaemin/pkg/domain/model"
	"github.com/octagram/jaemin/pkg/eventbus"
	"github.com/octagram/jaemin/pkg/utils/logging"
)

// StartSummarizeResponder subscribes the AI responder to summarization
// requests. Called once at startup; the returned subscription can shut the
// responder down. Each request is independent and never touches the chat
// session.
func (x *UseCase) StartSummarizeResponder(ctx context.Context) eventbus.Subscription {
	return x.clients.EventBus().Subscribe(model.EventTypeSummarize, func(ctx context.Context, ev eventbus.Event) {
		req, ok := ev.(*model.SummarizeRequest)
		if !ok {
			logging.From(ctx).Warn("unexpected event on summarize topic", slog.Any("event", ev))
			return
		}

		// The AI call must not block the publisher; completion is observed
		// through the request's callback, not through the bus.
		go x.respondSummarize(ctx, req)
	})
}

func (x *UseCase) respondSummarize(ctx context.Context, req *model.SummarizeRequest) {
	genAI := x.clients.GenAI()
	if genAI == nil {
		req.Reply("", false)
		return
	}

	text, err := genAI.GenerateContent(ctx, req.Content)
	if err != nil {
		logging.From(ctx).Error("fail to generate summary", slog.Any("error", err))
		req.Reply("", false)
		return
	}

	text = strings.TrimSpace(text)
	if text == "" {
		req.Reply("", false)
		return
	}

	req.Reply(text, true)
}
