package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/octagram/jaemin/pkg/domain/mock"
	"github.com/octagram/jaemin/pkg/domain/model"
	"github.com/octagram/jaemin/pkg/infra"
	"github.com/octagram/jaemin/pkg/usecase"
)

type replyRecorder struct {
	mu      sync.Mutex
	calls   int
	summary string
	ai      bool
	done    chan struct{}
}

func newReplyRecorder() *replyRecorder {
	return &replyRecorder{done: make(chan struct{}, 8)}
}

func (x *replyRecorder) callback(summary string, aiSummary bool) {
	x.mu.Lock()
	x.calls++
	x.summary = summary
	x.ai = aiSummary
	x.mu.Unlock()
	x.done <- struct{}{}
}

func (x *replyRecorder) wait(t *testing.T) {
	t.Helper()
	select {
	case <-x.done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for reply")
	}
}

func TestSummarizeResponder(t *testing.T) {
	newResponder := func(t *testing.T, genAI *mock.GenAIMock) *infra.Clients {
		t.Helper()
		clients := infra.New(infra.WithGenAI(genAI))
		uc := usecase.New(clients)
		sub := uc.StartSummarizeResponder(context.Background())
		t.Cleanup(func() {
			clients.EventBus().Unsubscribe(sub)
		})
		return clients
	}

	t.Run("successful generation replies with attribution", func(t *testing.T) {
		clients := newResponder(t, &mock.GenAIMock{
			GenerateContentFunc: func(ctx context.Context, content string) (string, error) {
				return "  - the summary  ", nil
			},
		})

		rec := newReplyRecorder()
		clients.EventBus().Publish(context.Background(), model.NewSummarizeRequest("content", rec.callback))
		rec.wait(t)

		gt.V(t, rec.calls).Equal(1)
		gt.V(t, rec.summary).Equal("- the summary")
		gt.True(t, rec.ai)
	})

	t.Run("backend failure replies exactly once without attribution", func(t *testing.T) {
		clients := newResponder(t, &mock.GenAIMock{
			GenerateContentFunc: func(ctx context.Context, content string) (string, error) {
				return "", errors.New("backend down")
			},
		})

		rec := newReplyRecorder()
		clients.EventBus().Publish(context.Background(), model.NewSummarizeRequest("content", rec.callback))
		rec.wait(t)

		gt.V(t, rec.calls).Equal(1)
		gt.V(t, rec.summary).Equal("")
		gt.False(t, rec.ai)
	})

	t.Run("empty generation replies without attribution", func(t *testing.T) {
		clients := newResponder(t, &mock.GenAIMock{})

		rec := newReplyRecorder()
		clients.EventBus().Publish(context.Background(), model.NewSummarizeRequest("content", rec.callback))
		rec.wait(t)

		gt.V(t, rec.calls).Equal(1)
		gt.False(t, rec.ai)
	})

	t.Run("unsubscribed responder receives nothing", func(t *testing.T) {
		genAI := &mock.GenAIMock{}
		clients := infra.New(infra.WithGenAI(genAI))
		uc := usecase.New(clients)
		sub := uc.StartSummarizeResponder(context.Background())
		clients.EventBus().Unsubscribe(sub)

		rec := newReplyRecorder()
		clients.EventBus().Publish(context.Background(), model.NewSummarizeRequest("content", rec.callback))

		time.Sleep(50 * time.Millisecond)
		gt.V(t, rec.calls).Equal(0)
	})
}
