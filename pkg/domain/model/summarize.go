package model

import (
	"sync"

	"github.com/octagram/jaemin/pkg/eventbus"
)

// EventTypeSummarize carries SummarizeRequest events.
const EventTypeSummarize eventbus.Type = "summarize_pr"

// SummarizeCallback receives the outcome of a summarization request. When
// aiSummary is false the summary is empty and the caller must fall back to
// its own text.
type SummarizeCallback func(summary string, aiSummary bool)

// SummarizeRequest is an ephemeral unit of work published on the event bus.
// The responder answers through Reply, which invokes the embedded callback
// at most once; this is what lets the dispatcher await a reply without
// either side holding a reference to the other.
type SummarizeRequest struct {
	Content string

	once     sync.Once
	callback SummarizeCallback
}

func NewSummarizeRequest(content string, callback SummarizeCallback) *SummarizeRequest {
	return &SummarizeRequest{
		Content:  content,
		callback: callback,
	}
}

func (x *SummarizeRequest) EventType() eventbus.Type {
	return EventTypeSummarize
}

// Reply invokes the callback. Calls after the first are no-ops, so a late or
// duplicate responder cannot double-deliver.
func (x *SummarizeRequest) Reply(summary string, aiSummary bool) {
	x.once.Do(func() {
		x.callback(summary, aiSummary)
	})
}
