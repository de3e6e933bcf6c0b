package mock

import (
	"context"
	"sync"
	"time"

	"github.com/octagram/jaemin/pkg/domain/interfaces"
	"github.com/octagram/jaemin/pkg/domain/model"
	"github.com/octagram/jaemin/pkg/domain/types"
)

// ChatGatewayMock implements interfaces.ChatGateway for tests.
type ChatGatewayMock struct {
	SendNotificationFunc func(ctx context.Context, channelID types.ChannelID, notify *model.Notification) error

	mu                    sync.Mutex
	SendNotificationCalls []SendNotificationCall
}

type SendNotificationCall struct {
	ChannelID types.ChannelID
	Notify    *model.Notification
}

var _ interfaces.ChatGateway = &ChatGatewayMock{}

func (x *ChatGatewayMock) SendNotification(ctx context.Context, channelID types.ChannelID, notify *model.Notification) error {
	x.mu.Lock()
	x.SendNotificationCalls = append(x.SendNotificationCalls, SendNotificationCall{
		ChannelID: channelID,
		Notify:    notify,
	})
	x.mu.Unlock()

	if x.SendNotificationFunc == nil {
		return nil
	}
	return x.SendNotificationFunc(ctx, channelID, notify)
}

// GenAIMock implements interfaces.GenAI for tests.
type GenAIMock struct {
	GenerateContentFunc  func(ctx context.Context, content string) (string, error)
	ResetSessionFunc     func()
	SessionCreatedAtFunc func() time.Time

	mu                   sync.Mutex
	GenerateContentCalls []string
	ResetSessionCount    int
}

var _ interfaces.GenAI = &GenAIMock{}

func (x *GenAIMock) GenerateContent(ctx context.Context, content string) (string, error) {
	x.mu.Lock()
	x.GenerateContentCalls = append(x.GenerateContentCalls, content)
	x.mu.Unlock()

	if x.GenerateContentFunc == nil {
		return "", nil
	}
	return x.GenerateContentFunc(ctx, content)
}

func (x *GenAIMock) ResetSession() {
	x.mu.Lock()
	x.ResetSessionCount++
	x.mu.Unlock()

	if x.ResetSessionFunc != nil {
		x.ResetSessionFunc()
	}
}

func (x *GenAIMock) SessionCreatedAt() time.Time {
	if x.SessionCreatedAtFunc == nil {
		return time.Time{}
	}
	return x.SessionCreatedAtFunc()
}
