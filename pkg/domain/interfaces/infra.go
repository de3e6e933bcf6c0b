package interfaces

import (
	"context"
	"time"

	"github.com/octagram/jaemin/pkg/domain/model"
	"github.com/octagram/jaemin/pkg/domain/types"
)

// ChatGateway is the outbound side of the chat platform: it delivers a
// rendered notification to a channel. Fetching and validating the channel is
// the gateway's concern; a channel that is missing or of the wrong type is
// an error the caller logs and swallows.
type ChatGateway interface {
	SendNotification(ctx context.Context, channelID types.ChannelID, notify *model.Notification) error
}

// GenAI is the conversational AI backend. GenerateContent is a single-shot
// call that never touches the running chat session; the session methods
// manage the resettable handle behind the /aireset and /aistatus commands.
type GenAI interface {
	GenerateContent(ctx context.Context, content string) (string, error)
	ResetSession()
	SessionCreatedAt() time.Time
}
