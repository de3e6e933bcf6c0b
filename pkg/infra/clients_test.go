package infra_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/octagram/jaemin/pkg/domain/mock"
	"github.com/octagram/jaemin/pkg/eventbus"
	"github.com/octagram/jaemin/pkg/infra"
)

func TestNewClients(t *testing.T) {
	t.Run("defaults give a usable directory and bus", func(t *testing.T) {
		clients := infra.New()
		gt.V(t, clients.Directory()).NotEqual(nil)
		gt.V(t, clients.EventBus()).NotEqual(nil)
	})

	t.Run("options replace defaults", func(t *testing.T) {
		bus := eventbus.New()
		chat := &mock.ChatGatewayMock{}
		genAI := &mock.GenAIMock{}
		dir := &mock.ChannelDirectoryMock{}

		clients := infra.New(
			infra.WithEventBus(bus),
			infra.WithChatGateway(chat),
			infra.WithGenAI(genAI),
			infra.WithDirectory(dir),
		)

		gt.V(t, clients.EventBus()).Equal(bus)
		gt.V(t, clients.Chat()).Equal(chat)
		gt.V(t, clients.GenAI()).Equal(genAI)
		gt.V(t, clients.Directory()).Equal(dir)
	})
}
