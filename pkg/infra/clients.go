package infra

import (
	"github.com/octagram/jaemin/pkg/domain/interfaces"
	"github.com/octagram/jaemin/pkg/eventbus"
	"github.com/octagram/jaemin/pkg/repository/memory"
)

// Clients bundles the external collaborators of the usecase layer. The zero
// options give an in-memory directory and a fresh bus, enough for tests;
// serve wires the real backends.
type Clients struct {
	directory interfaces.ChannelDirectory
	chat      interfaces.ChatGateway
	genAI     interfaces.GenAI
	bus       *eventbus.Bus
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		directory: memory.New(),
		bus:       eventbus.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) Directory() interfaces.ChannelDirectory {
	return x.directory
}
func (x *Clients) Chat() interfaces.ChatGateway {
	return x.chat
}
func (x *Clients) GenAI() interfaces.GenAI {
	return x.genAI
}
func (x *Clients) EventBus() *eventbus.Bus {
	return x.bus
}

func WithDirectory(dir interfaces.ChannelDirectory) Option {
	return func(x *Clients) {
		x.directory = dir
	}
}

func WithChatGateway(chat interfaces.ChatGateway) Option {
	return func(x *Clients) {
		x.chat = chat
	}
}

func WithGenAI(genAI interfaces.GenAI) Option {
	return func(x *Clients) {
		x.genAI = genAI
	}
}

func WithEventBus(bus *eventbus.Bus) Option {
	return func(x *Clients) {
		x.bus = bus
	}
}
