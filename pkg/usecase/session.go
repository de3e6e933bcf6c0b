package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/octagram/jaemin/pkg/domain/types"
)

func (x *UseCase) ResetAISession(ctx context.Context) error {
	if x.clients.GenAI() == nil {
		return goerr.Wrap(types.ErrInvalidOption, "AI backend is not configured")
	}
	x.clients.GenAI().ResetSession()
	return nil
}

func (x *UseCase) AISessionCreatedAt(ctx context.Context) (time.Time, error) {
	if x.clients.GenAI() == nil {
		return time.Time{}, goerr.Wrap(types.ErrInvalidOption, "AI backend is not configured")
	}
	return x.clients.GenAI().SessionCreatedAt(), nil
}
