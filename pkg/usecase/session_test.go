package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/octagram/jaemin/pkg/domain/mock"
	"github.com/octagram/jaemin/pkg/infra"
	"github.com/octagram/jaemin/pkg/usecase"
)

func TestAISession(t *testing.T) {
	t.Run("reset delegates to the AI client", func(t *testing.T) {
		genAI := &mock.GenAIMock{}
		uc := usecase.New(infra.New(infra.WithGenAI(genAI)))

		gt.NoError(t, uc.ResetAISession(context.Background()))
		gt.V(t, genAI.ResetSessionCount).Equal(1)
	})

	t.Run("created-at reports the session timestamp", func(t *testing.T) {
		createdAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
		genAI := &mock.GenAIMock{
			SessionCreatedAtFunc: func() time.Time { return createdAt },
		}
		uc := usecase.New(infra.New(infra.WithGenAI(genAI)))

		got := gt.R1(uc.AISessionCreatedAt(context.Background())).NoError(t)
		gt.V(t, got).Equal(createdAt)
	})

	t.Run("missing AI backend is an error", func(t *testing.T) {
		uc := usecase.New(infra.New())

		gt.Error(t, uc.ResetAISession(context.Background()))
		_, err := uc.AISessionCreatedAt(context.Background())
		gt.Error(t, err)
	})
}
