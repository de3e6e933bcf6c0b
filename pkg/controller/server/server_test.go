package server_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/octagram/jaemin/pkg/controller/server"
	"github.com/octagram/jaemin/pkg/domain/mock"
	"github.com/octagram/jaemin/pkg/domain/model"
	"github.com/octagram/jaemin/pkg/domain/types"
)

func TestServerHealth(t *testing.T) {
	srv := server.New(&mock.UseCaseMock{})

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	srv.Mux().ServeHTTP(w, req)

	gt.V(t, w.Code).Equal(http.StatusOK)
	gt.V(t, w.Body.String()).Equal("Server is running")
}

func TestServerWebhook(t *testing.T) {
	t.Run("passes event kind, signature and body to usecase", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			HandleWebhookFunc: func(ctx context.Context, input *model.WebhookInput) error {
				return nil
			},
		}
		srv := server.New(uc)

		req := httptest.NewRequest("POST", "/webhook", bytes.NewReader([]byte(`{"zen":"ok"}`)))
		req.Header.Set("X-GitHub-Event", "pull_request")
		req.Header.Set("X-Hub-Signature-256", "sha256=deadbeef")
		w := httptest.NewRecorder()
		srv.Mux().ServeHTTP(w, req)

		gt.V(t, w.Code).Equal(http.StatusOK)
		gt.V(t, w.Body.String()).Equal("OK")

		calls := uc.HandleWebhookCalls
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Kind).Equal("pull_request")
		gt.V(t, calls[0].Signature).Equal("sha256=deadbeef")
		gt.V(t, string(calls[0].Payload)).Equal(`{"zen":"ok"}`)
	})

	t.Run("returns 401 on signature mismatch", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			HandleWebhookFunc: func(ctx context.Context, input *model.WebhookInput) error {
				return goerr.Wrap(types.ErrSignatureMismatch, "invalid signature")
			},
		}
		srv := server.New(uc)

		req := httptest.NewRequest("POST", "/webhook", bytes.NewReader([]byte(`{}`)))
		w := httptest.NewRecorder()
		srv.Mux().ServeHTTP(w, req)

		gt.V(t, w.Code).Equal(http.StatusUnauthorized)
		gt.V(t, w.Body.String()).Equal("Unauthorized")
	})

	t.Run("returns 500 on other errors", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			HandleWebhookFunc: func(ctx context.Context, input *model.WebhookInput) error {
				return goerr.New("storage unavailable")
			},
		}
		srv := server.New(uc)

		req := httptest.NewRequest("POST", "/webhook", bytes.NewReader([]byte(`{}`)))
		w := httptest.NewRecorder()
		srv.Mux().ServeHTTP(w, req)

		gt.V(t, w.Code).Equal(http.StatusInternalServerError)
		gt.V(t, w.Body.String()).Equal("Internal Server Error")
	})

	t.Run("unknown path returns 404", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		req := httptest.NewRequest("GET", "/nowhere", nil)
		w := httptest.NewRecorder()
		srv.Mux().ServeHTTP(w, req)

		gt.V(t, w.Code).Equal(http.StatusNotFound)
	})
}
