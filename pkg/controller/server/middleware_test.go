package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/octagram/jaemin/pkg/controller/server"
	"github.com/octagram/jaemin/pkg/domain/mock"
	"github.com/octagram/jaemin/pkg/utils/logging"
)

func TestMiddleware(t *testing.T) {
	t.Run("preProcess adds logger with request_id to context", func(t *testing.T) {
		var capturedCtx context.Context

		srv := server.New(&mock.UseCaseMock{})
		mux := srv.Mux()
		mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
			capturedCtx = r.Context()
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		// The middleware should have installed a per-request logger
		logger := logging.From(capturedCtx)
		defaultLogger := logging.From(context.Background())
		gt.V(t, logger == defaultLogger).Equal(false)
	})

	t.Run("statusCodeLogger captures WriteHeader calls", func(t *testing.T) {
		testCases := []struct {
			name         string
			handlerFunc  http.HandlerFunc
			expectedCode int
		}{
			{
				name: "captures 404 status code",
				handlerFunc: func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusNotFound)
				},
				expectedCode: http.StatusNotFound,
			},
			{
				name: "captures 500 status code",
				handlerFunc: func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusInternalServerError)
				},
				expectedCode: http.StatusInternalServerError,
			},
			{
				name: "defaults to 200 when WriteHeader not called",
				handlerFunc: func(w http.ResponseWriter, r *http.Request) {
					_, _ = w.Write([]byte("ok"))
				},
				expectedCode: http.StatusOK,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				srv := server.New(&mock.UseCaseMock{})
				mux := srv.Mux()
				mux.HandleFunc("/test", tc.handlerFunc)

				req := httptest.NewRequest("GET", "/test", nil)
				w := httptest.NewRecorder()

				mux.ServeHTTP(w, req)

				gt.V(t, w.Code).Equal(tc.expectedCode)
			})
		}
	})
}
