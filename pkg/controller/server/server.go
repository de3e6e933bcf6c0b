package server

import (
	"errors"
	"io"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/octagram/jaemin/pkg/domain/interfaces"
	"github.com/octagram/jaemin/pkg/domain/model"
	"github.com/octagram/jaemin/pkg/domain/types"
	"github.com/octagram/jaemin/pkg/utils/errutil"
	"github.com/octagram/jaemin/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func New(uc interfaces.UseCase) *Server {
	r := chi.NewRouter()
	r.Use(preProcess)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("Server is running"))
	})

	r.Post("/webhook", func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			errutil.HandleError(r.Context(), "fail to read webhook body", err)
			safeWrite(w, http.StatusInternalServerError, []byte("Internal Server Error"))
			return
		}

		input := &model.WebhookInput{
			Kind:      r.Header.Get("X-GitHub-Event"),
			Signature: r.Header.Get("X-Hub-Signature-256"),
			Payload:   body,
		}

		if err := uc.HandleWebhook(r.Context(), input); err != nil {
			if errors.Is(err, types.ErrSignatureMismatch) {
				// Payload content is never logged for rejected requests
				logging.From(r.Context()).Error("webhook signature verification failed")
				safeWrite(w, http.StatusUnauthorized, []byte("Unauthorized"))
				return
			}

			errutil.HandleError(r.Context(), "fail to process webhook", err)
			safeWrite(w, http.StatusInternalServerError, []byte("Internal Server Error"))
			return
		}

		safeWrite(w, http.StatusOK, []byte("OK"))
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
