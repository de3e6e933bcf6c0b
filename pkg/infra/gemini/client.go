// Package gemini is a client for the Gemini Generative Language REST API.
// It serves two roles: single-shot content generation for the summarizer,
// and ownership of the resettable chat session handle behind the /aireset
// and /aistatus commands.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/octagram/jaemin/pkg/domain/interfaces"
	"github.com/octagram/jaemin/pkg/domain/types"
	"github.com/octagram/jaemin/pkg/utils/safe"
)

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-2.5-flash"

	// DefaultAPIURL is the default Gemini API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

// Session is the explicit, resettable conversational handle. It is replaced
// wholesale by ResetSession, never mutated in place.
type Session struct {
	CreatedAt time.Time
}

type Client struct {
	apiKey     types.GeminiAPIKey
	apiURL     string
	model      string
	httpClient *http.Client

	mu      sync.Mutex
	session *Session
}

var _ interfaces.GenAI = &Client{}

type Option func(*Client)

func WithModel(model string) Option {
	return func(x *Client) {
		x.model = model
	}
}

func WithBaseURL(apiURL string) Option {
	return func(x *Client) {
		x.apiURL = apiURL
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(x *Client) {
		x.httpClient = httpClient
	}
}

// New creates a Gemini API client with the given API key. A fresh chat
// session is opened immediately so SessionCreatedAt is always meaningful.
func New(apiKey types.GeminiAPIKey, options ...Option) *Client {
	client := &Client{
		apiKey:     apiKey,
		apiURL:     DefaultAPIURL,
		model:      DefaultModel,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		session:    &Session{CreatedAt: time.Now()},
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

type generateRequest struct {
	Contents []requestContent `json:"contents"`
}

type requestContent struct {
	Parts []contentPart `json:"parts"`
}

type contentPart struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []contentPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateContent sends a single-shot generation request. It does not use or
// mutate the chat session. The returned text is trimmed; empty output is not
// an error, the caller decides how to degrade.
func (x *Client) GenerateContent(ctx context.Context, content string) (string, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", x.apiURL, x.model, string(x.apiKey))

	body, err := json.Marshal(&generateRequest{
		Contents: []requestContent{
			{Parts: []contentPart{{Text: content}}},
		},
	})
	if err != nil {
		return "", goerr.Wrap(err, "marshaling generate request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", goerr.Wrap(err, "creating generate request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := x.httpClient.Do(httpReq)
	if err != nil {
		return "", goerr.Wrap(err, "calling gemini API")
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", goerr.New("gemini API error",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(raw)),
		)
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", goerr.Wrap(err, "decoding gemini response")
	}

	var texts []string
	for _, candidate := range result.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				texts = append(texts, part.Text)
			}
		}
		break // only the first candidate is used
	}

	return strings.TrimSpace(strings.Join(texts, "")), nil
}

// ResetSession discards the current chat session and opens a new one.
func (x *Client) ResetSession() {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.session = &Session{CreatedAt: time.Now()}
}

func (x *Client) SessionCreatedAt() time.Time {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.session.CreatedAt
}
