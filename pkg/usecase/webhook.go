package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/octagram/jaemin/pkg/domain/model"
	"github.com/octagram/jaemin/pkg/domain/types"
	"github.com/octagram/jaemin/pkg/repository"
	"github.com/octagram/jaemin/pkg/utils/logging"
)

const summaryInstruction = "Summarize the following pull request body as a single-level bullet list, " +
	"keeping only the key points, and state any related issue numbers explicitly. " +
	"If it cannot be summarized, say so."

const (
	embedColor      = 0x0099ff
	footerAISummary = "🤖 Summarized by AI"
	footerFallback  = "😵‍💫 Could not summarize"
)

// Notifications are suppressed while the local hour is in [0,7]. The check
// runs at send time, after the summarization wait, so an event received just
// before midnight can still be suppressed.
func inQuietHours(t time.Time) bool {
	hour := t.Hour()
	return hour >= 0 && hour <= 7
}

// HandleWebhook runs the full webhook pipeline for one request: verify,
// classify, resolve the destination channel, summarize if applicable, render
// and send. Only signature mismatch and payload decode failures are returned
// to the HTTP boundary; every later failure is logged and swallowed so the
// sender always gets an acknowledgement.
func (x *UseCase) HandleWebhook(ctx context.Context, input *model.WebhookInput) error {
	// A request without a signature header is processed unverified. This
	// keeps local and test deliveries working when no secret is shared.
	if input.Signature != "" && !verifySignature(x.webhookSecret, input.Payload, input.Signature) {
		return goerr.Wrap(types.ErrSignatureMismatch, "webhook signature verification failed")
	}

	if input.Kind == "" {
		logging.From(ctx).Debug("webhook without event kind header, ignoring")
		return nil
	}

	event, err := model.ParseWebhookEvent(input.Kind, input.Payload)
	if err != nil {
		return err
	}

	logging.From(ctx).Info("received GitHub webhook event", slog.String("kind", string(event.Kind)))

	switch event.Kind {
	case model.KindPullRequest:
		x.handlePullRequest(ctx, event.PullRequest)
	case model.KindPush, model.KindIssues:
		// Classified but intentionally not acted upon.
	default:
		logging.From(ctx).Info("unhandled webhook event", slog.String("kind", input.Kind))
	}

	return nil
}

func (x *UseCase) handlePullRequest(ctx context.Context, ev *github.PullRequestEvent) {
	action := ev.GetAction()
	if action != "opened" && action != "reopened" && action != "closed" {
		logging.From(ctx).Debug("ignore PR event", slog.String("action", action))
		return
	}

	repoName := types.RepoName(ev.GetRepo().GetName())
	mapping, err := x.clients.Directory().LookupByRepo(ctx, repoName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Routing miss: no channel configured for this repository.
			logging.From(ctx).Debug("no notification channel for repository", slog.String("repo", string(repoName)))
		} else {
			logging.From(ctx).Error("fail to resolve notification channel", slog.Any("error", err))
		}
		return
	}

	var notify *model.Notification
	switch action {
	case "opened", "reopened":
		description, aiSummary := x.summarizePullRequest(ctx, ev.GetPullRequest().GetBody())
		notify = renderPullRequestNotification(ev, description, aiSummary)
	case "closed":
		notify = renderPullRequestClosed(ev)
	}

	if inQuietHours(logging.CtxTime(ctx)) {
		logging.From(ctx).Debug("notification suppressed during quiet hours")
		return
	}

	if err := x.clients.Chat().SendNotification(ctx, mapping.ChannelID, notify); err != nil {
		logging.From(ctx).Error("fail to send notification",
			slog.Any("error", err),
			slog.Any("channelID", mapping.ChannelID),
		)
	}
}

type summaryReply struct {
	text      string
	aiSummary bool
}

// summarizePullRequest publishes a summarization request on the bus and
// waits for the responder's callback, bounded by the configured timeout. On
// empty reply, failure or timeout it falls back to the raw body with the
// attribution flag cleared.
func (x *UseCase) summarizePullRequest(ctx context.Context, body string) (string, bool) {
	replyCh := make(chan summaryReply, 1)
	req := model.NewSummarizeRequest(
		fmt.Sprintf("%s\n\n%s", summaryInstruction, body),
		func(summary string, aiSummary bool) {
			replyCh <- summaryReply{text: summary, aiSummary: aiSummary}
		},
	)

	x.clients.EventBus().Publish(ctx, req)

	var reply summaryReply
	select {
	case reply = <-replyCh:
	case <-time.After(x.summaryTimeout):
		logging.From(ctx).Warn("summarization timed out, falling back to raw body")
	case <-ctx.Done():
		logging.From(ctx).Warn("request cancelled while awaiting summary")
	}

	if reply.text == "" {
		if body == "" {
			return "No description", false
		}
		return body, false
	}

	return reply.text, reply.aiSummary
}

func renderPullRequestNotification(ev *github.PullRequestEvent, description string, aiSummary bool) *model.Notification {
	pr := ev.GetPullRequest()

	footer := footerFallback
	if aiSummary {
		footer = footerAISummary
	}

	notify := basePullRequestNotification(ev)
	notify.Description = description
	notify.FooterText = footer
	notify.Timestamp = pr.GetCreatedAt().Time

	return notify
}

func renderPullRequestClosed(ev *github.PullRequestEvent) *model.Notification {
	notify := basePullRequestNotification(ev)
	notify.Description = "The PR has been closed. Great work! 👍👍"
	notify.Timestamp = ev.GetPullRequest().GetClosedAt().Time

	return notify
}

func basePullRequestNotification(ev *github.PullRequestEvent) *model.Notification {
	pr := ev.GetPullRequest()

	org := ev.GetOrganization().GetLogin()
	if org == "" {
		org = "-"
	}

	return &model.Notification{
		Title:         fmt.Sprintf("PR %s: %s (#%d)", ev.GetAction(), pr.GetTitle(), pr.GetNumber()),
		URL:           pr.GetHTMLURL(),
		AuthorName:    pr.GetUser().GetLogin(),
		AuthorIconURL: pr.GetUser().GetAvatarURL(),
		AuthorURL:     pr.GetUser().GetHTMLURL(),
		Color:         embedColor,
		Fields: []model.NotificationField{
			{Name: "🏢 Organization", Value: org, Inline: true},
			{Name: "📦 Repository", Value: ev.GetRepo().GetName(), Inline: true},
			{Name: "🌿 Branch", Value: fmt.Sprintf("base: `%s` ← compare: `%s`", pr.GetBase().GetRef(), pr.GetHead().GetRef())},
		},
	}
}
