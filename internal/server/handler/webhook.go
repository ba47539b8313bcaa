// Package handler provides HTTP handlers for PR Warden.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v73/github"

	"github.com/sevigo/pr-warden/internal/core"
)

// WebhookHandler processes incoming webhooks from GitHub.
type WebhookHandler struct {
	secret     []byte
	dispatcher core.JobDispatcher
	logger     *slog.Logger
}

// NewWebhookHandler creates a webhook handler. An empty secret disables
// signature verification.
func NewWebhookHandler(secret string, dispatcher core.JobDispatcher, logger *slog.Logger) *WebhookHandler {
	if secret == "" {
		logger.Warn("GITHUB_WEBHOOK_SECRET is empty, webhook signatures will not be verified")
	}
	return &WebhookHandler{
		secret:     []byte(secret),
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handle processes GitHub webhook requests. Every well-formed delivery is
// acknowledged with 200; the review itself runs in the background.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := github.ValidatePayload(r, h.secret)
	if err != nil {
		h.logger.Error("invalid webhook payload signature", "error", err)
		http.Error(w, "Invalid signature", http.StatusUnauthorized)
		return
	}

	eventType := github.WebHookType(r)
	deliveryID := github.DeliveryID(r)

	event, err := github.ParseWebHook(eventType, payload)
	if err != nil {
		h.logger.Error("could not parse webhook", "event", eventType, "delivery", deliveryID, "error", err)
		http.Error(w, "Could not parse webhook", http.StatusBadRequest)
		return
	}

	switch e := event.(type) {
	case *github.PullRequestEvent:
		h.handlePullRequest(r.Context(), e, deliveryID)
	default:
		h.logger.Debug("ignoring unhandled webhook event type", "event", eventType, "delivery", deliveryID)
	}

	writeOK(w)
}

func (h *WebhookHandler) handlePullRequest(ctx context.Context, event *github.PullRequestEvent, deliveryID string) {
	if !core.IsReviewable(core.PullRequestEventType, event.GetAction()) {
		h.logger.Debug("ignoring pull request action", "action", event.GetAction(), "delivery", deliveryID)
		return
	}

	reviewEvent, err := core.EventFromPullRequest(event)
	if err != nil {
		h.logger.Warn("ignoring malformed pull request event", "delivery", deliveryID, "error", err)
		return
	}
	reviewEvent.DeliveryID = deliveryID

	if err := h.dispatcher.Dispatch(ctx, reviewEvent); err != nil {
		h.logger.Error("failed to dispatch review job",
			"repo", reviewEvent.RepoFullName,
			"pr", reviewEvent.PRNumber,
			"delivery", deliveryID,
			"error", err,
		)
		return
	}

	h.logger.Info("review job dispatched", "repo", reviewEvent.RepoFullName, "pr", reviewEvent.PRNumber, "action", reviewEvent.Action)
}

func writeOK(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
