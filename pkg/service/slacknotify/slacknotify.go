package slacknotify

import (
	"bytes"
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/Kassiosky/ZabbixMonitor/pkg/domain/model"
)

// Service pushes monitor notifications into a Slack channel. It is the
// stand-in for the desktop tray balloons of the original tool: only
// Notify and ShowImage do real work, the table and badge live on the
// local dashboard.
type Service struct {
	client  *slack.Client
	channel string
}

// New creates a Slack notification service
func New(token, channel string) *Service {
	return &Service{
		client:  slack.New(token),
		channel: channel,
	}
}

// RenderProblems is a no-op; the problem table is a dashboard concern
func (s *Service) RenderProblems(snapshot model.Snapshot) {}

// SetStatusBadge is a no-op; the badge is a dashboard concern
func (s *Service) SetStatusBadge(count int) {}

// Notify posts a notification message to the configured channel.
// Failures are logged only; the poll loop must never learn about them.
func (s *Service) Notify(ctx context.Context, title, message string) {
	attachment := slack.Attachment{
		Title: title,
		Text:  message,
		Color: model.SeverityHigh.Color(),
	}

	_, _, err := s.client.PostMessageContext(ctx, s.channel,
		slack.MsgOptionAttachments(attachment),
	)
	if err != nil {
		ctxlog.From(ctx).Warn("failed to post Slack notification",
			"error", goerr.Wrap(err, "slack post failed"),
			"channel", s.channel,
		)
	}
}

// ShowImage uploads a rendered graph image to the configured channel
func (s *Service) ShowImage(ctx context.Context, title string, image []byte) {
	_, err := s.client.UploadFileV2Context(ctx, slack.UploadFileV2Parameters{
		Filename: "graph.png",
		Title:    title,
		Reader:   bytes.NewReader(image),
		FileSize: len(image),
		Channel:  s.channel,
	})
	if err != nil {
		ctxlog.From(ctx).Warn("failed to upload graph image to Slack",
			"error", goerr.Wrap(err, "slack upload failed"),
			"channel", s.channel,
		)
	}
}
