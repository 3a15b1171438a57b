package config

import (
	"log/slog"

	"github.com/scanlight-hq/scanlight/pkg/domain/interfaces"
	"github.com/scanlight-hq/scanlight/pkg/service/notify"
	"github.com/urfave/cli/v3"
)

// Slack holds risk alert notification configuration
type Slack struct {
	OAuthToken string
	ChannelID  string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack bot token for risk alerts",
			Category:    "Slack",
			Sources:     cli.EnvVars("SCANLIGHT_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID for risk alerts",
			Category:    "Slack",
			Sources:     cli.EnvVars("SCANLIGHT_SLACK_CHANNEL"),
			Destination: &s.ChannelID,
		},
	}
}

// ConfigureOptional returns a notifier when both token and channel are
// set, nil otherwise. Alerts are an optional concern; the engine works
// without them.
func (s *Slack) ConfigureOptional() interfaces.Notifier {
	if s.OAuthToken == "" || s.ChannelID == "" {
		return nil
	}
	return notify.NewSlackNotifier(s.OAuthToken, s.ChannelID)
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("hasToken", s.OAuthToken != ""),
		slog.String("channel", s.ChannelID),
	)
}
