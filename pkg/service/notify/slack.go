package notify

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/scanlight-hq/scanlight/pkg/domain/interfaces"
	"github.com/scanlight-hq/scanlight/pkg/domain/model"
	"github.com/slack-go/slack"
)

// SlackNotifier posts portfolio risk alerts to a Slack channel
type SlackNotifier struct {
	client    *slack.Client
	channelID string
}

// NewSlackNotifier creates a notifier for the given bot token and channel
func NewSlackNotifier(token, channelID string) interfaces.Notifier {
	return &SlackNotifier{
		client:    slack.New(token),
		channelID: channelID,
	}
}

// NotifyPortfolioRisk posts a summary of the at-risk accounts
func (n *SlackNotifier) NotifyPortfolioRisk(ctx context.Context, risk *model.PortfolioRisk) error {
	if risk == nil {
		return goerr.New("portfolio risk is nil")
	}

	blocks := buildRiskBlocks(risk)
	_, _, err := n.client.PostMessageContext(ctx, n.channelID, slack.MsgOptionBlocks(blocks...))
	if err != nil {
		return goerr.Wrap(err, "failed to post risk alert",
			goerr.V("channel", n.channelID))
	}

	return nil
}

// buildRiskBlocks renders the alert message blocks
func buildRiskBlocks(risk *model.PortfolioRisk) []slack.Block {
	header := slack.NewHeaderBlock(
		slack.NewTextBlockObject(slack.PlainTextType, ":rotating_light: Portfolio risk alert", true, false),
	)
	summary := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*%d* accounts at risk (*%d* critical, *%d* high)",
				risk.AtRiskCount, risk.CriticalCount, risk.HighCount),
			false, false),
		nil, nil,
	)

	blocks := []slack.Block{header, summary}
	for _, account := range risk.Accounts {
		if !account.AtRisk {
			continue
		}
		text := fmt.Sprintf("*%s*: %s (score %d)", account.AccountID, account.Bucket, account.Score)
		for _, factor := range account.Factors {
			text += "\n• " + factor
		}
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, text, false, false),
			nil, nil,
		))
	}

	return blocks
}
