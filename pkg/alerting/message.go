package alerting

import (
	"fmt"

	goslack "github.com/slack-go/slack"
)

var levelEmoji = map[string]string{
	"critical": ":rotating_light:",
	"warning":  ":warning:",
}

// CrisisAlertInput carries only routing metadata for a crisis signal —
// never the text that triggered it.
type CrisisAlertInput struct {
	InstanceID  string
	Level       string
	Category    string
	Fingerprint string
	Timestamp   string
}

func dashboardURL(base, instanceID string) string {
	return fmt.Sprintf("%s/instances/%s/audit", base, instanceID)
}

// BuildCrisisMessage creates Block Kit blocks for a crisis signal alert.
// Only the level, category, instance ID, and a dashboard link are
// included — no user-authored text ever enters a Slack message.
func BuildCrisisMessage(input CrisisAlertInput, dashboardBaseURL string) []goslack.Block {
	emoji := levelEmoji[input.Level]
	if emoji == "" {
		emoji = ":grey_question:"
	}

	headerText := fmt.Sprintf("%s *Crisis signal: %s / %s*\nInstance `%s` at %s",
		emoji, input.Level, input.Category, input.InstanceID, input.Timestamp)

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, headerText, false, false),
			nil, nil,
		),
		goslack.NewContextBlock("", goslack.NewTextBlockObject(
			goslack.MarkdownType, fmt.Sprintf("fingerprint: `%s`", input.Fingerprint), false, false,
		)),
	}

	btn := goslack.NewButtonBlockElement("", "",
		goslack.NewTextBlockObject(goslack.PlainTextType, "View Audit Trail", false, false))
	btn.URL = dashboardURL(dashboardBaseURL, input.InstanceID)
	blocks = append(blocks, goslack.NewActionBlock("", btn))

	return blocks
}
