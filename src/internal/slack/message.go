// FILE: src/internal/slack/message.go
package slack

import (
	"vatnotify/src/internal/report"
)

// Attachment colors understood by the receiving chat service
const (
	ColorGood = "good"
	ColorWarn = "warn"
)

const (
	attachmentType = "plain_text"
	importerTitle  = "VAT ABCD Importer"
)

// Message is the webhook payload for one notification.
type Message struct {
	Channel     string       `json:"channel"`
	Username    string       `json:"username"`
	IconEmoji   string       `json:"icon_emoji"`
	Attachments []Attachment `json:"attachments"`
}

// Attachment is one visual section of the notification.
type Attachment struct {
	Fallback string `json:"fallback,omitempty"`
	Color    string `json:"color"`
	Title    string `json:"title,omitempty"`
	Type     string `json:"type"`
	Verbatim bool   `json:"verbatim"`
	Text     string `json:"text"`
}

// NewMessage builds the notification payload from a log report.
// The channel is given without a leading '#'. Attachment order is fixed:
// summary first, detail second.
func NewMessage(channel, username, icon string, rep *report.Report) Message {
	return Message{
		Channel:   "#" + channel,
		Username:  username,
		IconEmoji: icon,
		Attachments: []Attachment{
			{
				Fallback: importerTitle,
				Color:    ColorGood,
				Title:    importerTitle,
				Type:     attachmentType,
				Verbatim: true,
				Text:     rep.Summary(),
			},
			{
				Color:    ColorWarn,
				Type:     attachmentType,
				Verbatim: true,
				Text:     rep.Detail(),
			},
		},
	}
}
