package moderation

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
)

const (
	reportColor        = 0xFF0000
	annotatedImageName = "processed_image.png"
)

type TextReport struct {
	AuthorID  snowflake.ID
	ChannelID snowflake.ID
	Content   string
	Timestamp time.Time
}

type ImageReport struct {
	AuthorID   snowflake.ID
	AuthorName  string
	ChannelID   snowflake.ID
	ChannelName string
	FoundWords  []string
	Image       []byte
	Timestamp   time.Time
}

type Reporter interface {
	ReportText(ctx context.Context, report TextReport) error
	ReportImage(ctx context.Context, report ImageReport) error
}

// Identity is the name and icon shown in the author block of a report.
type Identity struct {
	Name    string
	IconURL string
}

func TextReportEmbed(r TextReport, self Identity) discord.Embed {
	return discord.NewEmbedBuilder().
		SetTitle("**Blacklisted word detected!**").
		SetColor(reportColor).
		SetTimestamp(r.Timestamp).
		SetAuthor(self.Name, "", self.IconURL).
		AddField("Author", discord.UserMention(r.AuthorID), false).
		AddField("Channel", discord.ChannelMention(r.ChannelID), false).
		AddField("Message", r.Content, false).
		Build()
}

func ImageReportEmbed(r ImageReport, self Identity) discord.Embed {
	return discord.NewEmbedBuilder().
		SetTitle("**Possible blacklisted words in image detected!**").
		SetColor(reportColor).
		SetTimestamp(r.Timestamp).
		SetAuthor(self.Name, "", self.IconURL).
		AddField("Author", discord.UserMention(r.AuthorID), false).
		AddField("Channel", discord.ChannelMention(r.ChannelID), false).
		AddField("Author Name", r.AuthorName, true).
		AddField("Channel Name", channelName(r), true).
		AddField("Found words", strings.Join(r.FoundWords, ", "), false).
		SetImage("attachment://" + annotatedImageName).
		Build()
}

// RestReporter posts reports to the log channel.
type RestReporter struct {
	Rest      rest.Rest
	ChannelID snowflake.ID
	Self      func() Identity
}

func (r *RestReporter) ReportText(ctx context.Context, report TextReport) error {
	_, err := r.Rest.CreateMessage(r.ChannelID, discord.NewMessageCreate().
		WithEmbeds(TextReportEmbed(report, r.Self())).
		WithAllowedMentions(&discord.AllowedMentions{}), rest.WithCtx(ctx))
	return err
}

func (r *RestReporter) ReportImage(ctx context.Context, report ImageReport) error {
	_, err := r.Rest.CreateMessage(r.ChannelID, discord.NewMessageCreate().
		WithEmbeds(ImageReportEmbed(report, r.Self())).
		WithFiles(discord.NewFile(annotatedImageName, "", bytes.NewReader(report.Image))).
		WithAllowedMentions(&discord.AllowedMentions{}), rest.WithCtx(ctx))
	return err
}

// channelName falls back to the mention when the channel was not cached.
func channelName(r ImageReport) string {
	if r.ChannelName == "" {
		return discord.ChannelMention(r.ChannelID)
	}
	return r.ChannelName
}
