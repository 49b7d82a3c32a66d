// Package autoresponder maps message text to canned replies.
package autoresponder

import (
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
)

const (
	ModeratorRoleName = "Moderator"

	radioOperatorID = snowflake.ID(84774207140945920)
)

type trigger struct {
	match   func(content string, lower string) bool
	reply   string
	modOnly bool
}

func exact(s string) func(string, string) bool {
	return func(content string, _ string) bool {
		return content == s
	}
}

func prefix(s string) func(string, string) bool {
	return func(content string, _ string) bool {
		return strings.HasPrefix(content, s)
	}
}

func lowerPrefix(s string) func(string, string) bool {
	return func(_ string, lower string) bool {
		return strings.HasPrefix(lower, s)
	}
}

// triggers are tested in order, the first match wins.
var triggers = []trigger{
	{match: exact("wkjfneasdf"), reply: "That's not a word, but rather an oddly specific keyboard mash. Good job!"},
	{match: exact("test"), reply: "turing"},
	{match: lowerPrefix("f"), reply: ":regional_indicator_f:"},
	{match: func(content string, _ string) bool {
		return content == "^^" || strings.HasPrefix(content, "^^ ")
	}, reply: "^u^"},
	{match: prefix(`\o/`), reply: "https://imgur.com/qJYq4Xn"},
	{match: lowerPrefix("crab"), reply: "https://tenor.com/view/crab-safe-dance-gif-13211112"},
	{match: lowerPrefix("sock ruse"), reply: "it was a DISTACTION"},
	{match: lowerPrefix("what time is it?"), reply: "https://tenor.com/view/pizza-time-its-delivery-gif-13167414"},
	{match: func(_ string, lower string) bool {
		return strings.Contains(lower, "radio lags") || strings.Contains(lower, "radio is lagging")
	}, reply: discord.UserMention(radioOperatorID) + "\nhttps://media.discordapp.net/attachments/551868267099193374/768520702402887710/unknown.png"},
	{match: prefix("chirp"), reply: "chirp chirp!", modOnly: true},
	{match: prefix("bark"), reply: "bork", modOnly: true},
	{match: prefix("bear"), reply: ":bear:", modOnly: true},
}

// Respond returns the reply for content, if any. Moderator-only triggers are
// only considered when isModerator is set.
func Respond(content string, isModerator bool) (string, bool) {
	lower := strings.ToLower(content)
	for _, t := range triggers {
		if t.modOnly && !isModerator {
			continue
		}
		if t.match(content, lower) {
			return t.reply, true
		}
	}
	return "", false
}
