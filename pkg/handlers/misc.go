package handlers

import (
	"fmt"
	"math/rand/v2"
	"time"
	_ "time/tzdata"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

type simpleCommand struct {
	name        string
	description string
	reply       func(now time.Time) string
}

func static(s string) func(time.Time) string {
	return func(time.Time) string {
		return s
	}
}

// zoneTime formats now in the given IANA zone, labelled with abbr.
func zoneTime(zone string, abbr string) func(time.Time) string {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		panic(err)
	}
	return func(now time.Time) string {
		return fmt.Sprintf("It is currently %s %s", now.In(loc).Format(time.TimeOnly), abbr)
	}
}

var flipcoinResponses = []string{
	"You lose.",
	"it's /coinflip",
	"GAMBLING? In MY good christian server???",
}

// simpleCommands reply with a single message and are reachable both as slash
// commands and with the ! prefix.
var simpleCommands = []simpleCommand{
	{"hydrate", "hydration check", static("don't forget to drink water")},
	{"familyfriendly", "That's not very family friendly of you.", static("https://galvinism.ink/nff.jpg")},
	{"hello", "Say hello!", static("Hello!")},
	{"ping", "Ping pong", static("Pong!")},
	{"flipcoin", "you know what this does", func(time.Time) string {
		return flipcoinResponses[rand.IntN(len(flipcoinResponses))]
	}},
	{"coinflip", "you know what this does, too", static("it's !flipcoin")},
	{"help", "I need healing", static("https://www.youtube.com/watch?v=yD2FSwTy2lw")},
	{"banappeal", "Post the link to the ban appeal form", static("https://docs.google.com/forms/d/e/1FAIpQLScfna7CI_XMEX-szOBC7h_E1XJDSNCjYEYBId69QwuZnITOCw/viewform")},
	{"addjohn", "no", static("no")},
	{"ohno", "do u kno da wae", static("https://media.discordapp.net/attachments/431932541612589077/544587477508161547/Ilikestevenuniversealotbutwhydoi_ad1871fcdc058915b00d12d5968a0d0a.png")},
	{"radio", "Post the link to the radio", static("https://www.youtube.com/luminantAegis/live")},
	{"rp", "No roleplaying in my server", static("We all know role playing isn't allowed here, so you must be looking for this instead! https://mspfa.com/?s=25171&p=1")},
	{"copper", "Send someone off", static(`Copper is "Cu" on the periodic table. When read it sounds like "see you", a shortened version of the phrase "See you later", which is commonly used as a sendoff to someone.`)},
	{"happytime", "Displays the current time in EST, which is where Happygate lives.", zoneTime("America/New_York", "EST")},
	{"lumitime", "Displays the current time in CST, which is where Lumi lives.", zoneTime("America/Chicago", "CST")},
	{"ventime", "Displays the current time in CET, which is where Ven lives.", zoneTime("Europe/Paris", "CET")},
	{"teebztime", "Displays the current time in AWST, which is where Teebz lives.", zoneTime("Australia/Perth", "AWST")},
}

func findSimpleCommand(name string) (simpleCommand, bool) {
	for _, c := range simpleCommands {
		if c.name == name {
			return c, true
		}
	}
	return simpleCommand{}, false
}

func (h *Handler) handleSimple(c simpleCommand) handler.CommandHandler {
	return func(event *handler.CommandEvent) error {
		return event.CreateMessage(discord.NewMessageCreate().WithContent(c.reply(time.Now())))
	}
}

func hugText(name string) string {
	return fmt.Sprintf("*hugs %s*", name)
}

func (h *Handler) HandleHugSlash(data discord.SlashCommandInteractionData, event *handler.CommandEvent) error {
	name := data.User("user").EffectiveName()
	if member, ok := data.OptMember("user"); ok {
		name = member.EffectiveName()
	}
	return event.CreateMessage(discord.NewMessageCreate().WithContent(hugText(name)))
}

func (h *Handler) HandleHugUser(data discord.UserCommandInteractionData, event *handler.CommandEvent) error {
	return event.CreateMessage(discord.NewMessageCreate().WithContent(hugText(targetName(data.TargetUser(), data.TargetMember()))))
}

// targetName prefers the guild display name. member is zero when the target left the guild.
func targetName(user discord.User, member discord.ResolvedMember) string {
	if member.User.ID != 0 {
		return member.EffectiveName()
	}
	return user.EffectiveName()
}
