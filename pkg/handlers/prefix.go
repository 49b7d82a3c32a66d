package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
)

const commandPrefix = "!"

type prefixInvocation struct {
	GuildID snowflake.ID
	Author  discord.User
	Args    string
}

type prefixCommand func(h *Handler, ctx context.Context, inv prefixInvocation) (string, error)

var prefixCommands = map[string]prefixCommand{
	"suggest": func(h *Handler, ctx context.Context, inv prefixInvocation) (string, error) {
		return h.suggest(ctx, inv.GuildID, inv.Args, inv.Author)
	},
	"addcan":  addCanPrefix,
	"addbear": addCanPrefix,
	"asscan":  addCanPrefix,
	"color": func(h *Handler, _ context.Context, inv prefixInvocation) (string, error) {
		return h.setColor(inv.GuildID, inv.Author.ID, inv.Args)
	},
	"clearcolor": func(h *Handler, _ context.Context, inv prefixInvocation) (string, error) {
		return h.clearColor(inv.GuildID, inv.Author.ID)
	},
}

func addCanPrefix(h *Handler, ctx context.Context, inv prefixInvocation) (string, error) {
	return h.addCan(ctx, inv.GuildID, inv.Author)
}

// parsePrefix splits "!name args" into its parts.
func parsePrefix(content string) (name string, args string, ok bool) {
	rest, ok := strings.CutPrefix(content, commandPrefix)
	if !ok {
		return "", "", false
	}
	name, args, _ = strings.Cut(strings.TrimSpace(rest), " ")
	if name == "" {
		return "", "", false
	}
	return name, strings.TrimSpace(args), true
}

// runPrefix resolves name to a reply. ok is false for unknown commands.
func (h *Handler) runPrefix(ctx context.Context, name string, inv prefixInvocation) (reply string, ok bool, err error) {
	if command, found := prefixCommands[name]; found {
		reply, err = command(h, ctx, inv)
		return reply, true, err
	}
	if command, found := findSimpleCommand(name); found {
		return command.reply(time.Now()), true, nil
	}
	return "", false, nil
}
