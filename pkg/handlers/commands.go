package handlers

import (
	"log/slog"

	"becbot/pkg"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/lmittmann/tint"
)

func NewHandler(b *pkg.Bot, c *pkg.Config) *Handler {
	mux := handler.New()
	mux.Error(func(e *handler.InteractionEvent, err error) {
		attrs := []any{slog.Any("interaction.id", e.ID()), tint.Err(err)}
		if i, ok := e.Interaction.(discord.ApplicationCommandInteraction); ok {
			attrs = append(attrs, slog.String("command.name", i.Data.CommandName()))
		}
		slog.Error("becbot: error while handling an interaction", attrs...)
		_ = e.Respond(discord.InteractionResponseTypeCreateMessage, discord.NewMessageCreate().
			WithContent("Something went wrong while handling the command.").
			WithEphemeral(true))
	})
	handlers := &Handler{
		Bot:    b,
		Config: c,
		Router: mux,
	}
	handlers.Group(func(r handler.Router) {
		r.MessageCommand("/"+addQuoteCommand, handlers.HandleAddQuote)
		r.SlashCommand("/quote", handlers.HandleQuote)
		r.SlashCommand("/removequote", handlers.HandleRemoveQuote)
	})
	handlers.Group(func(r handler.Router) {
		r.SlashCommand("/suggest", handlers.HandleSuggestSlash)
		r.MessageCommand("/"+suggestIdeaCommand, handlers.HandleSuggestMessage)
		r.SlashCommand("/removesuggestion", handlers.HandleRemoveSuggestion)
	})
	handlers.Group(func(r handler.Router) {
		r.SlashCommand("/color", handlers.HandleColor)
		r.Command("/clearcolor", handlers.HandleClearColor)
	})
	handlers.Group(func(r handler.Router) {
		r.Command("/catenativedoomsdaydicecascader", handlers.HandleCascade)
		r.ButtonComponent("/"+cascadeButtonPrefix+"/{nonce}", handlers.HandleCascadeButton)
	})
	handlers.Command("/addcan", handlers.HandleAddCan)
	handlers.SlashCommand("/hug", handlers.HandleHugSlash)
	handlers.UserCommand("/"+hugUserCommand, handlers.HandleHugUser)
	for _, command := range simpleCommands {
		handlers.Command("/"+command.name, handlers.handleSimple(command))
	}
	return handlers
}

type Handler struct {
	Bot    *pkg.Bot
	Config *pkg.Config
	handler.Router
}
