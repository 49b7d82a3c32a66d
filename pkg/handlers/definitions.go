package handlers

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/json"
	"github.com/disgoorg/omit"
)

const (
	addQuoteCommand    = "Add quote"
	suggestIdeaCommand = "Suggest this idea"
	hugUserCommand     = "Give this person a hug"
)

var manageMessages = omit.New(json.Ptr(discord.PermissionManageMessages))

// Commands is the full set registered on every guild once it becomes ready.
var Commands = func() []discord.ApplicationCommandCreate {
	commands := []discord.ApplicationCommandCreate{
		discord.MessageCommandCreate{
			Name:                     addQuoteCommand,
			DefaultMemberPermissions: manageMessages,
		},
		discord.SlashCommandCreate{
			Name:        "quote",
			Description: "Display a quote",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionInt{
					Name:        "quote_id",
					Description: "The quote to display",
				},
			},
			DefaultMemberPermissions: manageMessages,
		},
		discord.SlashCommandCreate{
			Name:        "removequote",
			Description: "Remove a quote",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionInt{
					Name:        "quote_id",
					Description: "The quote which should be deleted",
					Required:    true,
				},
			},
			DefaultMemberPermissions: manageMessages,
		},
		discord.SlashCommandCreate{
			Name:        "addcan",
			Description: "Add a can on lumiDiscord",
		},
		discord.SlashCommandCreate{
			Name:        "suggest",
			Description: "Suggest an idea for the Discord",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "suggestion",
					Description: "What idea to suggest",
					Required:    true,
				},
			},
		},
		discord.MessageCommandCreate{
			Name: suggestIdeaCommand,
		},
		discord.SlashCommandCreate{
			Name:        "removesuggestion",
			Description: "Remove a suggestion from the database",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionInt{
					Name:        "suggestion_id",
					Description: "The suggestion which should be deleted",
					Required:    true,
				},
			},
			DefaultMemberPermissions: manageMessages,
		},
		discord.SlashCommandCreate{
			Name:        "color",
			Description: "Sets your color",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "color",
					Description: "The color to use",
					Required:    true,
				},
			},
		},
		discord.SlashCommandCreate{
			Name:        "clearcolor",
			Description: "Clears your color",
		},
		discord.SlashCommandCreate{
			Name:        "catenativedoomsdaydicecascader",
			Description: "Activate the doomsday device!",
		},
		discord.SlashCommandCreate{
			Name:        "hug",
			Description: "Hug someone",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionUser{
					Name:        "user",
					Description: "The person to hug",
					Required:    true,
				},
			},
		},
		discord.UserCommandCreate{
			Name: hugUserCommand,
		},
	}
	for _, c := range simpleCommands {
		commands = append(commands, discord.SlashCommandCreate{
			Name:        c.name,
			Description: c.description,
		})
	}
	return commands
}()
