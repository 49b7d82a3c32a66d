package suggestions

import (
	"errors"
	"net/http"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
)

// RestPlatform implements Platform on top of the Discord REST API.
type RestPlatform struct {
	Rest rest.Rest
}

func (p *RestPlatform) FindTextChannel(guildID snowflake.ID, name string) (snowflake.ID, error) {
	channels, err := p.Rest.GetGuildChannels(guildID)
	if err != nil {
		return 0, err
	}
	for _, channel := range channels {
		if channel.Type() == discord.ChannelTypeGuildText && channel.Name() == name {
			return channel.ID(), nil
		}
	}
	return 0, ErrChannelNotFound
}

func (p *RestPlatform) CreateMessage(channelID snowflake.ID, embed discord.Embed) (*discord.Message, error) {
	return p.Rest.CreateMessage(channelID, discord.NewMessageCreate().WithEmbeds(embed))
}

func (p *RestPlatform) AddReaction(channelID snowflake.ID, messageID snowflake.ID, emoji string) error {
	return p.Rest.AddReaction(channelID, messageID, emoji)
}

// DeleteMessage treats a message that is already gone as deleted.
func (p *RestPlatform) DeleteMessage(channelID snowflake.ID, messageID snowflake.ID) error {
	err := p.Rest.DeleteMessage(channelID, messageID)
	var restErr *rest.Error
	if errors.As(err, &restErr) && restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound {
		return nil
	}
	return err
}
