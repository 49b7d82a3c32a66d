package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/lmittmann/tint"
)

const commandTimeout = 10 * time.Second

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), commandTimeout)
}

func ephemeral(content string) discord.MessageCreate {
	return discord.NewMessageCreate().WithContent(content).WithEphemeral(true)
}

// errorReply logs err and tells the invoker that action failed.
func errorReply(event *handler.CommandEvent, action string, err error, attrs ...any) error {
	slog.Error("becbot: error while "+action, append(attrs, tint.Err(err))...)
	return event.CreateMessage(ephemeral(fmt.Sprintf("There was an error while %s.", action)))
}

func cooldownText(wait time.Duration) string {
	return fmt.Sprintf("You're too fast. Please wait %d seconds before retrying.", int(math.Ceil(wait.Seconds())))
}
