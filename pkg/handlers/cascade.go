package handlers

import (
	"errors"
	"log/slog"
	"time"

	"becbot/pkg/cascade"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/lmittmann/tint"
)

const (
	cascadeButtonPrefix = "cddc"
	cascadePressTimeout = 60 * time.Second
	cascadeStepPause    = 2 * time.Second
	cascadeResultPause  = 5 * time.Second
)

func cascadeButton(nonce string) discord.ActionRowComponent {
	return discord.NewActionRow(
		discord.NewSuccessButton(cascade.ButtonLabel, "/"+cascadeButtonPrefix+"/"+nonce).
			WithEmoji(discord.ComponentEmoji{Name: cascade.ButtonEmoji}),
	)
}

// HandleCascade shows the inactive device and waits for the invoker to press
// the prime bubble. The whole animation runs inside this handler.
func (h *Handler) HandleCascade(event *handler.CommandEvent) error {
	registry := h.Bot.Cascades
	nonce, pressed := registry.Register(event.User().ID)
	if err := event.CreateMessage(discord.NewMessageCreate().
		WithEmbeds(cascade.IntroEmbed()).
		WithComponents(cascadeButton(nonce))); err != nil {
		registry.Unregister(nonce)
		return err
	}

	timer := time.NewTimer(cascadePressTimeout)
	defer timer.Stop()
	select {
	case <-pressed:
	case <-timer.C:
		registry.Unregister(nonce)
		_, err := event.UpdateInteractionResponse(discord.NewMessageUpdate().
			WithEmbeds(cascade.TimeoutEmbed()).
			ClearComponents())
		return err
	}

	game := cascade.Play(cascade.CryptoRoll)
	update := func(embed discord.Embed) error {
		_, err := event.UpdateInteractionResponse(discord.NewMessageUpdate().
			WithEmbeds(embed).
			ClearComponents())
		return err
	}
	if err := update(cascade.PrimeEmbed(game)); err != nil {
		return err
	}
	for _, step := range game.Steps {
		time.Sleep(cascadeStepPause)
		if err := update(cascade.StepEmbed(game, step)); err != nil {
			return err
		}
	}
	time.Sleep(cascadeStepPause)
	if err := update(cascade.FinalEmbed(game)); err != nil {
		return err
	}
	time.Sleep(cascadeResultPause)
	if err := update(cascade.ResultEmbed(game)); err != nil {
		return err
	}
	slog.Debug("becbot: cascade finished",
		slog.Any("user.id", event.User().ID),
		slog.Int("cascade.prime", game.PrimeRoll),
		slog.String("cascade.result", game.Result.String()))
	if game.Fumbled() {
		if _, err := event.CreateFollowupMessage(discord.NewMessageCreate().WithContent(cascade.FumbleGIF)); err != nil {
			slog.Warn("becbot: error while sending the cascade follow-up", tint.Err(err))
		}
	}
	return nil
}

func (h *Handler) HandleCascadeButton(_ discord.ButtonInteractionData, event *handler.ComponentEvent) error {
	err := h.Bot.Cascades.Press(event.Vars["nonce"], event.User().ID)
	switch {
	case errors.Is(err, cascade.ErrNotOwner):
		return event.CreateMessage(ephemeral("This isn't your doomsday device!"))
	case errors.Is(err, cascade.ErrUnknownCascade):
		return event.CreateMessage(ephemeral("The doomsday device has already been switched off."))
	case err != nil:
		return err
	}
	return event.DeferUpdateMessage()
}
