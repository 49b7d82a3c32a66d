package cascade

import (
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/dustin/go-humanize"
)

const (
	Title         = "CATENATIVE DOOMSDAY DICE CASCADER"
	InactiveImage = "https://galvinism.ink/cddc_inactive.png"
	FumbleGIF     = "https://www.homestuck.com/images/extras/ps000020_9.gif"
	ButtonLabel   = "Press the PRIME BUBBLE!"
	ButtonEmoji   = "🎲"

	introText   = "The doomsday device is looming right in front of you. Do you dare to press the **PRIME BUBBLE**?"
	timeoutText = "You failed to press the **PRIME BUBBLE**, the device staying turned off."
	finalField  = "🎲 **FINAL CASCADER**"
)

var (
	primeComments = [PrimeSides]string{
		"You appear to have terrible luck.",
		"That sucks.",
		"Lower end of the middle, but whatever.",
		"Better than a three, you guess.",
		"Great, we can work with this.",
		"The most favorable result!",
	}
	numberWords = [PrimeSides]string{"one", "two", "three", "four", "five", "six"}
)

func IntroEmbed() discord.Embed {
	return discord.NewEmbedBuilder().
		SetTitle(Title).
		SetDescription(introText).
		SetImage(InactiveImage).
		Build()
}

func TimeoutEmbed() discord.Embed {
	return discord.NewEmbedBuilder().
		SetTitle(Title).
		SetDescription(timeoutText).
		SetImage(InactiveImage).
		Build()
}

func activeImage(prime int) string {
	return fmt.Sprintf("https://galvinism.ink/cddc_active_%d.gif", prime)
}

func primeDescription(prime int) string {
	bubbles, each := "BUBBLES", "each "
	if prime == 1 {
		bubbles, each = "BUBBLE", ""
	}
	return fmt.Sprintf("🎲 You press the **PRIME BUBBLE** to allocate the empty **CATENATOR CRUCIBLES** with bubbles. You rolled a **%s**. %s The crucibles are allocated with **%d CASCADER %s**, %scontaining a D6. 🎲",
		numberWords[prime-1], primeComments[prime-1], prime, bubbles, each)
}

func baseEmbed(g Game) *discord.EmbedBuilder {
	return discord.NewEmbedBuilder().
		SetTitle(Title).
		SetDescription(primeDescription(g.PrimeRoll)).
		SetImage(activeImage(g.PrimeRoll))
}

// PrimeEmbed is shown right after the button press.
func PrimeEmbed(g Game) discord.Embed {
	return baseEmbed(g).Build()
}

func StepFieldName(s Step) string {
	return "🎲 **" + strings.ToUpper(humanize.Ordinal(s.Number)) + " CASCADER**"
}

func StepFieldValue(s Step) string {
	ordinal := humanize.Ordinal(s.Number)
	if s.Last() {
		return fmt.Sprintf("The **%s** cascader is pressed for a resulting multiplier of **%s**. The final remaining die now has **%s** * **%s** = **%s** sides!",
			ordinal, humanize.BigComma(s.Multiplier), humanize.BigComma(s.OldSides), humanize.BigComma(s.Multiplier), humanize.BigComma(s.Sides))
	}
	return fmt.Sprintf("The **%s** cascader is pressed for a resulting multiplier of **%s**. The remaining %d dice now have **%s** * **%s** = **%s** sides each.",
		ordinal, humanize.BigComma(s.Multiplier), s.Remaining, humanize.BigComma(s.OldSides), humanize.BigComma(s.Multiplier), humanize.BigComma(s.Sides))
}

// StepEmbed shows every cascader up to and including step, earlier ones stay visible.
func StepEmbed(g Game, step Step) discord.Embed {
	return withSteps(g, step.Number).Build()
}

func withSteps(g Game, upTo int) *discord.EmbedBuilder {
	builder := baseEmbed(g)
	for _, s := range g.Steps[:upTo] {
		builder.AddField(StepFieldName(s), StepFieldValue(s), false)
	}
	return builder
}

// FinalEmbed announces the last roll before the result is revealed.
func FinalEmbed(g Game) discord.Embed {
	return withSteps(g, len(g.Steps)).
		AddField(finalField, fmt.Sprintf("You roll the last die by pressing the final **DOOMSDAY CASCADER**. This will trigger the weapon on the terrible device and potentially deal up to **%s HIT POINTS IN DAMAGE**!",
			humanize.BigComma(g.Sides)), false).
		Build()
}

func ResultEmbed(g Game) discord.Embed {
	return withSteps(g, len(g.Steps)).
		AddField(finalField, fmt.Sprintf("The **DOOMSDAY CASCADER** rolls a %s!", humanize.BigComma(g.Result)), false).
		SetImage(InactiveImage).
		Build()
}
