package bot

import (
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/dotameta/internal/embeds"
	"github.com/dotameta/internal/meta"
)

// handleHero handles the /hero command. An empty name option takes the
// same path as /random.
func (b *Bot) handleHero(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var query string
	if options := i.ApplicationCommandData().Options; len(options) > 0 {
		query = options[0].StringValue()
	}

	b.respondWithSnapshot(s, i, query)
}

// handleRandom handles the /random command.
func (b *Bot) handleRandom(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.respondWithSnapshot(s, i, "")
}

// handleReroll handles the reroll button under a snapshot message.
func (b *Bot) handleReroll(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.respondWithSnapshot(s, i, "")
}

// respondWithSnapshot runs the profile pipeline for a query (empty
// means random) and renders the result. Concurrent invocations are
// independent; nothing here is synchronized against a second command
// arriving while a popularity fetch is in flight.
func (b *Bot) respondWithSnapshot(s *discordgo.Session, i *discordgo.InteractionCreate, query string) {
	// Defer response (loading state)
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})

	profile, err := b.profiler.BuildProfile(query)
	if err != nil {
		embed := snapshotErrorEmbed(query, err)
		s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
			Embeds: &[]*discordgo.MessageEmbed{embed},
		})
		return
	}

	embed := embeds.HeroSnapshot(profile)

	buttons := []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "🎲 Another hero",
			Style:    discordgo.SecondaryButton,
			CustomID: "reroll",
		},
	}
	if _, watched := b.watches.Get(profile.Hero.ID, i.ChannelID); !watched {
		buttons = append(buttons, discordgo.Button{
			Label:    "👁️ Watch this hero",
			Style:    discordgo.PrimaryButton,
			CustomID: fmt.Sprintf("watchhero_%d", profile.Hero.ID),
		})
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
	}

	s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds:     &[]*discordgo.MessageEmbed{embed},
		Components: &components,
	})

	log.Printf("Snapshot: %s", profile.Hero.LocalizedName)
}

// snapshotErrorEmbed maps pipeline errors onto user-facing embeds.
func snapshotErrorEmbed(query string, err error) *discordgo.MessageEmbed {
	switch {
	case errors.Is(err, meta.ErrHeroNotFound):
		return embeds.Error(
			fmt.Sprintf("No hero matches **%s**. Check the spelling and try again.", query),
			"",
		)
	case errors.Is(err, meta.ErrIntegrity):
		log.Printf("Integrity error: %v", err)
		return embeds.Error("Reference data is inconsistent. This is a bug, not your fault.", "")
	default:
		log.Printf("Snapshot failed: %v", err)
		return embeds.Error("Could not fetch data from OpenDota. Try again later.", "")
	}
}
