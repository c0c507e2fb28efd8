package bot

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/dotameta/internal/embeds"
	"github.com/dotameta/internal/meta"
	"github.com/dotameta/internal/services/opendota"
	"github.com/dotameta/internal/storage"
)

// watchThreshold is the win rate movement, in percentage points, that
// triggers a notification.
const watchThreshold = 0.5

// handleWatch handles the /watch command.
func (b *Bot) handleWatch(s *discordgo.Session, i *discordgo.InteractionCreate) {
	query := i.ApplicationCommandData().Options[0].StringValue()

	hero, err := b.dataset.FindHero(strings.ToLower(strings.TrimSpace(query)))
	if err != nil {
		embed := embeds.Error(fmt.Sprintf("No hero matches **%s**.", query), "")
		s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds: []*discordgo.MessageEmbed{embed},
				Flags:  discordgo.MessageFlagsEphemeral,
			},
		})
		return
	}

	embed := b.startWatching(hero, i.ChannelID)
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

// handleWatchButton handles the watch button under a snapshot message.
func (b *Bot) handleWatchButton(s *discordgo.Session, i *discordgo.InteractionCreate, rawID string) {
	heroID, err := strconv.Atoi(rawID)
	if err != nil {
		return
	}

	var hero *opendota.HeroStats
	roster := b.dataset.Roster()
	for idx := range roster {
		if roster[idx].ID == heroID {
			hero = &roster[idx]
			break
		}
	}
	if hero == nil {
		return
	}

	embed := b.startWatching(hero, i.ChannelID)
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

// startWatching registers a watch entry seeded with the hero's current
// win rate and returns the confirmation embed.
func (b *Bot) startWatching(hero *opendota.HeroStats, channelID string) *discordgo.MessageEmbed {
	if _, ok := b.watches.Get(hero.ID, channelID); ok {
		return embeds.Warning(fmt.Sprintf("**%s** is already watched in this channel.", hero.LocalizedName), "")
	}

	rate, err := meta.WinRate(hero)
	if err != nil {
		// Zero recorded picks; seed at 0 and let the first poll notify.
		rate = 0
	}

	b.watches.Set(&storage.WatchedHero{
		HeroID:      hero.ID,
		HeroName:    hero.LocalizedName,
		ChannelID:   channelID,
		LastWinRate: rate,
	})
	b.watches.Save()

	log.Printf("Watching: %s", hero.LocalizedName)
	return embeds.Success(
		fmt.Sprintf("Watching **%s** (win rate %.2f%%).\nI will post here when it moves by %.1f points or more.",
			hero.LocalizedName, rate, watchThreshold),
		"👁️ Watching",
	)
}

// handleUnwatch handles the /unwatch command.
func (b *Bot) handleUnwatch(s *discordgo.Session, i *discordgo.InteractionCreate) {
	query := i.ApplicationCommandData().Options[0].StringValue()

	hero, err := b.dataset.FindHero(strings.ToLower(strings.TrimSpace(query)))
	if err == nil {
		if _, ok := b.watches.Get(hero.ID, i.ChannelID); ok {
			b.watches.Delete(hero.ID, i.ChannelID)
			b.watches.Save()

			embed := embeds.Success(fmt.Sprintf("Stopped watching **%s**.", hero.LocalizedName), "")
			s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseChannelMessageWithSource,
				Data: &discordgo.InteractionResponseData{
					Embeds: []*discordgo.MessageEmbed{embed},
				},
			})
			log.Printf("Unwatched: %s", hero.LocalizedName)
			return
		}
	}

	embed := embeds.Error(fmt.Sprintf("**%s** is not watched in this channel.", query), "")
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

// handleWatchlist handles the /watchlist command.
func (b *Bot) handleWatchlist(s *discordgo.Session, i *discordgo.InteractionCreate) {
	channelWatches := b.watches.GetByChannel(i.ChannelID)

	channelName := "unknown"
	if channel, err := s.Channel(i.ChannelID); err == nil {
		channelName = channel.Name
	}

	embed := embeds.WatchList(channelWatches, channelName)
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

// pollWatches runs the background task that checks watched heroes.
func (b *Bot) pollWatches() {
	ticker := time.NewTicker(b.cfg.WatchInterval)
	defer ticker.Stop()

	log.Printf("Watch polling started (%s interval)", b.cfg.WatchInterval)

	for {
		select {
		case <-b.stopPolling:
			log.Println("Watch polling stopped")
			return
		case <-ticker.C:
			b.checkWatches()
		}
	}
}

// checkWatches fetches a fresh roster and notifies channels whose
// watched heroes moved. The bootstrap dataset is left untouched; this
// works entirely on the request-scoped payload.
func (b *Bot) checkWatches() {
	watches := b.watches.GetAll()
	if len(watches) == 0 {
		return
	}

	roster, err := b.odClient.HeroStats()
	if err != nil {
		log.Printf("Watch refresh failed: %v", err)
		return
	}

	byID := make(map[int]*opendota.HeroStats, len(roster))
	for i := range roster {
		byID[roster[i].ID] = &roster[i]
	}

	notified := 0
	for _, w := range watches {
		hero, ok := byID[w.HeroID]
		if !ok {
			continue
		}

		rate, err := meta.WinRate(hero)
		if err != nil {
			continue
		}

		if math.Abs(rate-w.LastWinRate) < watchThreshold {
			continue
		}

		embed := embeds.WatchNotification(w.HeroName, w.LastWinRate, rate)
		if _, err := b.session.ChannelMessageSendEmbed(w.ChannelID, embed); err != nil {
			log.Printf("Watch notify failed for %s: %v", w.HeroName, err)
			continue
		}

		b.watches.UpdateWinRate(w.HeroID, w.ChannelID, rate)
		notified++
	}

	if notified > 0 {
		b.watches.Save()
		log.Printf("Watch notifications sent: %d", notified)
	}
}
