// Package bot provides the Discord bot core for DotaMeta.
package bot

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/dotameta/internal/config"
	"github.com/dotameta/internal/data"
	"github.com/dotameta/internal/embeds"
	"github.com/dotameta/internal/meta"
	"github.com/dotameta/internal/services/opendota"
	"github.com/dotameta/internal/storage"
)

// Bot represents the Discord bot.
type Bot struct {
	session     *discordgo.Session
	cfg         *config.Config
	odClient    *opendota.Client
	dataset     *meta.Dataset
	profiler    *meta.Profiler
	watches     *storage.WatchStore
	stopPolling chan struct{}
	commands    []*discordgo.ApplicationCommand
}

// New creates a new Bot instance. The reference dataset is loaded
// here, before any command can run, and stays immutable afterwards.
func New(cfg *config.Config) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds

	embeds.CDNBase = cfg.CDNBaseURL

	// Create Redis client and watch store
	redisClient := storage.NewRedisClient(cfg)
	watches := storage.NewWatchStore(redisClient, cfg.RedisKeyWatchedHeroes)

	if err := watches.Load(); err != nil {
		log.Printf("Load watches failed: %v", err)
	}

	odClient := opendota.NewClient(cfg, redisClient)

	dataset, err := buildDataset(cfg, odClient)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference data: %w", err)
	}

	bot := &Bot{
		session:     session,
		cfg:         cfg,
		odClient:    odClient,
		dataset:     dataset,
		profiler:    meta.NewProfiler(dataset, odClient),
		watches:     watches,
		stopPolling: make(chan struct{}),
	}

	// Register handlers
	session.AddHandler(bot.onReady)
	session.AddHandler(bot.onInteractionCreate)

	return bot, nil
}

// buildDataset fetches the roster and the three reference tables. The
// roster has no offline substitute; a constants fetch that fails falls
// back to the bundled snapshot under DataDir.
func buildDataset(cfg *config.Config, odClient *opendota.Client) (*meta.Dataset, error) {
	roster, err := odClient.HeroStats()
	if err != nil {
		return nil, err
	}

	heroes, err := odClient.Heroes()
	if err != nil {
		log.Printf("Heroes constants fetch failed, trying bundled snapshot: %v", err)
		if heroes, err = data.LoadHeroes(cfg.HeroesSnapshotPath()); err != nil {
			return nil, err
		}
	}

	items, err := odClient.Items()
	if err != nil {
		log.Printf("Items constants fetch failed, trying bundled snapshot: %v", err)
		if items, err = data.LoadItems(cfg.ItemsSnapshotPath()); err != nil {
			return nil, err
		}
	}

	itemIDs, err := odClient.ItemIDs()
	if err != nil {
		log.Printf("Item ids constants fetch failed, trying bundled snapshot: %v", err)
		if itemIDs, err = data.LoadItemIDs(cfg.ItemIDsSnapshotPath()); err != nil {
			return nil, err
		}
	}

	log.Printf("Reference data loaded: %d heroes, %d items", len(roster), len(items))
	return meta.NewDataset(roster, heroes, items, itemIDs), nil
}

// Start connects to Discord and starts the bot.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	log.Println("Connected to Discord")

	// Register slash commands
	if err := b.registerCommands(); err != nil {
		log.Printf("Register commands failed: %v", err)
	}

	// Start watch polling task
	go b.pollWatches()

	return nil
}

// Stop gracefully shuts down the bot.
func (b *Bot) Stop() error {
	close(b.stopPolling)
	b.watches.Save()
	return b.session.Close()
}

// onReady is called when the bot is ready.
func (b *Bot) onReady(s *discordgo.Session, event *discordgo.Ready) {
	log.Printf("Bot ready: %s", event.User.Username)
}

// registerCommands registers all slash commands.
func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "ping",
			Description: "Check that the bot is alive",
		},
		{
			Name:        "hero",
			Description: "Meta snapshot for a hero: win rate and top items per phase",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Hero name (e.g. Anti-Mage); leave empty for a random hero",
					Required:    false,
				},
			},
		},
		{
			Name:        "random",
			Description: "Meta snapshot for a random hero",
		},
		{
			Name:        "watch",
			Description: "Watch a hero: get notified here when its win rate moves",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Hero name (e.g. Anti-Mage)",
					Required:    true,
				},
			},
		},
		{
			Name:        "unwatch",
			Description: "Stop watching a hero in this channel",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Hero name to stop watching",
					Required:    true,
				},
			},
		},
		{
			Name:        "watchlist",
			Description: "List watched heroes in this channel",
		},
	}

	registeredCommands := make([]*discordgo.ApplicationCommand, len(commands))
	for i, cmd := range commands {
		registered, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, "", cmd)
		if err != nil {
			log.Printf("Command %s failed: %v", cmd.Name, err)
			continue
		}
		registeredCommands[i] = registered
	}

	b.commands = registeredCommands
	log.Printf("Registered %d commands", len(registeredCommands))
	return nil
}

// onInteractionCreate handles slash command interactions.
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type == discordgo.InteractionApplicationCommand {
		switch i.ApplicationCommandData().Name {
		case "ping":
			b.handlePing(s, i)
		case "hero":
			b.handleHero(s, i)
		case "random":
			b.handleRandom(s, i)
		case "watch":
			b.handleWatch(s, i)
		case "unwatch":
			b.handleUnwatch(s, i)
		case "watchlist":
			b.handleWatchlist(s, i)
		}
	} else if i.Type == discordgo.InteractionMessageComponent {
		b.handleComponentInteraction(s, i)
	}
}

// handlePing handles the /ping command.
func (b *Bot) handlePing(s *discordgo.Session, i *discordgo.InteractionCreate) {
	latency := s.HeartbeatLatency().Milliseconds()
	embed := embeds.Success(
		fmt.Sprintf("🏓 Pong! Latency: **%dms**", latency),
		"✅ Bot is running",
	)

	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

// handleComponentInteraction handles button interactions.
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID

	switch {
	case customID == "reroll":
		b.handleReroll(s, i)

	case strings.HasPrefix(customID, "watchhero_"):
		b.handleWatchButton(s, i, strings.TrimPrefix(customID, "watchhero_"))
	}
}
