// Package embeds provides Discord embed builders for DotaMeta.
package embeds

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/dotameta/internal/meta"
	"github.com/dotameta/internal/services/opendota"
	"github.com/dotameta/internal/storage"
)

// Colors for embeds
const (
	ColorUp      = 0x00FF00 // Green
	ColorDown    = 0xFF0000 // Red
	ColorInfo    = 0x3498DB // Blue
	ColorWarning = 0xFFFF00 // Yellow
)

// CDNBase is the Steam CDN root for hero and item images. The bot
// overrides it from config at startup.
var CDNBase = "https://cdn.cloudflare.steamstatic.com"

// ImageURL resolves an OpenDota image path against the Steam CDN.
func ImageURL(path string) string {
	if path == "" {
		return ""
	}
	return CDNBase + path
}

// AttributeEmoji returns an emoji for a hero's primary attribute.
func AttributeEmoji(attr string) string {
	attrEmojis := map[string]string{
		"str": "💪",
		"agi": "🏹",
		"int": "🧠",
		"all": "🌀",
	}

	if emoji, ok := attrEmojis[attr]; ok {
		return emoji
	}
	return "🎮"
}

// AttributeName returns a display name for a hero's primary attribute.
func AttributeName(attr string) string {
	attrNames := map[string]string{
		"str": "Strength",
		"agi": "Agility",
		"int": "Intelligence",
		"all": "Universal",
	}

	if name, ok := attrNames[attr]; ok {
		return name
	}
	return attr
}

// Success creates a success embed.
func Success(message, title string) *discordgo.MessageEmbed {
	if title == "" {
		title = "✅ Done"
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       ColorUp,
	}
}

// Error creates an error embed.
func Error(message, title string) *discordgo.MessageEmbed {
	if title == "" {
		title = "❌ Error"
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       ColorDown,
	}
}

// Warning creates a warning embed.
func Warning(message, title string) *discordgo.MessageEmbed {
	if title == "" {
		title = "⚠️ Warning"
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       ColorWarning,
	}
}

// Info creates an info embed.
func Info(message, title string) *discordgo.MessageEmbed {
	if title == "" {
		title = "ℹ️ Info"
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       ColorInfo,
	}
}

// Searching creates a searching status embed.
func Searching(query string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🔍 Searching...",
		Description: fmt.Sprintf("Looking up **%s**...", query),
		Color:       ColorInfo,
	}
}

// HeroSnapshot creates the meta snapshot embed for one hero profile.
func HeroSnapshot(p *meta.HeroProfile) *discordgo.MessageEmbed {
	winRate := fmt.Sprintf("%.2f%%", p.WinRate)
	if p.NoStats {
		winRate = "N/A (no recorded picks)"
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("⚔️ %s", strings.ToUpper(p.Hero.LocalizedName)),
		Description: fmt.Sprintf("%s %s | 🏆 Win rate: **%s**",
			AttributeEmoji(p.Hero.PrimaryAttr),
			AttributeName(p.Hero.PrimaryAttr),
			winRate,
		),
		Color: ColorInfo,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: ImageURL(p.Portrait.Img),
		},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🌅 Early game", Value: itemList(p.Early), Inline: false},
			{Name: "🌇 Mid game", Value: itemList(p.Mid), Inline: false},
			{Name: "🌃 Late game", Value: itemList(p.Late), Inline: false},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "📊 Data from OpenDota",
		},
	}

	return embed
}

// itemList formats a phase's item records as a ranked list.
func itemList(items []opendota.Item) string {
	if len(items) == 0 {
		return "No purchase data"
	}

	var sb strings.Builder
	for k, item := range items {
		name := item.Dname
		if name == "" {
			name = fmt.Sprintf("Item #%d", item.ID)
		}
		sb.WriteString(fmt.Sprintf("%s **%s**\n", getMedal(k), name))
	}
	return sb.String()
}

func getMedal(index int) string {
	switch index {
	case 0:
		return "🥇"
	case 1:
		return "🥈"
	case 2:
		return "🥉"
	case 3:
		return "`4.`"
	case 4:
		return "`5.`"
	default:
		return "•"
	}
}

// WatchNotification creates an embed announcing a watched hero's win
// rate movement.
func WatchNotification(heroName string, oldRate, newRate float64) *discordgo.MessageEmbed {
	color := ColorUp
	arrow := "📈"
	if newRate < oldRate {
		color = ColorDown
		arrow = "📉"
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s %s meta shift", arrow, heroName),
		Description: fmt.Sprintf("Win rate moved from **%.2f%%** to **%.2f%%**.\nUse `/hero name:%s` for a fresh snapshot.",
			oldRate, newRate, heroName),
		Color: color,
	}
}

// WatchList creates an embed for the watched heroes of a channel.
func WatchList(watches []*storage.WatchedHero, channelName string) *discordgo.MessageEmbed {
	if len(watches) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "📋 Watched heroes",
			Description: "No heroes watched in this channel yet.\nUse `/watch` to start.",
			Color:       ColorInfo,
		}
	}

	var sb strings.Builder
	for _, w := range watches {
		sb.WriteString(fmt.Sprintf("• **%s** — last notified at %.2f%%\n", w.HeroName, w.LastWinRate))
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📋 Watched heroes in #%s (%d)", channelName, len(watches)),
		Description: sb.String(),
		Color:       ColorInfo,
	}
}
