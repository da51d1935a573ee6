package battlelog

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/wilran/internal/domain/rulebook/stats"
	"github.com/KirkDiggler/wilran/internal/entities"
	dnderr "github.com/KirkDiggler/wilran/internal/errors"
)

// Discord's caps on message content and embed field value length
const (
	discordMessageLimit = 2000
	discordFieldLimit   = 1024
)

// DiscordSink posts battle log messages to one channel
type DiscordSink struct {
	session   DiscordSession
	channelID string
}

// DiscordSinkConfig holds configuration for the Discord sink
type DiscordSinkConfig struct {
	Session   DiscordSession
	ChannelID string
}

// NewDiscordSink creates a sink posting to cfg.ChannelID
func NewDiscordSink(cfg *DiscordSinkConfig) *DiscordSink {
	if cfg.Session == nil {
		panic("discord session is required")
	}
	if cfg.ChannelID == "" {
		panic("discord channel ID is required")
	}

	return &DiscordSink{
		session:   cfg.Session,
		channelID: cfg.ChannelID,
	}
}

// Write posts message as a code block
func (s *DiscordSink) Write(ctx context.Context, message string) error {
	content := codeBlock(message)
	if _, err := s.session.ChannelMessageSend(s.channelID, content, discordgo.WithContext(ctx)); err != nil {
		log.Printf("BattleLog: failed to post to channel %s: %v", s.channelID, err)
		return dnderr.Wrap(err, "failed to post battle log message")
	}
	return nil
}

// WriteRecord posts the record as an embed
func (s *DiscordSink) WriteRecord(ctx context.Context, enc *entities.Encounter) error {
	if _, err := s.session.ChannelMessageSendEmbed(s.channelID, RecordEmbed(enc), discordgo.WithContext(ctx)); err != nil {
		log.Printf("BattleLog: failed to post record %s to channel %s: %v", enc.ID, s.channelID, err)
		return dnderr.Wrapf(err, "failed to post record %s", enc.ID)
	}
	return nil
}

// RecordEmbed builds the Discord embed for a record
func RecordEmbed(enc *entities.Encounter) *discordgo.MessageEmbed {
	title := enc.Name
	color := ColorRecord
	if enc.Shiny {
		title += " ✨"
		color = ColorShiny
	}

	moves := make([]string, 0, len(enc.Moves))
	for _, slot := range enc.Moves {
		if slot.MaxPP == 0 {
			moves = append(moves, slot.Name)
			continue
		}
		moves = append(moves, fmt.Sprintf("%s (%d/%d PP)", slot.Name, slot.PP, slot.MaxPP))
	}

	return newEmbed().
		title(title).
		description(fmt.Sprintf("Level %d %s | %s | %s", enc.Level, TitleList(enc.Types, "/"), enc.Gender, enc.Nature)).
		color(color).
		thumbnail(enc.ImageURL).
		field("HP", fmt.Sprintf("%d/%d", enc.CurrentHP, enc.MaxHP), true).
		field("AC", fmt.Sprintf("%d", enc.AC), true).
		field("SR / XP", fmt.Sprintf("%g / %d", enc.SR, enc.XP), true).
		field("Ability Scores", codeBlock(stats.FormatSheet(enc.AbilityScores)), false).
		field("Moves", strings.Join(moves, "\n"), false).
		field("Vulnerabilities", TitleList(enc.Vulnerabilities, ", "), true).
		field("Resistances", TitleList(enc.Resistances, ", "), true).
		field("Immunities", TitleList(enc.Immunities, ", "), true).
		field("Abilities", FormatAbilities(enc), false).
		field("Held Item", enc.HeldItem, true).
		footer(enc.ID).
		timestamp(enc.CreatedAt).
		build()
}

// codeBlock wraps text in a Discord code block, cutting it to fit the
// message limit
func codeBlock(text string) string {
	const fence = "```"
	room := discordMessageLimit - 2*len(fence) - 2
	return fence + "\n" + truncate(text, room) + "\n" + fence
}

// truncate cuts text to at most limit bytes, ending in "...". The cut backs
// off to a rune boundary so the result stays valid UTF-8.
func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	cut := limit - 3
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}
