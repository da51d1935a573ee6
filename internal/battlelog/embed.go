package battlelog

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	ColorRecord = 0x7289da
	ColorShiny  = 0xffd700
	ColorMove   = 0xff6600
	ColorError  = 0xff0000
)

// embedBuilder provides a fluent API for building Discord embeds
type embedBuilder struct {
	embed *discordgo.MessageEmbed
}

func newEmbed() *embedBuilder {
	return &embedBuilder{
		embed: &discordgo.MessageEmbed{
			Type:   discordgo.EmbedTypeRich,
			Fields: make([]*discordgo.MessageEmbedField, 0),
		},
	}
}

func (b *embedBuilder) title(title string) *embedBuilder {
	b.embed.Title = title
	return b
}

func (b *embedBuilder) description(description string) *embedBuilder {
	b.embed.Description = description
	return b
}

func (b *embedBuilder) color(color int) *embedBuilder {
	b.embed.Color = color
	return b
}

func (b *embedBuilder) timestamp(ts time.Time) *embedBuilder {
	if !ts.IsZero() {
		b.embed.Timestamp = ts.Format(time.RFC3339)
	}
	return b
}

func (b *embedBuilder) footer(text string) *embedBuilder {
	b.embed.Footer = &discordgo.MessageEmbedFooter{Text: text}
	return b
}

func (b *embedBuilder) thumbnail(url string) *embedBuilder {
	if url != "" {
		b.embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: url}
	}
	return b
}

// field skips empty values, which Discord rejects, and cuts long ones to
// the field limit
func (b *embedBuilder) field(name, value string, inline bool) *embedBuilder {
	if value == "" {
		return b
	}
	b.embed.Fields = append(b.embed.Fields, &discordgo.MessageEmbedField{
		Name:   name,
		Value:  truncate(value, discordFieldLimit),
		Inline: inline,
	})
	return b
}

func (b *embedBuilder) build() *discordgo.MessageEmbed {
	return b.embed
}
