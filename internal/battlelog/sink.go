package battlelog

//go:generate mockgen -destination=mock/mock_sink.go -package=mockbattlelog -source=sink.go

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/wilran/internal/entities"
)

// Sink receives rendered battle log messages
type Sink interface {
	Write(ctx context.Context, message string) error
}

// RecordSink is implemented by sinks that can also show a full record
type RecordSink interface {
	WriteRecord(ctx context.Context, enc *entities.Encounter) error
}

// DiscordSession is the part of *discordgo.Session the Discord sink uses
type DiscordSession interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// WriterSink writes each message to w followed by a blank line
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a sink over w
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Write implements Sink
func (s *WriterSink) Write(_ context.Context, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := fmt.Fprintf(s.w, "%s\n\n", message)
	return err
}

// WriteRecord implements RecordSink
func (s *WriterSink) WriteRecord(ctx context.Context, enc *entities.Encounter) error {
	return s.Write(ctx, FormatRecord(enc))
}
