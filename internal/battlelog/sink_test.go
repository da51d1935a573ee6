package battlelog_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/wilran/internal/battlelog"
	mockbattlelog "github.com/KirkDiggler/wilran/internal/battlelog/mock"
	"github.com/KirkDiggler/wilran/internal/entities"
)

func testRecord() *entities.Encounter {
	return &entities.Encounter{
		ID:               "rec-1",
		Name:             "CHARMANDER",
		Shiny:            true,
		Level:            5,
		SR:               1,
		XP:               1000,
		ProficiencyBonus: 3,
		Gender:           "Male",
		Types:            []string{"fire"},
		Size:             "small",
		Nature:           "Lonely (+1 Str, -1 Con)",
		AC:               13,
		CurrentHP:        20,
		MaxHP:            24,
		Speed:            "Walking 30ft",
		AbilityScores: entities.AbilityScores{
			entities.AttributeStrength:     13,
			entities.AttributeDexterity:    14,
			entities.AttributeConstitution: 9,
			entities.AttributeIntelligence: 10,
			entities.AttributeWisdom:       11,
			entities.AttributeCharisma:     12,
		},
		Skills:          []string{"perception", "sleight of hand"},
		SavingThrows:    []string{"dex"},
		Vulnerabilities: []string{"ground", "rock", "water"},
		Resistances:     []string{"bug", "fire"},
		Immunities:      []string{"None"},
		Moves: []*entities.MoveSlot{
			{Key: "ember", Name: "Ember", PP: 2, MaxPP: 3},
		},
		Ability:         &entities.AbilityInfo{ID: "blaze", Name: "Blaze", Description: "Fire moves hit harder."},
		HiddenAbilities: []*entities.AbilityInfo{{ID: "solar-power", Name: "Solar Power"}},
		HeldItem:        "None",
	}
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	sink := battlelog.NewWriterSink(&buf)

	require.NoError(t, sink.Write(context.Background(), "first"))
	require.NoError(t, sink.Write(context.Background(), "second"))
	assert.Equal(t, "first\n\nsecond\n\n", buf.String())
}

func TestFormatRecord(t *testing.T) {
	out := battlelog.FormatRecord(testRecord())

	assert.Contains(t, out, "CHARMANDER ✨ (Shiny)  [rec-1]")
	assert.Contains(t, out, "Level 5 | SR 1 | XP 1000 | Proficiency +3")
	assert.Contains(t, out, "Gender: Male | Types: Fire | Size: Small")
	assert.Contains(t, out, "AC 13 | HP 20/24 | Speed: Walking 30ft | Senses: None")
	assert.Contains(t, out, "STR: 13 (+1)")
	assert.Contains(t, out, "Skills: Perception, Sleight Of Hand")
	assert.Contains(t, out, "Saving Throws: DEX")
	assert.Contains(t, out, "Vulnerabilities: Ground, Rock, Water")
	assert.Contains(t, out, "Immunities: None")
	assert.Contains(t, out, "  Ember (PP 2/3)")
	assert.Contains(t, out, "Ability: Blaze - Fire moves hit harder.")
	assert.Contains(t, out, "Hidden Ability: Solar Power")
	assert.Contains(t, out, "Held Item: None")
}

func TestRecordEmbed(t *testing.T) {
	embed := battlelog.RecordEmbed(testRecord())

	assert.Equal(t, "CHARMANDER ✨", embed.Title)
	assert.Equal(t, battlelog.ColorShiny, embed.Color)
	assert.Equal(t, "rec-1", embed.Footer.Text)
	assert.Nil(t, embed.Thumbnail)

	fields := map[string]string{}
	for _, f := range embed.Fields {
		fields[f.Name] = f.Value
	}
	assert.Equal(t, "20/24", fields["HP"])
	assert.Equal(t, "Ember (2/3 PP)", fields["Moves"])
	assert.Equal(t, "Bug, Fire", fields["Resistances"])
}

func TestRecordEmbed_CapsFieldValues(t *testing.T) {
	rec := testRecord()
	rec.Ability.Description = strings.Repeat("é", 1500)

	embed := battlelog.RecordEmbed(rec)

	var abilities string
	for _, f := range embed.Fields {
		assert.LessOrEqual(t, len(f.Value), 1024, f.Name)
		if f.Name == "Abilities" {
			abilities = f.Value
		}
	}
	assert.True(t, utf8.ValidString(abilities))
	assert.True(t, strings.HasSuffix(abilities, "..."))
	assert.True(t, strings.HasPrefix(abilities, "Ability: Blaze"))
}

type DiscordSinkTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	session *mockbattlelog.MockDiscordSession
	sink    *battlelog.DiscordSink
}

func (s *DiscordSinkTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.session = mockbattlelog.NewMockDiscordSession(s.ctrl)
	s.sink = battlelog.NewDiscordSink(&battlelog.DiscordSinkConfig{
		Session:   s.session,
		ChannelID: "chan-1",
	})
}

func (s *DiscordSinkTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DiscordSinkTestSuite) TestWrite_PostsCodeBlock() {
	s.session.EXPECT().
		ChannelMessageSend("chan-1", "```\nEEVEE uses Tackle!\n```", gomock.Any()).
		Return(&discordgo.Message{ID: "m1"}, nil)

	s.NoError(s.sink.Write(context.Background(), "EEVEE uses Tackle!"))
}

func (s *DiscordSinkTestSuite) TestWrite_TruncatesLongMessages() {
	s.session.EXPECT().
		ChannelMessageSend("chan-1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ string, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			s.LessOrEqual(len(content), 2000)
			s.True(strings.HasSuffix(content, "...\n```"))
			return &discordgo.Message{}, nil
		})

	s.NoError(s.sink.Write(context.Background(), strings.Repeat("x", 3000)))
}

func (s *DiscordSinkTestSuite) TestWrite_TruncatesOnRuneBoundary() {
	msg := strings.Repeat("x", 1987) + strings.Repeat("└", 20)

	s.session.EXPECT().
		ChannelMessageSend("chan-1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ string, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			s.LessOrEqual(len(content), 2000)
			s.True(utf8.ValidString(content))
			s.Equal("```\n"+strings.Repeat("x", 1987)+"...\n```", content)
			return &discordgo.Message{}, nil
		})

	s.NoError(s.sink.Write(context.Background(), msg))
}

func (s *DiscordSinkTestSuite) TestWrite_Error() {
	s.session.EXPECT().
		ChannelMessageSend("chan-1", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("rate limited"))

	err := s.sink.Write(context.Background(), "hello")
	s.Error(err)
	s.Contains(err.Error(), "rate limited")
}

func (s *DiscordSinkTestSuite) TestWriteRecord() {
	s.session.EXPECT().
		ChannelMessageSendEmbed("chan-1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			s.Equal("CHARMANDER ✨", embed.Title)
			return &discordgo.Message{}, nil
		})

	s.NoError(s.sink.WriteRecord(context.Background(), testRecord()))
}

func (s *DiscordSinkTestSuite) TestNewDiscordSink_RequiresChannel() {
	s.Panics(func() {
		battlelog.NewDiscordSink(&battlelog.DiscordSinkConfig{Session: s.session})
	})
}

func TestDiscordSinkSuite(t *testing.T) {
	suite.Run(t, new(DiscordSinkTestSuite))
}
