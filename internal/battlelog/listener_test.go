package battlelog_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/wilran/internal/battlelog"
	mockbattlelog "github.com/KirkDiggler/wilran/internal/battlelog/mock"
	"github.com/KirkDiggler/wilran/internal/entities/attack"
	"github.com/KirkDiggler/wilran/internal/events"
)

type ListenerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	first    *mockbattlelog.MockSink
	second   *mockbattlelog.MockSink
	bus      *events.Bus
	listener *battlelog.Listener
}

func (s *ListenerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.first = mockbattlelog.NewMockSink(s.ctrl)
	s.second = mockbattlelog.NewMockSink(s.ctrl)
	s.bus = events.NewBus()
	s.listener = battlelog.NewListener("battlelog", s.first, s.second)
	s.listener.Subscribe(s.bus)
}

func (s *ListenerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ListenerTestSuite) TestSubscribesToEveryEvent() {
	for _, et := range events.AllEventTypes {
		s.Equal(1, s.bus.ListenerCount(et), string(et))
	}
	s.Equal(events.PriorityLogging, s.listener.Priority())
}

func (s *ListenerTestSuite) TestMoveUsed_WritesRoll20Block() {
	result := &attack.Result{Kind: attack.KindDescriptionOnly, UserName: "ABRA", MoveName: "Teleport"}
	event := &events.MoveUsedEvent{Result: result}
	event.Type = events.EventTypeMoveUsed
	event.Actor = testRecord()

	want := "ABRA uses Teleport!\n\nResult: See move description"
	s.first.EXPECT().Write(gomock.Any(), want).Return(nil)
	s.second.EXPECT().Write(gomock.Any(), want).Return(nil)

	s.NoError(s.bus.Emit(event))
}

func (s *ListenerTestSuite) TestFailingSinkDoesNotStopOthers() {
	event := &events.PPResetEvent{}
	event.Type = events.EventTypePPReset
	event.Actor = testRecord()

	want := "CHARMANDER's moves are restored to full PP"
	s.first.EXPECT().Write(gomock.Any(), want).Return(errors.New("offline"))
	s.second.EXPECT().Write(gomock.Any(), want).Return(nil)

	s.NoError(s.bus.Emit(event))
}

func (s *ListenerTestSuite) TestCancelledEventIsNotLogged() {
	rules := &cancellingListener{}
	s.bus.Subscribe(rules, events.EventTypeHPChanged)

	event := &events.HPChangedEvent{Change: events.HPChangeHeal}
	event.Type = events.EventTypeHPChanged
	event.Actor = testRecord()

	s.NoError(s.bus.Emit(event))
}

func TestListenerSuite(t *testing.T) {
	suite.Run(t, new(ListenerTestSuite))
}

func TestListener_RosterAddWritesRecord(t *testing.T) {
	var buf bytes.Buffer
	sink := battlelog.NewWriterSink(&buf)
	listener := battlelog.NewListener("console", sink)

	event := &events.RosterChangedEvent{Action: events.RosterActionAdded}
	event.Type = events.EventTypeRosterChanged
	event.Actor = testRecord()

	require.NoError(t, listener.HandleEvent(event))

	out := buf.String()
	assert.Contains(t, out, "CHARMANDER joins the battle (Lv. 5) ✨")
	assert.Contains(t, out, "Hidden Ability: Solar Power")

	buf.Reset()
	removed := &events.RosterChangedEvent{Action: events.RosterActionRemoved}
	removed.Type = events.EventTypeRosterChanged
	removed.Actor = testRecord()
	require.NoError(t, listener.HandleEvent(removed))
	assert.Equal(t, "CHARMANDER leaves the battle\n\n", buf.String())
}

func TestRender_UnknownEvent(t *testing.T) {
	_, ok := battlelog.Render(&events.BaseEvent{Type: "other"})
	assert.False(t, ok)
}

type cancellingListener struct{}

func (c *cancellingListener) HandleEvent(e events.Event) error {
	e.Cancel()
	return nil
}
func (c *cancellingListener) Priority() int { return events.PriorityRules }
func (c *cancellingListener) ID() string    { return "rules" }
