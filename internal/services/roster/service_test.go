package roster_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/wilran/internal/battlelog"
	"github.com/KirkDiggler/wilran/internal/entities"
	"github.com/KirkDiggler/wilran/internal/entities/attack"
	dnderr "github.com/KirkDiggler/wilran/internal/errors"
	"github.com/KirkDiggler/wilran/internal/events"
	rosterRepo "github.com/KirkDiggler/wilran/internal/repositories/roster"
	"github.com/KirkDiggler/wilran/internal/services/combat"
	mockcombat "github.com/KirkDiggler/wilran/internal/services/combat/mock"
	mockencounter "github.com/KirkDiggler/wilran/internal/services/encounter/mock"
	"github.com/KirkDiggler/wilran/internal/services/roster"
	"github.com/KirkDiggler/wilran/internal/testutils"
)

type recordingListener struct {
	events []events.Event
}

func (l *recordingListener) ID() string    { return "recorder" }
func (l *recordingListener) Priority() int { return events.PriorityRules }
func (l *recordingListener) HandleEvent(e events.Event) error {
	l.events = append(l.events, e)
	return nil
}

type RosterServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	ctx       context.Context
	repo      rosterRepo.Repository
	generator *mockencounter.MockService
	combat    *mockcombat.MockService
	bus       *events.Bus
	recorder  *recordingListener
	service   roster.Service
}

func (s *RosterServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.repo = rosterRepo.NewInMemoryRepository()
	s.generator = mockencounter.NewMockService(s.ctrl)
	s.combat = mockcombat.NewMockService(s.ctrl)
	s.bus = events.NewBus()
	s.recorder = &recordingListener{}
	s.bus.Subscribe(s.recorder, events.AllEventTypes...)

	s.service = roster.NewService(&roster.ServiceConfig{
		Repository: s.repo,
		Generator:  s.generator,
		Combat:     s.combat,
		EventBus:   s.bus,
	})
}

func (s *RosterServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RosterServiceTestSuite) seed() *entities.Encounter {
	enc := testutils.CreateTestEncounter("rec-1", "CHARMANDER")
	s.Require().NoError(s.repo.Create(s.ctx, enc))
	return enc
}

func (s *RosterServiceTestSuite) lastEvent() events.Event {
	s.Require().NotEmpty(s.recorder.events)
	return s.recorder.events[len(s.recorder.events)-1]
}

func (s *RosterServiceTestSuite) TestAdd() {
	enc := testutils.CreateTestEncounter("rec-1", "CHARMANDER")
	s.generator.EXPECT().GenerateInArea(s.ctx, "Volcano").Return(enc, nil)

	added, err := s.service.Add(s.ctx, "Volcano")
	s.Require().NoError(err)
	s.Equal("rec-1", added.ID)

	all, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 1)

	changed, ok := s.lastEvent().(*events.RosterChangedEvent)
	s.Require().True(ok)
	s.Equal(events.RosterActionAdded, changed.Action)
	s.Equal("rec-1", changed.GetActor().ID)
}

func (s *RosterServiceTestSuite) TestAdd_GeneratorFails() {
	s.generator.EXPECT().GenerateInArea(s.ctx, "Nowhere").
		Return(nil, dnderr.NotFoundf("area %q not found", "Nowhere"))

	_, err := s.service.Add(s.ctx, "Nowhere")
	s.True(dnderr.IsNotFound(err))

	all, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)
	s.Empty(s.recorder.events)
}

func (s *RosterServiceTestSuite) TestSave_Duplicate() {
	s.seed()
	err := s.service.Save(s.ctx, testutils.CreateTestEncounter("rec-1", "CHARMANDER"))
	s.True(dnderr.IsAlreadyExists(err))
}

func (s *RosterServiceTestSuite) TestUseMove_SpendsPP() {
	s.seed()
	result := &attack.Result{Kind: attack.KindDescriptionOnly, UserName: "CHARMANDER", MoveName: "Ember"}
	s.combat.EXPECT().ResolveAttack(s.ctx, gomock.Any(), "ember").
		DoAndReturn(func(_ context.Context, enc *entities.Encounter, _ string) *attack.Result {
			s.Equal(1, enc.FindMove("ember").PP, "PP is spent before resolving")
			return result
		})

	used, err := s.service.UseMove(s.ctx, "rec-1", "Ember")
	s.Require().NoError(err)
	s.Same(result, used.Result)
	s.Equal(1, used.Slot.PP)

	stored, err := s.service.Get(s.ctx, "rec-1")
	s.Require().NoError(err)
	s.Equal(1, stored.FindMove("ember").PP)

	moveUsed, ok := s.lastEvent().(*events.MoveUsedEvent)
	s.Require().True(ok)
	s.Same(result, moveUsed.Result)
}

func (s *RosterServiceTestSuite) TestUseMove_RejectsAtZeroPP() {
	s.seed()
	s.combat.EXPECT().ResolveAttack(s.ctx, gomock.Any(), "growl").
		Return(&attack.Result{Kind: attack.KindDescriptionOnly}).Times(1)

	_, err := s.service.UseMove(s.ctx, "rec-1", "growl")
	s.Require().NoError(err)

	_, err = s.service.UseMove(s.ctx, "rec-1", "growl")
	s.Require().Error(err)
	s.True(dnderr.IsValidation(err))

	stored, err := s.service.Get(s.ctx, "rec-1")
	s.Require().NoError(err)
	s.Equal(0, stored.FindMove("growl").PP)
}

func (s *RosterServiceTestSuite) TestUseMove_ResolutionErrorStillSpendsPP() {
	s.seed()
	s.combat.EXPECT().ResolveAttack(s.ctx, gomock.Any(), "ember").
		Return(&attack.Result{Kind: attack.KindError, UserName: "CHARMANDER", MoveName: "Ember", Message: "bad dice"})

	used, err := s.service.UseMove(s.ctx, "rec-1", "ember")
	s.Require().NoError(err)
	s.Equal(attack.KindError, used.Result.Kind)
	s.Equal(1, used.Slot.PP)
}

func (s *RosterServiceTestSuite) TestUseMove_UnknownMoveOrRecord() {
	s.seed()

	_, err := s.service.UseMove(s.ctx, "rec-1", "hyper-beam")
	s.True(dnderr.IsNotFound(err))

	_, err = s.service.UseMove(s.ctx, "missing", "ember")
	s.True(dnderr.IsNotFound(err))

	s.Empty(s.recorder.events)
}

func (s *RosterServiceTestSuite) TestResetPP() {
	enc := testutils.CreateTestEncounter("rec-1", "CHARMANDER")
	enc.Moves[0].PP = 0
	enc.Moves[1].PP = 0
	s.Require().NoError(s.repo.Create(s.ctx, enc))

	reset, err := s.service.ResetPP(s.ctx, "rec-1")
	s.Require().NoError(err)
	s.Equal(2, reset.Moves[0].PP)
	s.Equal(1, reset.Moves[1].PP)

	_, ok := s.lastEvent().(*events.PPResetEvent)
	s.True(ok)
}

func (s *RosterServiceTestSuite) TestAdjustHP() {
	s.seed()

	tests := []struct {
		input   string
		change  events.HPChange
		wantHP  int
		applied int
	}{
		{input: "-10", change: events.HPChangeDamage, wantHP: 14, applied: 10},
		{input: "+5", change: events.HPChangeHeal, wantHP: 19, applied: 5},
		{input: "+50", change: events.HPChangeHeal, wantHP: 24, applied: 5},
		{input: "=30", change: events.HPChangeSet, wantHP: 24, applied: 0},
		{input: "12", change: events.HPChangeSet, wantHP: 12, applied: -12},
		{input: "-99", change: events.HPChangeDamage, wantHP: 0, applied: 12},
		{input: "-1", change: events.HPChangeDamage, wantHP: 0, applied: 0},
	}

	for _, tt := range tests {
		res, err := s.service.AdjustHP(s.ctx, "rec-1", tt.input)
		s.Require().NoError(err, tt.input)
		s.Equal(tt.change, res.Change, tt.input)
		s.Equal(tt.wantHP, res.Record.CurrentHP, tt.input)
		s.Equal(tt.applied, res.Applied, tt.input)

		hp, ok := s.lastEvent().(*events.HPChangedEvent)
		s.Require().True(ok)
		s.Equal(tt.wantHP, hp.NewHP, tt.input)
	}

	stored, err := s.service.Get(s.ctx, "rec-1")
	s.Require().NoError(err)
	s.Equal(0, stored.CurrentHP)
}

func (s *RosterServiceTestSuite) TestAdjustHP_InvalidInput() {
	s.seed()

	for _, input := range []string{"", "abc", "+-3", "=", "--2", "1.5"} {
		_, err := s.service.AdjustHP(s.ctx, "rec-1", input)
		s.Require().Error(err, input)
		s.True(dnderr.IsValidation(err), input)
		s.Contains(err.Error(), "Invalid HP input: '"+input+"'. Use +X, -X, or =X format.")
	}
	s.Empty(s.recorder.events)
}

func (s *RosterServiceTestSuite) TestRollCheck() {
	s.seed()
	input := &combat.CheckInput{Type: attack.CheckSkill, Option: "perception"}
	check := &attack.CheckResult{UserName: "CHARMANDER", Type: attack.CheckSkill, Option: "Perception", D20: 20, Total: 23}
	s.combat.EXPECT().RollCheck(s.ctx, gomock.Any(), input).Return(check, nil)

	got, err := s.service.RollCheck(s.ctx, "rec-1", input)
	s.Require().NoError(err)
	s.Same(check, got)

	rolled, ok := s.lastEvent().(*events.CheckRolledEvent)
	s.Require().True(ok)
	s.Same(check, rolled.Result)
}

func (s *RosterServiceTestSuite) TestRollCheck_Error() {
	s.seed()
	input := &combat.CheckInput{Type: attack.CheckSkill, Option: "juggling"}
	s.combat.EXPECT().RollCheck(s.ctx, gomock.Any(), input).
		Return(nil, dnderr.InvalidArgumentf("unknown skill %q", "juggling"))

	_, err := s.service.RollCheck(s.ctx, "rec-1", input)
	s.True(dnderr.IsInvalidArgument(err))
	s.Empty(s.recorder.events)
}

func (s *RosterServiceTestSuite) TestSetAbilityScores() {
	s.seed()

	enc, err := s.service.SetAbilityScores(s.ctx, "rec-1", "STR: 18 (+4)\nDEX: 8\nCON: oops")
	s.Require().NoError(err)
	s.Equal(18, enc.AbilityScores[entities.AttributeStrength])
	s.Equal(8, enc.AbilityScores[entities.AttributeDexterity])
	s.Equal(10, enc.AbilityScores[entities.AttributeConstitution])
	s.Equal(10, enc.AbilityScores[entities.AttributeCharisma])

	stored, err := s.service.Get(s.ctx, "rec-1")
	s.Require().NoError(err)
	s.Equal(enc.AbilityScores, stored.AbilityScores)
}

func (s *RosterServiceTestSuite) TestRemove() {
	s.seed()

	s.Require().NoError(s.service.Remove(s.ctx, "rec-1"))

	_, err := s.service.Get(s.ctx, "rec-1")
	s.True(dnderr.IsNotFound(err))

	changed, ok := s.lastEvent().(*events.RosterChangedEvent)
	s.Require().True(ok)
	s.Equal(events.RosterActionRemoved, changed.Action)

	s.True(dnderr.IsNotFound(s.service.Remove(s.ctx, "rec-1")))
}

func (s *RosterServiceTestSuite) TestGet_RequiresID() {
	_, err := s.service.Get(s.ctx, "")
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *RosterServiceTestSuite) TestBattleLogReceivesMessages() {
	var out bytes.Buffer
	listener := battlelog.NewListener("battle-log", battlelog.NewWriterSink(&out))
	listener.Subscribe(s.bus)
	s.seed()

	_, err := s.service.AdjustHP(s.ctx, "rec-1", "-30")
	s.Require().NoError(err)
	_, err = s.service.ResetPP(s.ctx, "rec-1")
	s.Require().NoError(err)

	s.Contains(out.String(), "CHARMANDER takes 24 damage (24 → 0/24) and is knocked out!")
	s.Contains(out.String(), "CHARMANDER's moves are restored to full PP")
}

func (s *RosterServiceTestSuite) TestNewService_RequiresDependencies() {
	s.Panics(func() { roster.NewService(&roster.ServiceConfig{}) })
	s.Panics(func() {
		roster.NewService(&roster.ServiceConfig{Repository: s.repo, Generator: s.generator})
	})
}

func TestRosterServiceSuite(t *testing.T) {
	suite.Run(t, new(RosterServiceTestSuite))
}

func TestParseHPInput(t *testing.T) {
	tests := []struct {
		input  string
		change events.HPChange
		amount int
		ok     bool
	}{
		{input: "=7", change: events.HPChangeSet, amount: 7, ok: true},
		{input: " +3 ", change: events.HPChangeHeal, amount: 3, ok: true},
		{input: "-4", change: events.HPChangeDamage, amount: 4, ok: true},
		{input: "15", change: events.HPChangeSet, amount: 15, ok: true},
		{input: "0", change: events.HPChangeSet, amount: 0, ok: true},
		{input: "+-4"},
		{input: "=-1"},
		{input: "ten"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			change, amount, err := roster.ParseHPInput(tt.input)
			if !tt.ok {
				var appErr *dnderr.Error
				if !errors.As(err, &appErr) || appErr.Code != dnderr.CodeValidation {
					t.Fatalf("expected a validation error for %q, got %v", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.input, err)
			}
			if change != tt.change || amount != tt.amount {
				t.Errorf("ParseHPInput(%q) = %s %d, want %s %d", tt.input, change, amount, tt.change, tt.amount)
			}
		})
	}
}
