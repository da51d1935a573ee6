package services_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/wilran/internal/battlelog"
	"github.com/KirkDiggler/wilran/internal/dice"
	"github.com/KirkDiggler/wilran/internal/services"
	"github.com/KirkDiggler/wilran/internal/testutils"
	mockuuid "github.com/KirkDiggler/wilran/internal/uuid/mock"
)

func TestNewProvider_SeededSessionIsReproducible(t *testing.T) {
	run := func() (string, string) {
		var out bytes.Buffer
		ids := mockuuid.NewMockGenerator(gomock.NewController(t))
		ids.EXPECT().New().Return("rec-1")

		p := services.NewProvider(&services.ProviderConfig{
			Catalog:       testutils.CreateTestCatalog(t),
			Roller:        dice.NewSeededRoller(99),
			UUIDGenerator: ids,
		})
		battlelog.NewListener("battle-log", battlelog.NewWriterSink(&out)).Subscribe(p.EventBus)

		ctx := context.Background()
		enc, err := p.RosterService.Add(ctx, "Volcano")
		require.NoError(t, err)

		used, err := p.RosterService.UseMove(ctx, enc.ID, enc.Moves[0].Key)
		require.NoError(t, err)
		assert.Equal(t, used.Slot.MaxPP-1, used.Slot.PP)

		return battlelog.FormatRecord(enc), out.String()
	}

	record1, log1 := run()
	record2, log2 := run()
	assert.Equal(t, record1, record2)
	assert.Contains(t, log1, "CHARMANDER joins the battle")
	assert.Equal(t, log1, log2)
}

func TestNewProvider_RequiresCatalog(t *testing.T) {
	assert.Panics(t, func() { services.NewProvider(&services.ProviderConfig{}) })
}
