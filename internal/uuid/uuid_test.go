package uuid_test

import (
	"testing"

	googleuuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/wilran/internal/uuid"
)

func TestGoogleUUIDGenerator(t *testing.T) {
	id := uuid.NewGoogleUUIDGenerator().New()
	_, err := googleuuid.Parse(id)
	assert.NoError(t, err)
}

func TestShortGenerator(t *testing.T) {
	gen := uuid.NewShortGenerator()
	a, b := gen.New(), gen.New()

	assert.Len(t, a, uuid.ShortLength)
	assert.NotEqual(t, a, b)
}
