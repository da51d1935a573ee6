package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dnderr "github.com/KirkDiggler/wilran/internal/errors"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"WILRAN_DATA_DIR", "WILRAN_SEED", "REDIS_URL", "DISCORD_TOKEN", "DISCORD_LOG_CHANNEL_ID"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out)
	cmd.SetArgs(append([]string{"--data-dir", "../../data", "--seed", "7"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAreas(t *testing.T) {
	out, err := runCLI(t, "", "areas")
	require.NoError(t, err)
	assert.Equal(t, "Power Plant (1 species)\nRoute 1 (2 species)\n", out)
}

func TestGenerate(t *testing.T) {
	out, err := runCLI(t, "", "generate", "route", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Level ")
	assert.Contains(t, out, "Moves:")
	assert.Contains(t, out, "Held Item: ")
}

func TestGenerate_UnknownArea(t *testing.T) {
	_, err := runCLI(t, "", "generate", "Moon")
	require.Error(t, err)
	assert.True(t, dnderr.IsNotFound(err))
}

func TestGenerate_SaveWithoutRedisPrintsTheRecord(t *testing.T) {
	out, err := runCLI(t, "", "generate", "--save", "Power Plant")
	require.NoError(t, err)
	assert.Contains(t, out, "VOLTORB joins the battle")
	assert.Contains(t, out, "Gender: Genderless")
}

func TestRoster_EmptyWithoutRedis(t *testing.T) {
	out, err := runCLI(t, "", "roster", "list")
	require.NoError(t, err)
	assert.Equal(t, "The roster is empty\n", out)
}

func TestSession(t *testing.T) {
	script := strings.Join([]string{
		"add",
		"list",
		"use 1 splash",
		"hp 1 -1000",
		"hp 1 nope",
		"reset 1",
		"check 1 save dex",
		"check 1 skill animal handling",
		"check 1 luck 3",
		"remove 1",
		"list",
		"dance",
		"quit",
		"list",
	}, "\n")

	out, err := runCLI(t, script, "session", "Route", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "joins the battle")
	assert.Contains(t, out, "1. ")
	assert.Contains(t, out, "Error: ")
	assert.Contains(t, out, "does not know splash")
	assert.Contains(t, out, "and is knocked out!")
	assert.Contains(t, out, "Invalid HP input: 'nope'. Use +X, -X, or =X format.")
	assert.Contains(t, out, "moves are restored to full PP")
	assert.Contains(t, out, "saving throw:\nResult: ")
	assert.Contains(t, out, "Animal Handling skill check:\nResult: ")
	assert.Contains(t, out, `unknown roll type "luck"`)
	assert.Contains(t, out, "leaves the battle")
	assert.Contains(t, out, "The roster is empty")
	assert.Contains(t, out, `unknown command "dance"`)
	assert.Equal(t, 1, strings.Count(out, "The roster is empty"), "nothing runs after quit")
}

func TestSession_AddNeedsArea(t *testing.T) {
	out, err := runCLI(t, "add\n", "session")
	require.NoError(t, err)
	assert.Contains(t, out, "Error: add needs an area")
}
