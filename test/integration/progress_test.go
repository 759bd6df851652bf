package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/shed/test/integration/harness"
)

func TestProgressLifecycle(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	for _, item := range []string{"recordings", "melody", "chords"} {
		result := harness.RunCommand(t, env, "progress", "toggle", "autumn-leaves", item)
		harness.AssertSuccess(t, result)
	}

	result := harness.RunCommand(t, env, "progress", "show", "autumn-leaves", "--format", "json")
	harness.AssertSuccess(t, result)
	assert.Equal(t, float64(43), harness.AssertJSONPath(t, result, "CompletionPercentage"))

	result = harness.RunCommand(t, env, "progress", "toggle", "autumn-leaves", "juggling")
	harness.AssertFailure(t, result)

	result = harness.RunCommand(t, env, "progress", "notes", "autumn-leaves", "watch", "the", "bridge")
	harness.AssertSuccess(t, result)

	result = harness.RunCommand(t, env, "progress", "show", "autumn-leaves", "--format", "json")
	harness.AssertSuccess(t, result)
	assert.Equal(t, "watch the bridge", harness.AssertJSONPath(t, result, "Notes"))

	result = harness.RunCommand(t, env, "progress", "stats", "--format", "json")
	harness.AssertSuccess(t, result)
	assert.Equal(t, float64(1), harness.AssertJSONPath(t, result, "InProgress"))
}

func TestRecordings(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "recordings", "add", "autumn-leaves",
		"--artist", "Cannonball Adderley", "--url", "https://example.com/somethin-else")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Added reference recording 1")

	result = harness.RunCommand(t, env, "recordings", "list", "autumn-leaves")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Cannonball Adderley")

	result = harness.RunCommand(t, env, "recordings", "del", "autumn-leaves", "1")
	harness.AssertSuccess(t, result)

	result = harness.RunCommand(t, env, "recordings", "del", "autumn-leaves", "1")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "not found")
}

func TestLibraryNotes(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "library", "notes", "add", "all-blues", "try", "it", "in", "6/8")
	harness.AssertSuccess(t, result)

	result = harness.RunCommand(t, env, "library", "notes", "list", "all-blues", "--format", "json")
	harness.AssertSuccess(t, result)
	var notes []map[string]any
	harness.AssertValidJSON(t, result, &notes)
	if assert.Len(t, notes, 1) {
		assert.Equal(t, "try it in 6/8", notes[0]["Content"])
	}
}
