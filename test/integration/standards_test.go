package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/shed/test/integration/harness"
)

func TestStandardsList(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "standards", "list", "--search", "autumn")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "autumn-leaves")

	result = harness.RunCommand(t, env, "standards", "list", "--format", "json")
	harness.AssertSuccess(t, result)
	var standards []map[string]any
	harness.AssertValidJSON(t, result, &standards)
	assert.NotEmpty(t, standards)
}

func TestStandardsShow(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "standards", "show", "Blue Bossa", "--open")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Kenny Dorham")

	result = harness.RunCommand(t, env, "standards", "show", "no-such-tune")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "unknown standard")
}
