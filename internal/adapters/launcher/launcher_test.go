package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindOpener_EnvPrecedence(t *testing.T) {
	t.Setenv("SHED_OPENER", "my-opener")
	t.Setenv("BROWSER", "firefox")

	name, args := findOpener("https://example.com")
	assert.Equal(t, "my-opener", name)
	assert.Equal(t, []string{"https://example.com"}, args)

	t.Setenv("SHED_OPENER", "")
	name, _ = findOpener("https://example.com")
	assert.Equal(t, "firefox", name)
}

func TestOpen_EmptyTarget(t *testing.T) {
	assert.Error(t, New().Open(""))
}
