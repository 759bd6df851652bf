package cmd

import (
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/shed/internal/domain"
)

func stubTerminal(t *testing.T, terminal bool, password string, err error) *[]string {
	t.Helper()
	var prompts []string

	origTerminal, origPrompt, origNew := stdinIsTerminal, promptPassword, promptNewPassword
	t.Cleanup(func() {
		stdinIsTerminal, promptPassword, promptNewPassword = origTerminal, origPrompt, origNew
	})

	stdinIsTerminal = func() bool { return terminal }
	promptPassword = func(email string) (string, error) {
		prompts = append(prompts, "signin:"+email)
		return password, err
	}
	promptNewPassword = func(email string) (string, error) {
		prompts = append(prompts, "signup:"+email)
		return password, err
	}
	return &prompts
}

func TestReadPassword_FlagWins(t *testing.T) {
	prompts := stubTerminal(t, true, "from prompt", nil)

	got, err := readPassword("from flag", "player@example.com", false)
	require.NoError(t, err)
	assert.Equal(t, "from flag", got)
	assert.Empty(t, *prompts)
}

func TestReadPassword_PromptsOnTerminal(t *testing.T) {
	prompts := stubTerminal(t, true, "correct horse", nil)

	got, err := readPassword("", "player@example.com", false)
	require.NoError(t, err)
	assert.Equal(t, "correct horse", got)

	got, err = readPassword("", "new@example.com", true)
	require.NoError(t, err)
	assert.Equal(t, "correct horse", got)

	assert.Equal(t, []string{"signin:player@example.com", "signup:new@example.com"}, *prompts)
}

func TestReadPassword_NoTerminal(t *testing.T) {
	prompts := stubTerminal(t, false, "unused", nil)

	_, err := readPassword("", "player@example.com", false)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, *prompts)
}

func TestReadPassword_Cancelled(t *testing.T) {
	stubTerminal(t, true, "", huh.ErrUserAborted)

	_, err := readPassword("", "player@example.com", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cancelled")
}

func TestRequirePassword(t *testing.T) {
	assert.Error(t, requirePassword(""))
	assert.NoError(t, requirePassword("x"))
}
