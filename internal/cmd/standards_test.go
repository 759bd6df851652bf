package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/shed/internal/domain"
)

func TestResolveStandard(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		wantID  string
		wantErr error
	}{
		{"by id", "autumn-leaves", "autumn-leaves", nil},
		{"by title ignoring case", "autumn leaves", "autumn-leaves", nil},
		{"unknown", "stairway-to-heaven", "", domain.ErrUnknownStandard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			std, err := resolveStandard(tt.ref)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, std.ID)
		})
	}
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "", baseName(""))
	assert.Equal(t, "take1.m4a", baseName("/recordings/autumn/take1.m4a"))
}
