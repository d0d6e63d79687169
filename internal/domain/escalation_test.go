package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresent(t *testing.T) {
	tests := []struct {
		level       int
		kind        ContentKind
		badge       string
		accept      string
		canEscalate bool
	}{
		{0, ContentChecklist, "Feb 14", "Yes 💕", true},
		{1, ContentIncentives, "Urgent Request", "Yes 💕", true},
		{2, ContentEmergency, "Urgent Request", "Fine, YES! ❤️", false},
	}

	for _, tt := range tests {
		p := Present(tt.level, "Anjuu")
		assert.Equal(t, tt.level, p.Level)
		assert.Equal(t, tt.kind, p.Kind)
		assert.Equal(t, tt.badge, p.Badge)
		assert.Equal(t, tt.accept, p.AcceptLabel)
		assert.Equal(t, tt.canEscalate, p.CanEscalate)
		assert.NotEmpty(t, p.Heading)
		assert.NotEmpty(t, p.Description)
	}
}

func TestPresent_ContentSizes(t *testing.T) {
	assert.Len(t, Present(0, "").Items, 4)
	assert.Len(t, Present(1, "").Items, 4)
	assert.Contains(t, Present(2, "").Items[0].Text, "EMERGENCY")
}

func TestPresent_Nickname(t *testing.T) {
	assert.Equal(t, "Will you be my Valentine Anjuu? 💕", Present(0, "Anjuu").Heading)
	assert.Equal(t, "Will you be my Valentine? 💕", Present(0, "").Heading)
	assert.False(t, strings.Contains(Present(1, "Anjuu").Heading, "Anjuu"))
}

func TestPresent_ClampsLevel(t *testing.T) {
	assert.Equal(t, Present(2, "x"), Present(7, "x"))
	assert.Equal(t, Present(0, "x"), Present(-3, "x"))
}
