package braciole

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalizerEnglishDefault(t *testing.T) {
	loc := NewLocalizer()

	assert.Equal(t, "Select", loc.T(MsgFooterSelect))
	assert.Equal(t, "Back", loc.T(MsgFooterBack))
	assert.Equal(t, "Navigate", loc.T(MsgFooterNavigate))
}

func TestLocalizerItalian(t *testing.T) {
	loc := NewLocalizer("it")

	assert.Equal(t, "Seleziona", loc.T(MsgFooterSelect))
	assert.Equal(t, "Indietro", loc.T(MsgFooterBack))
}

func TestLocalizerFallsBackToEnglish(t *testing.T) {
	loc := NewLocalizer("de")

	assert.Equal(t, "Select", loc.T(MsgFooterSelect))
}

func TestLocalizerUnknownIDReturnsID(t *testing.T) {
	loc := NewLocalizer()

	assert.Equal(t, "NoSuchMessage", loc.T("NoSuchMessage"))
}
