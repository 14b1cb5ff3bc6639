package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat_DecorateText(t *testing.T) {
	defer SetColor(true)

	SetColor(true)
	assert.Equal(t, SuccessColor+"done"+DefaultColor, DecorateText("done", SuccessMessage))
	assert.Equal(t, ErrorColor+"failed"+DefaultColor, DecorateText("failed", ErrorMessage))

	SetColor(false)
	assert.Equal(t, "done", DecorateText("done", SuccessMessage))
}

func TestFormat_FormatTime(t *testing.T) {
	assert.Equal(t, "250ms", FormatTime(250*time.Millisecond))
	assert.Equal(t, "1.50s", FormatTime(1500*time.Millisecond))
	assert.Equal(t, "2m 5.00s", FormatTime(125*time.Second))
}

func TestMath_Abs(t *testing.T) {
	assert.Equal(t, 4, Abs(-4))
	assert.Equal(t, 1.5, Abs(-1.5))
	assert.Equal(t, 4, Abs(4))
}
