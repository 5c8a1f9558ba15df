package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFilename(t *testing.T) {
	got := normalizeFilename("Summer Promo (final).mp4")
	assert.True(t, strings.HasPrefix(got, "Summer_Promo_final_"))
	assert.True(t, strings.HasSuffix(got, ".mp4"))
	assert.NotContains(t, got, " ")
	assert.NotContains(t, got, "(")

	// nothing usable left after cleaning
	got = normalizeFilename("@#$%.png")
	assert.True(t, strings.HasPrefix(got, "creative_"))
	assert.True(t, strings.HasSuffix(got, ".png"))
}

func TestGetContentType(t *testing.T) {
	assert.Equal(t, "image/png", getContentType("banner.PNG"))
	assert.Equal(t, "video/mp4", getContentType("spot.mp4"))
	assert.Equal(t, "application/octet-stream", getContentType("mystery.bin"))
}
