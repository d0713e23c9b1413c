package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minutes-backend/internal/domains/minutes"
)

func TestRenderPDFWithFontFallback(t *testing.T) {
	// A missing font file falls back to the built-in Helvetica and
	// still produces a document.
	data, err := RenderPDF([]minutes.Minutes{exportRecord()}, "does-not-exist.ttf")
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRenderPDFOnePagePerMeeting(t *testing.T) {
	a := exportRecord()
	b := exportRecord()
	b.Date = "2024-04-01"

	one, err := RenderPDF([]minutes.Minutes{a}, "does-not-exist.ttf")
	require.NoError(t, err)
	two, err := RenderPDF([]minutes.Minutes{a, b}, "does-not-exist.ttf")
	require.NoError(t, err)

	assert.Contains(t, string(one), "/Count 1")
	assert.Contains(t, string(two), "/Count 2")
}

func TestRenderPDFUnreadableAttendees(t *testing.T) {
	rec := exportRecord()
	rec.AttendeeJSON = "{corrupt"

	data, err := RenderPDF([]minutes.Minutes{rec}, "does-not-exist.ttf")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
