package shared

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := LogFlags{JSONLogs: true}.Zerolog(&buf)
	logger.Debug().Msg("hidden")
	logger.Info().Int("rounds", 3).Msg("done")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "done", entry["message"])
	assert.EqualValues(t, 3, entry["rounds"])
}

func TestCharmLevels(t *testing.T) {
	var buf bytes.Buffer
	LogFlags{}.Charm(&buf).Debug("hidden")
	assert.Empty(t, buf.String())

	LogFlags{Debug: true}.Charm(&buf).Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}
