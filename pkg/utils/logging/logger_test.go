package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/Kassiosky/ZabbixMonitor/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestParseLevel(t *testing.T) {
	level := gt.R1(logging.ParseLevel("debug")).NoError(t)
	gt.Equal(t, level, slog.LevelDebug)

	level = gt.R1(logging.ParseLevel("")).NoError(t)
	gt.Equal(t, level, slog.LevelInfo)

	level = gt.R1(logging.ParseLevel("WARNING")).NoError(t)
	gt.Equal(t, level, slog.LevelWarn)

	_, err := logging.ParseLevel("verbose")
	gt.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	format := gt.R1(logging.ParseFormat("json")).NoError(t)
	gt.Equal(t, format, logging.FormatJSON)

	format = gt.R1(logging.ParseFormat("")).NoError(t)
	gt.Equal(t, format, logging.FormatAuto)

	_, err := logging.ParseFormat("xml")
	gt.Error(t, err)
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(slog.LevelInfo, &buf, logging.FormatJSON)

	logger.Info("hello", "count", 3)
	logger.Debug("filtered out")

	var record map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	gt.Equal(t, record["msg"], "hello")
	gt.Equal[any](t, record["count"], float64(3))
}

func TestNewAutoFormatOnBuffer(t *testing.T) {
	// a plain buffer is not a terminal, auto must pick JSON
	var buf bytes.Buffer
	logger := logging.New(slog.LevelInfo, &buf, logging.FormatAuto)
	logger.Info("probe")

	var record map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	gt.Equal(t, record["msg"], "probe")
}
