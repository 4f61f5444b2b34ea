package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog_Level(t *testing.T) {
	ctx := context.Background()
	buf := &bytes.Buffer{}
	log := New("executor", LevelWarning, buf)

	log.Debug(ctx, "debug entry")
	log.Info(ctx, "info entry")
	assert.Empty(t, buf.String())

	log.Warning(ctx, "retrying fetch")
	log.Error(ctx, errors.New("fetch failed"))
	out := buf.String()
	assert.Contains(t, out, "WARNING [executor] retrying fetch")
	assert.Contains(t, out, "ERROR [executor] fetch failed")
}

func TestLog_Logger(t *testing.T) {
	buf := &bytes.Buffer{}
	child := New("resilient", LevelDebug, buf).Logger("cache")
	child.Debug(context.Background(), map[string]int{"entries": 2})
	assert.Contains(t, buf.String(), `DEBUG [resilient.cache] {"entries":2}`)
}

func TestParseLevel(t *testing.T) {
	var useCases = []struct {
		name   string
		expect Level
	}{
		{name: "debug", expect: LevelDebug},
		{name: "WARN", expect: LevelWarning},
		{name: " error ", expect: LevelError},
		{name: "off", expect: LevelOff},
		{name: "", expect: LevelInfo},
		{name: "verbose", expect: LevelInfo},
	}
	for _, useCase := range useCases {
		assert.Equal(t, useCase.expect, ParseLevel(useCase.name), useCase.name)
	}
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Logger("x").Error(context.Background(), "ignored")
	})
}
