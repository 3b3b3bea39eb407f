package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelRouterSplitsByLevel(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger := slog.New(newLevelRouter(slog.LevelInfo, &stdout, &stderr))

	logger.Debug("hidden")
	logger.Info("started", "addr", ":8080")
	logger.Warn("slow request")
	logger.Error("failed", "error", "boom")

	assert.NotContains(t, stdout.String(), "hidden")
	assert.Contains(t, stdout.String(), "started")
	assert.Contains(t, stdout.String(), "slow request")
	assert.NotContains(t, stdout.String(), "failed")
	assert.Contains(t, stderr.String(), "failed")
	assert.NotContains(t, stderr.String(), "started")
}

func TestLevelRouterKeepsAttrs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger := slog.New(newLevelRouter(slog.LevelDebug, &stdout, &stderr)).With("component", "api")

	logger.Debug("visible")
	logger.Error("broken")

	assert.Contains(t, stdout.String(), "component=api")
	assert.Contains(t, stdout.String(), "visible")
	assert.Contains(t, stderr.String(), "component=api")
}
