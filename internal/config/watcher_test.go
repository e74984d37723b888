package config

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestWatcherPublishesThemeChange(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := writeConfig(t, "theme: dark\n")
	w, err := NewWatcher(path, true, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer w.Stop()

	require.NoError(t, w.Start(context.Background()))
	require.NoError(t, w.Start(context.Background()), "second start is a no-op")

	require.NoError(t, os.WriteFile(path, []byte("theme: light\n"), 0o644))

	select {
	case dark := <-w.Themes():
		assert.False(t, dark)
	case <-time.After(5 * time.Second):
		t.Fatal("no theme change published")
	}
}

func TestWatcherIgnoresUnchangedTheme(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := writeConfig(t, "theme: dark\n")
	w, err := NewWatcher(path, true, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer w.Stop()
	require.NoError(t, w.Start(context.Background()))

	require.NoError(t, os.WriteFile(path, []byte("theme: dark\nseed: 4\n"), 0o644))

	select {
	case dark := <-w.Themes():
		t.Fatalf("unexpected theme change to dark=%v", dark)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := NewWatcher(writeConfig(t, "theme: dark\n"), true, nil)
	require.NoError(t, err)

	w.Stop()
	assert.NotPanics(t, w.Stop)
	require.NoError(t, w.Start(context.Background()), "start after stop does nothing")
}

func TestWatcherStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := NewWatcher(writeConfig(t, "theme: dark\n"), true, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	cancel()
	w.Stop()
}
