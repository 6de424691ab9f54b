package log

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetDebug(t *testing.T) {
	t.Helper()
	DebugEnabled = false
	DebugLog = nil
	profiler.Reset()
	t.Cleanup(func() {
		CloseDebug()
		DebugEnabled = false
		DebugLog = nil
	})
}

func TestDebugDisabledByDefault(t *testing.T) {
	resetDebug(t)
	t.Setenv(debugEnvVar, "")

	InitDebug()

	assert.False(t, DebugEnabled)
	assert.NotNil(t, DebugLog, "disabled debug log should discard, not be nil")
}

func TestDebugEnabledWithEnvVar(t *testing.T) {
	resetDebug(t)
	t.Setenv(debugEnvVar, "1")

	InitDebug()

	assert.True(t, DebugEnabled)
	assert.NotNil(t, DebugLog)
}

func TestTraceHelpersWithoutLogger(t *testing.T) {
	resetDebug(t)

	for _, enabled := range []bool{false, true} {
		DebugEnabled = enabled
		DebugLog = nil
		assert.NotPanics(t, func() {
			Debug("test %s", "arg")
			LayoutTrace("test %s", "arg")
			RenderTrace("banner", "test %s", "arg")
			KeyTrace("test %s", "arg")
			PerformanceWarning("test %s", "arg")
		})
	}
}

func TestRenderProfiler(t *testing.T) {
	t.Run("track is a no-op when disabled", func(t *testing.T) {
		resetDebug(t)

		done := profiler.Track("banner")
		done()

		assert.Empty(t, profiler.components)
		assert.Empty(t, profiler.Summary())
	})

	t.Run("track records when enabled", func(t *testing.T) {
		resetDebug(t)
		DebugEnabled = true

		done := profiler.Track("banner")
		time.Sleep(time.Millisecond)
		done()
		profiler.Track("banner")()

		m := profiler.components["banner"]
		require.NotNil(t, m)
		assert.Equal(t, int64(2), m.Renders)
		assert.GreaterOrEqual(t, m.TotalTime, time.Millisecond)
		assert.GreaterOrEqual(t, m.MaxTime, time.Millisecond)
	})

	t.Run("frames accumulate", func(t *testing.T) {
		resetDebug(t)
		DebugEnabled = true

		profiler.Frame(10 * time.Millisecond)
		profiler.Frame(60 * time.Millisecond)

		assert.Equal(t, int64(2), profiler.frames)
		assert.Equal(t, 70*time.Millisecond, profiler.frameTime)
		assert.Equal(t, 60*time.Millisecond, profiler.slowest)
	})

	t.Run("summary lists components", func(t *testing.T) {
		resetDebug(t)
		DebugEnabled = true

		profiler.Frame(10 * time.Millisecond)
		profiler.Track("banner")()

		summary := profiler.Summary()
		assert.Contains(t, summary, "Render Profile")
		assert.Contains(t, summary, "frames: 1")
		assert.Contains(t, summary, "banner: renders=1")
	})
}
