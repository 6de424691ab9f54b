// Package log provides logging utilities including debug mode with render profiling.
// Enable debug mode by setting FLLVIDEO_DEBUG=1 environment variable.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Debug mode configuration
var (
	DebugEnabled bool
	DebugLog     *log.Logger
	debugLogFile *os.File
)

const debugEnvVar = "FLLVIDEO_DEBUG"

var debugLogFileName = filepath.Join(os.TempDir(), "fllvideo-debug.log")

// InitDebug initializes debug logging if FLLVIDEO_DEBUG=1 is set.
// Initialize calls it; call it directly only when Initialize is not used.
func InitDebug() {
	if os.Getenv(debugEnvVar) != "1" {
		// Initialize DebugLog as a no-op logger to prevent nil pointer panics
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugEnabled = true

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		if ErrorLog != nil {
			ErrorLog.Printf("could not open debug log file: %s", err)
		}
		// Fall back to no-op logger on error
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugLog = log.New(f, "DEBUG:", log.Ldate|log.Ltime|log.Lmicroseconds)
	debugLogFile = f

	DebugLog.Println("Debug mode enabled")
	DebugLog.Printf("Debug log: %s", debugLogFileName)
}

// CloseDebug closes the debug log file.
func CloseDebug() {
	if debugLogFile != nil {
		_ = debugLogFile.Close()
		debugLogFile = nil
		fmt.Fprintln(os.Stderr, "wrote debug logs to "+debugLogFileName)
	}
}

// Debug logs a debug message if debug mode is enabled.
func Debug(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf(format, v...)
	}
}

// SlowFrameThreshold is the frame time above which the watch screen logs a
// performance warning.
const SlowFrameThreshold = 50 * time.Millisecond

// RenderProfiler collects render timings of the watch screen.
type RenderProfiler struct {
	mu         sync.Mutex
	components map[string]*ComponentMetrics
	frames     int64
	frameTime  time.Duration
	slowest    time.Duration
}

// ComponentMetrics holds the timings recorded for one component.
type ComponentMetrics struct {
	Name      string
	Renders   int64
	TotalTime time.Duration
	MaxTime   time.Duration
}

var profiler = &RenderProfiler{components: make(map[string]*ComponentMetrics)}

// GetProfiler returns the global render profiler.
func GetProfiler() *RenderProfiler {
	return profiler
}

// Track starts timing a render of component. The returned func stops the
// timer; it is a no-op unless debug mode is enabled.
func (p *RenderProfiler) Track(component string) func() {
	if !DebugEnabled {
		return func() {}
	}
	start := time.Now()
	return func() {
		p.record(component, time.Since(start))
	}
}

func (p *RenderProfiler) record(component string, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, ok := p.components[component]
	if !ok {
		m = &ComponentMetrics{Name: component}
		p.components[component] = m
	}
	m.Renders++
	m.TotalTime += elapsed
	if elapsed > m.MaxTime {
		m.MaxTime = elapsed
	}
}

// Frame records the time taken to produce one full screen.
func (p *RenderProfiler) Frame(elapsed time.Duration) {
	if !DebugEnabled {
		return
	}

	p.mu.Lock()
	p.frames++
	p.frameTime += elapsed
	if elapsed > p.slowest {
		p.slowest = elapsed
	}
	p.mu.Unlock()

	if elapsed > SlowFrameThreshold {
		PerformanceWarning("slow frame: %v", elapsed)
	}
}

// Summary formats the collected timings, slowest component first.
func (p *RenderProfiler) Summary() string {
	if !DebugEnabled {
		return ""
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var sb strings.Builder
	sb.WriteString("=== Render Profile ===\n")
	fmt.Fprintf(&sb, "frames: %d\n", p.frames)
	if p.frames > 0 {
		fmt.Fprintf(&sb, "avg frame: %v slowest: %v\n", p.frameTime/time.Duration(p.frames), p.slowest)
	}

	sorted := make([]*ComponentMetrics, 0, len(p.components))
	for _, m := range p.components {
		sorted = append(sorted, m)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].TotalTime > sorted[j].TotalTime
	})
	for _, m := range sorted {
		fmt.Fprintf(&sb, "  %s: renders=%d total=%v avg=%v max=%v\n",
			m.Name, m.Renders, m.TotalTime, m.TotalTime/time.Duration(m.Renders), m.MaxTime)
	}
	return sb.String()
}

// LogSummary writes Summary to the debug log.
func (p *RenderProfiler) LogSummary() {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Print(p.Summary())
	}
}

// Reset clears all profiling data.
func (p *RenderProfiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.components = make(map[string]*ComponentMetrics)
	p.frames = 0
	p.frameTime = 0
	p.slowest = 0
}

// LayoutTrace logs layout computation events.
func LayoutTrace(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[LAYOUT] "+format, v...)
	}
}

// RenderTrace logs render events.
func RenderTrace(component, format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		msg := fmt.Sprintf(format, v...)
		DebugLog.Printf("[RENDER:%s] %s", component, msg)
	}
}

// KeyTrace logs key handling events.
func KeyTrace(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[KEY] "+format, v...)
	}
}

// PerformanceWarning logs performance-related warnings.
func PerformanceWarning(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[PERF WARNING] "+format, v...)
	}
}
