package server

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/process"
	"go.uber.org/zap"
)

// Status is the /api/status payload.
type Status struct {
	ContentVersion int     `json:"contentVersion"`
	Portfolio      int     `json:"portfolio"`
	UptimeSeconds  float64 `json:"uptimeSeconds"`
	Goroutines     int     `json:"goroutines"`
	// RSSBytes and CPUPercent are omitted when the platform does not
	// report them.
	RSSBytes   uint64  `json:"rssBytes,omitempty"`
	CPUPercent float64 `json:"cpuPercent,omitempty"`
}

var started = time.Now()

// handleStatus reports the served content version and process resource
// usage.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	st := Status{
		ContentVersion: s.store.Version(),
		Portfolio:      len(s.store.Site().Portfolio),
		UptimeSeconds:  time.Since(started).Seconds(),
		Goroutines:     runtime.NumGoroutine(),
	}

	proc, err := process.NewProcessWithContext(r.Context(), int32(os.Getpid()))
	if err != nil {
		s.log.Debug("process stats unavailable", zap.Error(err))
		s.writeJSON(w, st)
		return
	}
	if mem, err := proc.MemoryInfoWithContext(r.Context()); err == nil {
		st.RSSBytes = mem.RSS
	}
	if cpu, err := proc.CPUPercentWithContext(r.Context()); err == nil {
		st.CPUPercent = cpu
	}
	s.writeJSON(w, st)
}
