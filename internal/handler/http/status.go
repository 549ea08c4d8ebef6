package http

import (
	"net/http"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/utils"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// status answers the liveness probe.
func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.StatusResponse{Status: "Ok"}, http.StatusOK)
}

// health reports collaborator reachability plus a snapshot of the serving
// process. Any unreachable collaborator degrades the overall status and the
// response code becomes 503 so load balancers can act on it.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	response := models.HealthResponse{Status: "ok", Database: "ok", Media: "ok"}
	statusCode := http.StatusOK

	if err := h.db.Health(ctx); err != nil {
		log.Err(err).Msg("database health check failed")
		response.Database = "unreachable"
		response.Status = "degraded"
		statusCode = http.StatusServiceUnavailable
	}

	if err := h.media.Healthy(ctx); err != nil {
		log.Err(err).Msg("media store health check failed")
		response.Media = "unreachable"
		response.Status = "degraded"
		statusCode = http.StatusServiceUnavailable
	}

	response.Process = processMetrics()

	utils.WriteJSON(w, response, statusCode)
}

// processMetrics samples the serving process from the host process table.
// Metrics the platform cannot provide stay zero; a missing process entry
// never fails the probe.
func processMetrics() *models.ProcessMetrics {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil
	}

	metrics := &models.ProcessMetrics{PID: proc.Pid}

	if cpu, err := proc.CPUPercent(); err == nil {
		metrics.CPUPercent = cpu
	}
	if mem, err := proc.MemoryInfo(); err == nil && mem != nil {
		metrics.MemoryRSS = mem.RSS
	}
	if memPercent, err := proc.MemoryPercent(); err == nil {
		metrics.MemoryPercent = memPercent
	}
	if threads, err := proc.NumThreads(); err == nil {
		metrics.NumThreads = threads
	}
	if createdMs, err := proc.CreateTime(); err == nil && createdMs > 0 {
		metrics.UptimeSeconds = int64(time.Since(time.UnixMilli(createdMs)).Seconds())
	}

	return metrics
}
