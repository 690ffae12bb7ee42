package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesRendered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "galaxykd_frames_rendered_total",
		Help: "Total number of frames presented",
	})
	FrameDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "galaxykd_frame_duration_seconds",
		Help:    "Time between consecutive presented frames",
		Buckets: []float64{.001, .004, .008, .0167, .033, .05, .1, .25},
	})
	DrawCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "galaxykd_draw_calls_total",
		Help: "Total number of draw calls issued, by program",
	}, []string{"program"})
	BufferUploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "galaxykd_buffer_uploads_total",
		Help: "Total number of vertex buffer uploads, by buffer",
	}, []string{"buffer"})
	BufferUploadBytes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "galaxykd_buffer_upload_bytes_total",
		Help: "Total number of bytes uploaded into vertex buffers, by buffer",
	}, []string{"buffer"})
	ShaderCompileFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "galaxykd_shader_compile_failures_total",
		Help: "Total number of shader stages that failed to compile, by stage",
	}, []string{"stage"})
	ProgramLinkFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "galaxykd_program_link_failures_total",
		Help: "Total number of programs that failed to link, by program",
	}, []string{"program"})
	ViewportResizes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "galaxykd_viewport_resizes_total",
		Help: "Total number of viewport resizes caused by window size changes",
	})
	ViewportWidth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "galaxykd_viewport_width_pixels",
		Help: "Current viewport width",
	})
	ViewportHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "galaxykd_viewport_height_pixels",
		Help: "Current viewport height",
	})
)

// BufferMetrics bundles the per-buffer counters so the render loop doesn't
// look up label values on every upload.
type BufferMetrics struct {
	Uploads prometheus.Counter
	Bytes   prometheus.Counter
}

func NewBufferMetrics(name string) BufferMetrics {
	b := BufferMetrics{
		Uploads: BufferUploads.WithLabelValues(name),
		Bytes:   BufferUploadBytes.WithLabelValues(name),
	}
	b.Uploads.Add(0)
	b.Bytes.Add(0)
	return b
}

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
