// Package metrics provides Prometheus instrumentation for the grayknuth codec.
//
// Metrics:
//   - grayknuth_codec_operations_total{op,result} - encode/decode calls by outcome
//   - grayknuth_codec_input_bits{op} - payload length histogram
//   - grayknuth_codec_trajectory_position - selected step / (2n+1), encode only
//
// A nil *Recorder is valid and records nothing, so callers never branch on
// whether metrics are enabled.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/grayknuth/length"
)

const (
	namespace = "grayknuth"
	subsystem = "codec"

	// OpEncode labels encode operations.
	OpEncode = "encode"
	// OpDecode labels decode operations.
	OpDecode = "decode"
)

// Result is the outcome label of a codec operation.
type Result string

const (
	ResultOK              Result = "ok"
	ResultInvalidAlphabet Result = "invalid_alphabet"
	ResultMalformed       Result = "malformed"
	ResultError           Result = "error"
)

// Recorder holds the codec collectors.
type Recorder struct {
	Operations *prometheus.CounterVec
	InputBits  *prometheus.HistogramVec
	Trajectory prometheus.Histogram
}

// NewRecorder creates the collectors and registers them with reg.
// Panics on duplicate registration, like promauto.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		Operations: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "operations_total",
				Help:      "Total number of codec operations by outcome",
			},
			[]string{"op", "result"},
		),
		InputBits: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "input_bits",
				Help:      "Payload length in bits of successful codec operations",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
			},
			[]string{"op"},
		),
		Trajectory: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "trajectory_position",
				Help:      "Selected flip trajectory step as a fraction of the 2n+1 steps",
				Buckets:   prometheus.LinearBuckets(0.1, 0.1, 10),
			},
		),
	}
}

// ObserveEncode records one encode call. n and step are ignored unless res is ResultOK.
func (r *Recorder) ObserveEncode(n, step int, res Result) {
	if r == nil {
		return
	}
	r.Operations.WithLabelValues(OpEncode, string(res)).Inc()
	if res != ResultOK {
		return
	}
	r.InputBits.WithLabelValues(OpEncode).Observe(float64(n))
	r.Trajectory.Observe(float64(step) / float64(length.Steps(n)))
}

// ObserveDecode records one decode call. n is the recovered payload length.
func (r *Recorder) ObserveDecode(n int, res Result) {
	if r == nil {
		return
	}
	r.Operations.WithLabelValues(OpDecode, string(res)).Inc()
	if res == ResultOK {
		r.InputBits.WithLabelValues(OpDecode).Observe(float64(n))
	}
}

// WriteTextfile writes every metric gathered by g to path in the text
// exposition format, for the node exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
