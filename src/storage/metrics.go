package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics 单次运行的统计指标，使用独立的 registry
type Metrics struct {
	registry       *prometheus.Registry
	RecordsLoaded  prometheus.Counter
	RecordsSkipped prometheus.Counter
	SummaryRows    *prometheus.GaugeVec
	StageDuration  *prometheus.HistogramVec
	LastRunSuccess prometheus.Gauge
}

// NewMetrics creates run metrics under the given namespace
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RecordsLoaded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_loaded_total",
			Help:      "Raw search events read from the input file",
		}),
		RecordsSkipped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_skipped_total",
			Help:      "Search events dropped because required fields were missing",
		}),
		SummaryRows: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "summary_rows",
			Help:      "Rows in each summary table",
		}, []string{"summary"}),
		StageDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Time spent in each pipeline stage",
			Buckets:   prometheus.DefBuckets,
		}, []string{"stage"}),
		LastRunSuccess: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_success",
			Help:      "1 when the last report run completed",
		}),
	}
}

// ObserveStage 记录阶段耗时
func (m *Metrics) ObserveStage(stage string, seconds float64) {
	m.StageDuration.WithLabelValues(stage).Observe(seconds)
}

// WriteToTextfile 以 node_exporter textfile 格式写出指标
func (m *Metrics) WriteToTextfile(filename string) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("创建指标目录失败: %w", err)
		}
	}
	if err := prometheus.WriteToTextfile(filename, m.registry); err != nil {
		return fmt.Errorf("写入指标文件失败 %s: %w", filename, err)
	}
	return nil
}
