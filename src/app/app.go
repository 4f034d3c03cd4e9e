package app

import (
	"fmt"
	"io"
	"time"

	"NoResultsReport/src/config"
	"NoResultsReport/src/datasource/file"
	"NoResultsReport/src/export"
	"NoResultsReport/src/model"
	"NoResultsReport/src/processor"
	"NoResultsReport/src/storage"
)

const metricsNamespace = "noresults_report"

// Report 一次完整的报表运行：加载 → 展平 → 汇总 → 输出
type Report struct {
	cfg     *config.Config
	rcfg    *config.ReportConfig
	logger  *storage.Logger
	out     io.Writer
	metrics *storage.Metrics
}

// Result 运行结果，供调用方和测试检查
type Result struct {
	Total     int
	Skipped   int
	Summaries model.Summaries
	CSVFiles  []string
	Charts    []string
}

func NewReport(cfg *config.Config, rcfg *config.ReportConfig, logger *storage.Logger, out io.Writer) *Report {
	return &Report{
		cfg:     cfg,
		rcfg:    rcfg,
		logger:  logger,
		out:     out,
		metrics: storage.NewMetrics(metricsNamespace),
	}
}

// Run 各阶段只执行一次；加载失败降级为空数据集，
// 展平中止或任一输出写入失败都返回错误
func (r *Report) Run() (*Result, error) {
	policy, err := processor.ParsePolicy(r.cfg.OnMalformed)
	if err != nil {
		return nil, err
	}
	countCol := r.rcfg.GetCountColumn()

	// 1. 加载
	t := time.Now()
	records := file.NewReader(r.out, r.logger).Load(r.cfg.InputPath)
	r.metrics.RecordsLoaded.Add(float64(len(records)))
	r.metrics.ObserveStage("load", time.Since(t).Seconds())

	// 2. 展平
	t = time.Now()
	flat, err := processor.Flatten(records, policy, r.logger)
	if err != nil {
		r.finish(false)
		return nil, err
	}
	r.metrics.RecordsSkipped.Add(float64(len(flat.Skipped)))
	r.metrics.ObserveStage("flatten", time.Since(t).Seconds())

	// 3. 汇总
	t = time.Now()
	summaries := processor.Aggregate(flat.Table)
	for _, kind := range model.SummaryKinds {
		r.metrics.SummaryRows.WithLabelValues(string(kind)).Set(float64(summaries.Rows(kind)))
	}
	r.metrics.ObserveStage("aggregate", time.Since(t).Seconds())

	result := &Result{
		Total:     flat.Table.Len(),
		Skipped:   len(flat.Skipped),
		Summaries: summaries,
	}

	// 4. 输出
	t = time.Now()
	export.PrintSummaries(r.out, summaries, result.Total, result.Skipped, countCol)

	result.CSVFiles, err = export.WriteCSVs(summaries, countCol, func(kind model.SummaryKind) string {
		return r.cfg.CSVPath(r.rcfg, string(kind))
	})
	if err != nil {
		r.finish(false)
		return result, err
	}
	fmt.Fprintln(r.out, "Summaries exported to CSV files.")
	r.logger.Info("CSV导出完成", "files", result.CSVFiles)

	if r.cfg.Workbook != "" {
		if err := export.WriteWorkbook(r.cfg.Workbook, summaries, flat.Table, countCol); err != nil {
			r.finish(false)
			return result, err
		}
		r.logger.Info("汇总工作簿已保存", "path", r.cfg.Workbook)
	}

	renderer := export.NewChartRenderer(r.logger)
	result.Charts, err = renderer.RenderAll(summaries, func(kind model.SummaryKind) string {
		return r.cfg.ChartPath(r.rcfg, string(kind))
	})
	if err != nil {
		r.finish(false)
		return result, err
	}
	r.metrics.ObserveStage("report", time.Since(t).Seconds())

	if err := r.finish(true); err != nil {
		return result, err
	}
	return result, nil
}

// finish 写出指标文件(若已配置)
func (r *Report) finish(success bool) error {
	if success {
		r.metrics.LastRunSuccess.Set(1)
	} else {
		r.metrics.LastRunSuccess.Set(0)
	}
	if r.cfg.MetricsFile == "" {
		return nil
	}
	if err := r.metrics.WriteToTextfile(r.cfg.MetricsFile); err != nil {
		r.logger.Error("写入指标文件失败", "path", r.cfg.MetricsFile, "error", err)
		return err
	}
	return nil
}
