package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadConfigs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.json", `{
		"input_path": "data/search.json",
		"export_dir": "out",
		"on_malformed": "abort"
	}`)
	writeFile(t, dir, "reportconfig.json", `{
		"csv_files": {"airport": "airports.csv"},
		"count_column": "searches"
	}`)

	cfg, rcfg, err := loadConfigs(dir, "config.json", "reportconfig.json")
	if err != nil {
		t.Fatalf("loadConfigs: %v", err)
	}

	if cfg.InputPath != "data/search.json" || cfg.ExportDir != "out" || cfg.OnMalformed != "abort" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	// 未配置的字段保留默认值
	if cfg.ChartDir != filepath.Join("exports", "seaborn-charts") {
		t.Errorf("chart dir = %q, want default", cfg.ChartDir)
	}

	if got := cfg.CSVPath(rcfg, "airport"); got != filepath.Join("out", "airports.csv") {
		t.Errorf("airport csv = %q", got)
	}
	if got := cfg.CSVPath(rcfg, "date"); got != filepath.Join("out", "date_breakdown_report.csv") {
		t.Errorf("date csv = %q", got)
	}
	if got := cfg.ChartPath(rcfg, "ticket_class"); got != filepath.Join("exports", "seaborn-charts", "ticket_class_breakdown_chart.png") {
		t.Errorf("ticket class chart = %q", got)
	}
	if got := rcfg.GetCountColumn(); got != "searches" {
		t.Errorf("count column = %q", got)
	}
}

func TestLoadConfigsCombinesErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.json", `{"input_path": `)
	writeFile(t, dir, "reportconfig.json", `[]`)

	_, _, err := loadConfigs(dir, "config.json", "reportconfig.json")
	if err == nil {
		t.Fatal("expected error for malformed config files")
	}
	if !strings.Contains(err.Error(), "Config") || !strings.Contains(err.Error(), "ReportConfig") {
		t.Errorf("error should mention both files: %v", err)
	}
}

func TestLoadConfigsMissingFilesUseDefaults(t *testing.T) {
	cfg, rcfg, err := loadConfigs(t.TempDir(), "config.json", "reportconfig.json")
	if err != nil {
		t.Fatalf("missing files should fall back to defaults: %v", err)
	}
	want, _ := Default()
	if *cfg != *want {
		t.Errorf("config = %+v, want %+v", cfg, want)
	}
	if rcfg.GetCountColumn() != "no_results_count" {
		t.Errorf("count column = %q", rcfg.GetCountColumn())
	}
}

// 只缺一个文件时，另一个文件照常解析
func TestLoadConfigsOneFileMissing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.json", `{"on_malformed": "abort"}`)

	cfg, rcfg, err := loadConfigs(dir, "config.json", "reportconfig.json")
	if err != nil {
		t.Fatalf("loadConfigs: %v", err)
	}
	if cfg.OnMalformed != "abort" {
		t.Errorf("on_malformed = %q, want abort", cfg.OnMalformed)
	}
	if rcfg.GetCSVFile("airport") != "airport_breakdown_report.csv" {
		t.Errorf("airport csv = %q", rcfg.GetCSVFile("airport"))
	}
}

// 文件存在但内容错误时不能回退到默认值
func TestLoadConfigsMalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.json", `{"on_malformed": "abort",`)

	cfg, _, err := loadConfigs(dir, "config.json", "reportconfig.json")
	if err == nil {
		t.Fatalf("expected parse error, got config %+v", cfg)
	}
	if !strings.Contains(err.Error(), "解析Config失败") {
		t.Errorf("error = %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("REPORT_INPUT_PATH", "/tmp/in.json")
	t.Setenv("REPORT_ON_MALFORMED", "abort")
	t.Setenv("REPORT_CHART_DIR", "")

	cfg, _ := Default()
	ApplyEnv(cfg)

	if cfg.InputPath != "/tmp/in.json" {
		t.Errorf("input path = %q", cfg.InputPath)
	}
	if cfg.OnMalformed != "abort" {
		t.Errorf("on_malformed = %q", cfg.OnMalformed)
	}
	if cfg.ChartDir != filepath.Join("exports", "seaborn-charts") {
		t.Errorf("empty env value should not override chart dir, got %q", cfg.ChartDir)
	}
}

func TestReportConfigSetters(t *testing.T) {
	rcfg := &ReportConfig{}
	rcfg.SetCSVFile("date", "dates.csv")
	rcfg.SetChartFile("date", "dates.png")

	if rcfg.GetCSVFile("date") != "dates.csv" || rcfg.GetChartFile("date") != "dates.png" {
		t.Errorf("setters not applied: %+v", rcfg)
	}
	if rcfg.GetCountColumn() != "no_results_count" {
		t.Errorf("default count column = %q", rcfg.GetCountColumn())
	}
}
