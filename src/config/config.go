package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

// Config 结构体定义了应用程序的配置结构
type Config struct {
	InputPath   string `json:"input_path"`   // 无结果搜索事件 JSON 文件
	ExportDir   string `json:"export_dir"`   // CSV 输出目录
	ChartDir    string `json:"chart_dir"`    // 图表输出目录
	Workbook    string `json:"workbook"`     // 汇总 xlsx 文件，为空时不生成
	MetricsFile string `json:"metrics_file"` // 指标文件，为空时不生成
	LogName     string `json:"log_name"`
	LogLevel    string `json:"log_level"`
	OnMalformed string `json:"on_malformed"` // skip 或 abort
}

// ReportConfig 各汇总表的输出文件名
type ReportConfig struct {
	CSVFiles    map[string]string `json:"csv_files"`
	ChartFiles  map[string]string `json:"chart_files"`
	CountColumn string            `json:"count_column"`
}

var (
	once                 sync.Once
	instance             *Config
	reportConfigInstance *ReportConfig
	mu                   sync.RWMutex
)

var defaultCSVFiles = map[string]string{
	"airport":      "airport_breakdown_report.csv",
	"date":         "date_breakdown_report.csv",
	"passenger":    "passenger_breakdown_report.csv",
	"ticket_class": "ticket_class_breakdown_report.csv",
}

var defaultChartFiles = map[string]string{
	"airport":      "airport_breakdown_chart.png",
	"date":         "date_breakdown_chart.png",
	"passenger":    "passenger_breakdown_chart.png",
	"ticket_class": "ticket_class_breakdown_chart.png",
}

// Default 返回内置的默认配置
func Default() (*Config, *ReportConfig) {
	cfg := &Config{
		InputPath:   "data/FlightSearchRequestNoItinerary.json",
		ExportDir:   "exports",
		ChartDir:    filepath.Join("exports", "seaborn-charts"),
		LogName:     "app.log",
		LogLevel:    "info",
		OnMalformed: "skip",
	}
	rcfg := &ReportConfig{
		CSVFiles:    map[string]string{},
		ChartFiles:  map[string]string{},
		CountColumn: "no_results_count",
	}
	return cfg, rcfg
}

func LoadConfig(jsonFolder, jsonFile, reportJsonFile string) (*Config, *ReportConfig, error) {
	var err error
	once.Do(func() {
		instance, reportConfigInstance, err = loadConfigs(jsonFolder, jsonFile, reportJsonFile)
		if err == nil {
			ApplyEnv(instance)
		}
	})
	return instance, reportConfigInstance, err
}

func loadConfigs(jsonFolder, jsonFile, reportJsonFile string) (*Config, *ReportConfig, error) {
	configFile := filepath.Join(jsonFolder, jsonFile)
	reportConfigFile := filepath.Join(jsonFolder, reportJsonFile)

	configData, err := readFile(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	reportConfigData, err := readFile(reportConfigFile)
	if err != nil {
		return nil, nil, fmt.Errorf("读取报表配置文件失败: %w", err)
	}

	cfgChan := make(chan *Config, 1)
	rcfgChan := make(chan *ReportConfig, 1)
	errChan := make(chan error, 2)

	go parseConfig(configData, cfgChan, errChan)
	go parseReportConfig(reportConfigData, rcfgChan, errChan)

	return waitForResults(cfgChan, rcfgChan, errChan)
}

// 文件不存在时返回 nil，由解析函数使用默认值；其余读取错误照常返回
func readFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if errors.Is(err, os.ErrNotExist) {
		fmt.Printf("配置文件 %s 不存在，使用默认配置\n", filePath)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("无法读取文件 %s: %w", filePath, err)
	}
	return data, nil
}

// 未出现在 JSON 中的字段保留默认值
func parseConfig(data []byte, resultChan chan<- *Config, errChan chan<- error) {
	cfg, _ := Default()
	if data == nil {
		resultChan <- cfg
		return
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		errChan <- fmt.Errorf("解析Config失败: %w", err)
		return
	}
	resultChan <- cfg
}

func parseReportConfig(data []byte, resultChan chan<- *ReportConfig, errChan chan<- error) {
	_, rcfg := Default()
	if data == nil {
		resultChan <- rcfg
		return
	}
	if err := json.Unmarshal(data, rcfg); err != nil {
		errChan <- fmt.Errorf("解析ReportConfig失败: %w", err)
		return
	}
	resultChan <- rcfg
}

func waitForResults(
	cfgChan <-chan *Config,
	rcfgChan <-chan *ReportConfig,
	errChan <-chan error,
) (*Config, *ReportConfig, error) {
	var (
		cfg    *Config
		rcfg   *ReportConfig
		errors []error
	)

	for i := 0; i < 2; i++ {
		select {
		case c := <-cfgChan:
			cfg = c
		case r := <-rcfgChan:
			rcfg = r
		case err := <-errChan:
			errors = append(errors, err)
		}
	}

	if len(errors) > 0 {
		return nil, nil, combineErrors(errors)
	}

	if cfg == nil || rcfg == nil {
		return nil, nil, fmt.Errorf("部分配置未加载成功")
	}

	return cfg, rcfg, nil
}

func combineErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	msg := "配置加载遇到多个错误:"
	for _, err := range errs {
		msg = fmt.Sprintf("%s\n- %v", msg, err)
	}
	return fmt.Errorf("%s", msg)
}

// ApplyEnv 读取 .env(若存在)和环境变量，覆盖对应配置项
func ApplyEnv(cfg *Config) {
	_ = godotenv.Load()

	overrides := map[string]*string{
		"REPORT_INPUT_PATH":   &cfg.InputPath,
		"REPORT_EXPORT_DIR":   &cfg.ExportDir,
		"REPORT_CHART_DIR":    &cfg.ChartDir,
		"REPORT_WORKBOOK":     &cfg.Workbook,
		"REPORT_METRICS_FILE": &cfg.MetricsFile,
		"REPORT_LOG_NAME":     &cfg.LogName,
		"REPORT_LOG_LEVEL":    &cfg.LogLevel,
		"REPORT_ON_MALFORMED": &cfg.OnMalformed,
	}
	for key, field := range overrides {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*field = v
		}
	}
}

// CSVPath 返回指定汇总表的 CSV 路径
func (c *Config) CSVPath(rc *ReportConfig, kind string) string {
	return filepath.Join(c.ExportDir, rc.GetCSVFile(kind))
}

// ChartPath 返回指定汇总表的图表路径
func (c *Config) ChartPath(rc *ReportConfig, kind string) string {
	return filepath.Join(c.ChartDir, rc.GetChartFile(kind))
}

func (rc *ReportConfig) GetCSVFile(kind string) string {
	mu.RLock()
	defer mu.RUnlock()
	if name := rc.CSVFiles[kind]; name != "" {
		return name
	}
	return defaultCSVFiles[kind]
}

func (rc *ReportConfig) SetCSVFile(kind, name string) {
	mu.Lock()
	defer mu.Unlock()
	if rc.CSVFiles == nil {
		rc.CSVFiles = map[string]string{}
	}
	rc.CSVFiles[kind] = name
}

func (rc *ReportConfig) GetChartFile(kind string) string {
	mu.RLock()
	defer mu.RUnlock()
	if name := rc.ChartFiles[kind]; name != "" {
		return name
	}
	return defaultChartFiles[kind]
}

func (rc *ReportConfig) SetChartFile(kind, name string) {
	mu.Lock()
	defer mu.Unlock()
	if rc.ChartFiles == nil {
		rc.ChartFiles = map[string]string{}
	}
	rc.ChartFiles[kind] = name
}

func (rc *ReportConfig) GetCountColumn() string {
	mu.RLock()
	defer mu.RUnlock()
	if rc.CountColumn == "" {
		return "no_results_count"
	}
	return rc.CountColumn
}
