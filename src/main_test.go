package main

import (
	"testing"

	"NoResultsReport/src/config"
	"NoResultsReport/src/model"
)

// 仓库自带的配置文件必须能被正常加载
func TestShippedConfig(t *testing.T) {
	cfg, rcfg, err := config.LoadConfig("../config", "config.json", "reportconfig.json")
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}

	if cfg.InputPath == "" || cfg.ExportDir == "" || cfg.ChartDir == "" {
		t.Errorf("config paths incomplete: %+v", cfg)
	}
	for _, kind := range model.SummaryKinds {
		if rcfg.GetCSVFile(string(kind)) == "" {
			t.Errorf("no csv file for %s", kind)
		}
		if rcfg.GetChartFile(string(kind)) == "" {
			t.Errorf("no chart file for %s", kind)
		}
	}
	if rcfg.GetCountColumn() != model.DefaultCountColumn {
		t.Errorf("count column = %q", rcfg.GetCountColumn())
	}
}
