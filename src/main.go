package main

import (
	"fmt"
	"log"
	"os"

	"NoResultsReport/src/app"
	"NoResultsReport/src/config"
	"NoResultsReport/src/storage"
)

func main() {
	jsonFolder := "./config"
	jsonFile := "config.json"
	reportJsonFile := "reportconfig.json"

	// 缺少的配置文件使用内置默认值；文件存在但无法解析时直接退出
	cfg, rcfg, err := config.LoadConfig(jsonFolder, jsonFile, reportJsonFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "加载配置失败:", err)
		os.Exit(1)
	}

	// 初始化日志系统
	logger, err := storage.NewLogger(cfg.LogName, cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Close()

	logger.Info("开始生成无结果搜索报表", "input", cfg.InputPath, "on_malformed", cfg.OnMalformed)

	result, err := app.NewReport(cfg, rcfg, logger, os.Stdout).Run()
	if err != nil {
		logger.Error("报表生成失败", "error", err)
		logger.Close()
		os.Exit(1)
	}

	logger.Info("报表生成完成",
		"total", result.Total,
		"skipped", result.Skipped,
		"csv_files", len(result.CSVFiles),
		"charts", len(result.Charts))
}
