package utils

import (
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/xuri/excelize/v2"
)

// Sheet 工作簿中的一个工作表
type Sheet struct {
	Name string
	DF   dataframe.DataFrame
}

func Contains[T comparable](slice []T, item T) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}

// 辅助函数：判断DataFrame是否有某列
func HasColumn(df dataframe.DataFrame, name string) bool {
	return Contains(df.Names(), name)
}

// EnsureDir 确保目录存在
func EnsureDir(dirPath string) error {
	if info, err := os.Stat(dirPath); err == nil {
		if info.IsDir() {
			return nil
		}
		return fmt.Errorf("%s exists but is not a directory", dirPath)
	}
	return os.MkdirAll(dirPath, 0755)
}

// SaveSheets 将多个 DataFrame 依次写入同一个 xlsx 文件，每个一张工作表
func SaveSheets(filePath string, sheets []Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("没有需要保存的工作表")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		// 新文件自带 Sheet1，第一张表直接改名
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return fmt.Errorf("重命名工作表失败: %w", err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("创建工作表 %s 失败: %w", sheet.Name, err)
		}

		if err := writeSheet(f, sheet.Name, sheet.DF); err != nil {
			return err
		}
	}

	// 保存文件
	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("保存Excel文件失败: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheetName string, df dataframe.DataFrame) error {
	if df.Err != nil {
		return fmt.Errorf("工作表 %s 数据无效: %w", sheetName, df.Err)
	}

	// 写入列名
	colNames := df.Names()
	for i, name := range colNames {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return err
		}
	}

	// 写入数据
	for colIdx, colName := range colNames {
		col := df.Col(colName)
		for rowIdx := 0; rowIdx < df.Nrow(); rowIdx++ {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheetName, cell, col.Val(rowIdx)); err != nil {
				return err
			}
		}
	}
	return nil
}
