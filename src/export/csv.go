package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"

	"NoResultsReport/src/model"
	"NoResultsReport/src/utils"
)

// PathFunc 根据汇总表类型返回输出文件路径
type PathFunc func(kind model.SummaryKind) string

// WriteCSVs 每张汇总表写一个 CSV：表头 + 数据行，不含索引列
// 计数列名与分组列重名时 gota 会改写列名，视为配置错误
func WriteCSVs(s model.Summaries, countCol string, pathFor PathFunc) ([]string, error) {
	if countCol == "" {
		countCol = model.DefaultCountColumn
	}
	written := make([]string, 0, len(model.SummaryKinds))
	for _, kind := range model.SummaryKinds {
		path := pathFor(kind)
		df := s.DataFrame(kind, countCol)
		if df.Err == nil && !utils.HasColumn(df, countCol) {
			return written, fmt.Errorf("计数列 %q 与 %s 汇总表的分组列冲突", countCol, kind)
		}
		if err := WriteCSV(path, df); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// WriteCSV 写出单个 DataFrame
func WriteCSV(filePath string, df dataframe.DataFrame) (err error) {
	if df.Err != nil {
		return fmt.Errorf("生成CSV数据失败 %s: %w", filePath, df.Err)
	}
	if err := utils.EnsureDir(filepath.Dir(filePath)); err != nil {
		return fmt.Errorf("创建目录失败: %w", err)
	}

	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("创建CSV文件失败: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("关闭CSV文件失败 %s: %w", filePath, cerr)
		}
	}()

	if err := df.WriteCSV(f); err != nil {
		return fmt.Errorf("写入CSV文件失败 %s: %w", filePath, err)
	}
	return nil
}
