package export

import (
	"fmt"
	"path/filepath"

	"NoResultsReport/src/model"
	"NoResultsReport/src/utils"
)

// WriteWorkbook 汇总表各占一张工作表，最后一张为展平后的明细
func WriteWorkbook(filePath string, s model.Summaries, table model.FlatTable, countCol string) error {
	if err := utils.EnsureDir(filepath.Dir(filePath)); err != nil {
		return fmt.Errorf("创建目录失败: %w", err)
	}

	sheets := make([]utils.Sheet, 0, len(model.SummaryKinds)+1)
	for _, kind := range model.SummaryKinds {
		sheets = append(sheets, utils.Sheet{Name: string(kind), DF: s.DataFrame(kind, countCol)})
	}
	sheets = append(sheets, utils.Sheet{Name: "records", DF: table.DataFrame()})

	return utils.SaveSheets(filePath, sheets)
}
