// reader.go
package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"NoResultsReport/src/model"
	"NoResultsReport/src/storage"
)

var (
	// ErrInputMissing 输入文件不存在或不可读
	ErrInputMissing = errors.New("input file not found")
	// ErrInputMalformed 输入内容不是合法的 JSON 数组
	ErrInputMalformed = errors.New("input is not valid JSON")
)

// ReadRecords 读取 JSON 文件，返回顶层数组中的原始记录
func ReadRecords(filePath string) ([]model.RawRecord, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputMissing, filePath, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputMissing, filePath, err)
	}

	var records []model.RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputMalformed, err)
	}
	return records, nil
}

// Reader 读取输入文件；失败时输出诊断信息并返回空数据集
type Reader struct {
	out    io.Writer
	logger *storage.Logger
}

func NewReader(out io.Writer, logger *storage.Logger) *Reader {
	return &Reader{out: out, logger: logger}
}

// Load 只尝试一次，文件缺失或解析失败都降级为空数据集
func (r *Reader) Load(filePath string) []model.RawRecord {
	records, err := ReadRecords(filePath)
	switch {
	case errors.Is(err, ErrInputMissing):
		fmt.Fprintf(r.out, "File not found: %s\n", filePath)
		r.logger.Error("输入文件不存在", "path", filePath, "error", err)
		return []model.RawRecord{}
	case errors.Is(err, ErrInputMalformed):
		fmt.Fprintf(r.out, "Error decoding JSON: %v\n", err)
		r.logger.Error("输入文件解析失败", "path", filePath, "error", err)
		return []model.RawRecord{}
	case err != nil:
		fmt.Fprintf(r.out, "Error reading %s: %v\n", filePath, err)
		r.logger.Error("读取输入文件失败", "path", filePath, "error", err)
		return []model.RawRecord{}
	}

	r.logger.Info("输入文件加载完毕", "path", filePath, "records", len(records))
	return records
}
