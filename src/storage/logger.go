package storage

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel 定义日志级别类型
type LogLevel int

// 日志级别常量定义
const (
	DEBUG   LogLevel = iota // 调试信息
	INFO                    // 普通信息
	WARNING                 // 警告信息
	ERROR                   // 错误信息
	FATAL                   // 致命错误
)

// Logger 日志记录器，写入日志文件(JSON)和标准错误输出
type Logger struct {
	file  *os.File
	mu    sync.Mutex
	sugar *zap.SugaredLogger
}

// NewLogger 创建新的日志记录器
// 参数:
//
//	filename: 日志文件路径，为空时只输出到标准错误
//	level: 最低日志级别(debug/info/warning/error)
//
// 返回值:
//
//	*Logger: 日志记录器实例
//	error: 创建过程中的错误
func NewLogger(filename, level string) (*Logger, error) {
	minLevel := ParseLevel(level).zapLevel()

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.Lock(os.Stderr),
			minLevel,
		),
	}

	l := &Logger{}
	if filename != "" {
		// 打开或创建日志文件，权限设置为0644
		file, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("打开日志文件失败: %w", err)
		}
		l.file = file
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(file),
			minLevel,
		))
	}

	l.sugar = zap.New(zapcore.NewTee(cores...)).Sugar()
	return l, nil
}

// NewNopLogger 不输出任何内容的日志记录器，测试用
func NewNopLogger() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

// Close 刷新缓冲并关闭日志文件
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	_ = l.sugar.Sync()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Log 按级别记录日志
// 参数:
//
//	level: 日志级别
//	message: 日志消息内容
//	keysAndValues: 结构化字段，键值交替
func (l *Logger) Log(level LogLevel, message string, keysAndValues ...interface{}) {
	switch level {
	case DEBUG:
		l.sugar.Debugw(message, keysAndValues...)
	case INFO:
		l.sugar.Infow(message, keysAndValues...)
	case WARNING:
		l.sugar.Warnw(message, keysAndValues...)
	case ERROR:
		l.sugar.Errorw(message, keysAndValues...)
	case FATAL:
		l.sugar.Fatalw(message, keysAndValues...)
	}
}

// With 返回附带固定字段的日志记录器，共用同一个文件句柄
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{sugar: l.sugar.With(keysAndValues...)}
}

// String 实现LogLevel的String方法
func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARNING:
		return "WARNING"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel 解析配置中的日志级别，无法识别时返回 INFO
func ParseLevel(s string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG
	case "WARN", "WARNING":
		return WARNING
	case "ERROR":
		return ERROR
	case "FATAL":
		return FATAL
	default:
		return INFO
	}
}

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case DEBUG:
		return zapcore.DebugLevel
	case WARNING:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	case FATAL:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// 以下是快捷日志方法
func (l *Logger) Debug(msg string, kv ...interface{})   { l.Log(DEBUG, msg, kv...) }   // 记录调试信息
func (l *Logger) Info(msg string, kv ...interface{})    { l.Log(INFO, msg, kv...) }    // 记录普通信息
func (l *Logger) Warning(msg string, kv ...interface{}) { l.Log(WARNING, msg, kv...) } // 记录警告信息
func (l *Logger) Error(msg string, kv ...interface{})   { l.Log(ERROR, msg, kv...) }   // 记录错误信息
func (l *Logger) Fatal(msg string, kv ...interface{})   { l.Log(FATAL, msg, kv...) }   // 记录致命错误
