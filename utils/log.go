package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
)

const (
	logMaxAge   = 7 * 24 * time.Hour
	logRotation = 24 * time.Hour
)

type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(time.DateTime)
	level := strings.ToLower(entry.Level.String())

	fileName, line := "-", 0
	funcName := "-"
	if entry.Caller != nil {
		fileName, line = filepath.Base(entry.Caller.File), entry.Caller.Line
		funcName = entry.Caller.Function
		funcName = funcName[strings.LastIndex(funcName, ".")+1:]
	}

	msg := fmt.Sprintf("%s [%s] %s:%d %s %s\n", timestamp, level, fileName, line, funcName, entry.Message)
	return []byte(msg), nil
}

// Logger 构造按天轮转的文件日志器，logPath为日志目录
func Logger(level logrus.Level, logPath string) *logrus.Logger {
	l := logrus.New()
	writer, err := newRotateWriter(logPath)
	if err != nil {
		logrus.Fatalf("create log writer: %v", err)
	}
	l.SetOutput(writer)
	l.SetReportCaller(true)
	l.Formatter = &Formatter{}
	l.SetLevel(level)
	return l
}

func newRotateWriter(logPath string) (*SafeRotateLogs, error) {
	if err := os.MkdirAll(logPath, os.ModePerm); err != nil {
		return nil, err
	}
	// 以进程名区分日志文件
	pattern := filepath.Join(logPath, fmt.Sprintf("%s-%%Y%%m%%d.log", filepath.Base(os.Args[0])))
	writer, err := rotatelogs.New(
		pattern,
		rotatelogs.WithMaxAge(logMaxAge),
		rotatelogs.WithRotationTime(logRotation),
	)
	if err != nil {
		return nil, err
	}
	return &SafeRotateLogs{RotateLogs: writer, logPattern: pattern}, nil
}

// SafeRotateLogs 确保当前日志文件被外部删除后能重建
type SafeRotateLogs struct {
	*rotatelogs.RotateLogs
	logPattern string
}

func (s *SafeRotateLogs) Write(p []byte) (n int, err error) {
	current := s.RotateLogs.CurrentFileName()
	if _, err := os.Stat(current); current != "" && os.IsNotExist(err) {
		writer, err := rotatelogs.New(
			s.logPattern,
			rotatelogs.WithMaxAge(logMaxAge),
			rotatelogs.WithRotationTime(logRotation),
		)
		if err != nil {
			return 0, fmt.Errorf("recreate log writer: %v", err)
		}
		s.RotateLogs = writer
	}
	return s.RotateLogs.Write(p)
}
