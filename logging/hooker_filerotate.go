package logging

import (
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat/go-file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

const logRotationTime = 24 * time.Hour

// NewFileRotateHooker enables log file output with daily rotation. A
// non-zero age bounds the lifetime of rotated files, in years.
func NewFileRotateHooker(path, filename string, age uint32, formatter logrus.Formatter) logrus.Hook {
	if len(path) == 0 {
		panic("fail to parse logger folder: " + path)
	}
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}
	if err := os.MkdirAll(path, 0700); err != nil {
		panic("fail to create logger folder: " + path + ", err: " + err.Error())
	}
	filePath := filepath.Join(path, filename+"-%Y%m%d-%d.log")
	linkPath := filepath.Join(path, filename+".log")
	writer, err := rotatelogs.New(
		filePath,
		rotatelogs.WithLinkName(linkPath),
		rotatelogs.WithRotationTime(logRotationTime),
	)
	if err != nil {
		panic("fail to create rotate logs, err: " + err.Error())
	}
	if age > 0 {
		rotatelogs.WithMaxAge(time.Duration(age) * 365 * 24 * time.Hour).Configure(writer)
	}

	return lfshook.NewHook(lfshook.WriterMap{
		logrus.TraceLevel: writer,
		logrus.DebugLevel: writer,
		logrus.InfoLevel:  writer,
		logrus.WarnLevel:  writer,
		logrus.ErrorLevel: writer,
		logrus.FatalLevel: writer,
	}, formatter)
}
