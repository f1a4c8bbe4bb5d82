package logging

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Stack frames between the CPrint/VPrint call site and the hook firing.
// The depth follows the logrus 1.2 entry internals.
const callerSkip = 7

type functionHooker struct {
	innerLogger *Logger
}

func (h *functionHooker) fire(entry *logrus.Entry) {
	pc, _, _, ok := runtime.Caller(callerSkip)
	if !ok {
		return
	}

	f := runtime.FuncForPC(pc)
	file, line := f.FileLine(pc)
	entry.Data["func"] = trimFuncName(f.Name())
	entry.Data["line"] = line
	entry.Data["file"] = filepath.Base(file)
}

func (h *functionHooker) fires(entry *logrus.Entry) {
	for i := callerSkip; i < callerSkip+3; i++ {
		pc, _, _, ok := runtime.Caller(i)
		if !ok {
			break
		}
		f := runtime.FuncForPC(pc)
		file, line := f.FileLine(pc)
		entry.Data["f"+strconv.Itoa(i)] = fmt.Sprintf("{%s,%s,%d}", filepath.Base(file), trimFuncName(f.Name()), line)
	}
}

func trimFuncName(fname string) string {
	if index := strings.LastIndex(fname, "/"); index >= 0 {
		return fname[index+1:]
	}
	return fname
}

func (h *functionHooker) Fire(entry *logrus.Entry) error {
	if h.innerLogger.CallRelation == MsgFormatMulti {
		h.fires(entry)
	} else if h.innerLogger.CallRelation == MsgFormatSingle {
		h.fire(entry)
	}
	return nil
}

func (h *functionHooker) Levels() []logrus.Level {
	return []logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
		logrus.WarnLevel,
		logrus.InfoLevel,
		logrus.DebugLevel,
		logrus.TraceLevel,
	}
}

// LoadFunctionHooker loads a function hooker to the logger
func LoadFunctionHooker(logger *Logger) {
	logger.Hooks.Add(&functionHooker{innerLogger: logger})
}
