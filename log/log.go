// Package log is a minimal pluggable logging facade so routelens can be
// embedded in hosts that bring their own logger.
package log

import "log"

var verbose = false

// SetVerbose enables debug-level output for the default logger.
func SetVerbose(v bool) {
	verbose = v
}

type Logger struct {
	Debugf func(format string, args ...interface{})
	Infof  func(format string, args ...interface{})
	Warnf  func(format string, args ...interface{})
	Errorf func(format string, args ...interface{})
}

var logger = Logger{
	Debugf: defaultDebugf,
	Infof:  defaultInfof,
	Warnf:  defaultWarnf,
	Errorf: defaultErrorf,
}

// SetLogger replaces the default logger. Nil function fields disable the
// corresponding level.
func SetLogger(l Logger) {
	logger = l
}

func Debugf(format string, args ...interface{}) {
	if logger.Debugf != nil {
		logger.Debugf(format, args...)
	}
}

func Infof(format string, args ...interface{}) {
	if logger.Infof != nil {
		logger.Infof(format, args...)
	}
}

func Warnf(format string, args ...interface{}) {
	if logger.Warnf != nil {
		logger.Warnf(format, args...)
	}
}

func Errorf(format string, args ...interface{}) {
	if logger.Errorf != nil {
		logger.Errorf(format, args...)
	}
}

var (
	defaultDebugf = func(format string, args ...interface{}) {
		if verbose {
			log.Printf("[DEBUG] "+format, args...)
		}
	}

	defaultInfof = func(format string, args ...interface{}) {
		log.Printf("[INFO] "+format, args...)
	}

	defaultWarnf = func(format string, args ...interface{}) {
		log.Printf("[WARN] "+format, args...)
	}

	defaultErrorf = func(format string, args ...interface{}) {
		log.Printf("[ERROR] "+format, args...)
	}
)
