package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	log *logger
)

type logger struct {
	log *logrus.Logger
}

func init() {
	log = new("")
}

// New replaces the package logger with one at the given level ("debug",
// "info", ...). Unknown levels fall back to info.
func New(logLevel string) *logger {
	return new(logLevel)
}

func new(logLevel string) *logger {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log = &logger{
		log: &logrus.Logger{
			Level:     level,
			Out:       os.Stdout,
			Formatter: &logrus.TextFormatter{},
			Hooks:     make(logrus.LevelHooks),
		}}

	return log
}

// METHODS

func (l *logger) Info(msg string, tags ...string) {
	if l.log.Level < logrus.InfoLevel {
		return
	}

	l.log.WithFields(parseFields(tags...)).Info(msg)
}

func (l *logger) Printf(msg string, args ...interface{}) {
	if l.log.Level < logrus.InfoLevel {
		return
	}

	l.log.Printf(msg, args...)
}

func (l *logger) Debug(msg string, tags ...string) {
	if l.log.Level < logrus.DebugLevel {
		return
	}

	l.log.WithFields(parseFields(tags...)).Debug(msg)
}

func (l *logger) Warn(msg string, tags ...string) {
	if l.log.Level < logrus.WarnLevel {
		return
	}

	l.log.WithFields(parseFields(tags...)).Warn(msg)
}

func (l *logger) Error(msg string, err error, tags ...string) {
	if l.log.Level < logrus.ErrorLevel {
		return
	}
	msg = fmt.Sprintf("%s -- ERROR -- %v", msg, err)
	l.log.WithFields(parseFields(tags...)).Error(msg)
}

func (l *logger) Fatal(err error) {
	l.Error(err.Error(), err)
}

// Functions

func SetOutput(out io.Writer) {
	log.log.SetOutput(out)
}

func Info(msg string, tags ...string) {
	log.Info(msg, tags...)
}

func Printf(msg string, args ...interface{}) {
	log.Printf(msg, args...)
}

func Debug(msg string, tags ...string) {
	log.Debug(msg, tags...)
}

func Warn(msg string, tags ...string) {
	log.Warn(msg, tags...)
}

func Error(msg string, err error, tags ...string) {
	log.Error(msg, err, tags...)
}

func Fatal(err error) {
	log.Fatal(err)
}

// parseFields turns "key:value" tags into logrus fields.
func parseFields(tags ...string) logrus.Fields {
	result := make(logrus.Fields, len(tags))

	for _, tag := range tags {
		els := strings.SplitN(tag, ":", 2)
		if len(els) > 1 {
			result[strings.TrimSpace(els[0])] = strings.TrimSpace(els[1])
		}
	}
	return result
}
