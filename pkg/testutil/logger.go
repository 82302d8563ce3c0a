package testutil

import (
	"fmt"

	"github.com/questx-lab/reactionmap/pkg/logger"
)

var _ logger.Logger = (*RecordLogger)(nil)

// RecordLogger keeps every formatted line by level.
type RecordLogger struct {
	Lines map[string][]string
}

func NewRecordLogger() *RecordLogger {
	return &RecordLogger{Lines: map[string][]string{}}
}

func (l *RecordLogger) Debugf(msg string, a ...any) { l.record("debug", msg, a...) }
func (l *RecordLogger) Infof(msg string, a ...any)  { l.record("info", msg, a...) }
func (l *RecordLogger) Warnf(msg string, a ...any)  { l.record("warn", msg, a...) }
func (l *RecordLogger) Errorf(msg string, a ...any) { l.record("error", msg, a...) }

func (l *RecordLogger) record(level, msg string, a ...any) {
	l.Lines[level] = append(l.Lines[level], fmt.Sprintf(msg, a...))
}
