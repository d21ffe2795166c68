package server

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// sampleLog is the per-session data log: a timestamped file opened lazily on
// the first served sample and closed by reset, so the next sample starts a
// fresh file. Lines are CSV: time,level,message.
type sampleLog struct {
	mu   sync.Mutex
	dir  string
	file *os.File
}

func newSampleLog(dir string) *sampleLog {
	return &sampleLog{dir: dir}
}

// Record appends one line for a served sample, opening a new log file if none
// is active.
func (l *sampleLog) Record(x, y float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		name := time.Now().Format("2006.01.02.15.04.05") + ".log"
		// O_APPEND so a rotate-and-record within the same second extends the
		// file instead of truncating it.
		f, err := os.OpenFile(filepath.Join(l.dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.Wrap(err, "open sample log")
		}
		l.file = f
	}

	_, err := fmt.Fprintf(l.file, "%s,INFO,x=%.6f y=%.6f\n",
		time.Now().Format("15:04:05"), x, y)
	return errors.Wrap(err, "write sample log")
}

// Rotate closes the active file. The next Record opens a fresh one.
func (l *sampleLog) Rotate() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return errors.Wrap(err, "close sample log")
}
