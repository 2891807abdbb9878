// Package retention runs one pass over the source directory: files inside the
// retention window are copied to the destination, older files are deleted.
package retention

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/raoulx24/backup-pruner/internal/auditlog"
	"github.com/raoulx24/backup-pruner/internal/config"
	"github.com/raoulx24/backup-pruner/internal/fs"
	"github.com/raoulx24/backup-pruner/internal/logging"
	"github.com/raoulx24/backup-pruner/internal/metrics"
)

type Engine struct {
	cfg     config.Config
	fs      fs.FS
	log     logging.Logger
	metrics *metrics.Collector
	now     func() time.Time
}

type Option func(*Engine)

// WithFS replaces the OS filesystem.
func WithFS(f fs.FS) Option {
	return func(e *Engine) { e.fs = f }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithMetrics records run counters; they are written to cfg.Metrics.Textfile when set.
func WithMetrics(m *metrics.Collector) Option {
	return func(e *Engine) { e.metrics = m }
}

func New(cfg config.Config, log logging.Logger, opts ...Option) *Engine {
	e := &Engine{
		cfg: cfg,
		fs:  fs.New(),
		log: log,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Report summarises a run. On failure it holds the counts reached so far.
type Report struct {
	RunID          string
	Scanned        int
	Copied         int
	Deleted        int
	BytesCopied    int64
	SourceLog      string
	DestinationLog string
}

// Run processes every file once. A missing directory yields a
// ConfigurationError before any log is created. Any other failure stops the
// run where it happened: files already handled stay handled, and the logs are
// closed without a footer.
func (e *Engine) Run() (rep Report, err error) {
	rep = Report{
		RunID:          uuid.NewString(),
		SourceLog:      e.cfg.Source.Log,
		DestinationLog: e.cfg.Destination.Log,
	}
	log := e.log.With("run_id", rep.RunID)

	src := e.cfg.Source.Path
	dst := e.cfg.Destination.Path
	days := e.cfg.Retention.DeleteAfterDays

	if err := ValidateDirs(e.fs, src, dst); err != nil {
		return rep, err
	}

	log.Info("retention run started", "source", src, "destination", dst, "delete_after_days", days)
	if e.metrics != nil {
		defer func() { e.finishMetrics(log, err == nil) }()
	}

	srcLog, err := auditlog.CreateSource(e.cfg.Source.Log, src)
	if err != nil {
		return rep, err
	}
	defer closeLog(srcLog.Log, &err)

	if err := srcLog.Begin(e.now()); err != nil {
		return rep, err
	}

	dstLog, err := auditlog.CreateDestination(e.cfg.Destination.Log, dst)
	if err != nil {
		return rep, err
	}
	defer closeLog(dstLog.Log, &err)

	if err := dstLog.Begin(e.now()); err != nil {
		return rep, err
	}

	files, err := ScanFiles(e.fs, src)
	if err != nil {
		return rep, err
	}

	for _, f := range files {
		rep.Scanned++
		if e.metrics != nil {
			e.metrics.FileScanned()
		}

		if err := srcLog.Inventory(f.Name, f.Size, f.ChangeTime, f.ModTime); err != nil {
			return rep, err
		}

		age := AgeDays(f.ModTime, e.now())
		action := Decide(age, days)
		log.Debug("file classified", "file", f.Name, "age_days", age, "action", action.String())

		switch action {
		case ActionCopy:
			out, err := e.fs.CopyFile(f.Path, dst)
			if err != nil {
				return rep, fmt.Errorf("copying %s: %w", f.Name, err)
			}
			rep.Copied++
			rep.BytesCopied += f.Size
			if e.metrics != nil {
				e.metrics.FileCopied(f.Size)
			}
			log.Info("file copied", "file", f.Name, "to", out, "size", f.Size)

			if err := dstLog.Copied(f.Name, f.Size, f.ModTime); err != nil {
				return rep, err
			}

		case ActionDelete:
			if err := e.fs.Remove(f.Path); err != nil {
				return rep, fmt.Errorf("deleting %s: %w", f.Name, err)
			}
			rep.Deleted++
			if e.metrics != nil {
				e.metrics.FileDeleted()
			}
			log.Info("file deleted", "file", f.Name, "age_days", age)

			if err := srcLog.Deleted(f.Name, days); err != nil {
				return rep, err
			}
		}
	}

	if err := srcLog.End(e.now()); err != nil {
		return rep, err
	}
	if err := dstLog.End(e.now()); err != nil {
		return rep, err
	}

	log.Info("retention run finished", "scanned", rep.Scanned, "copied", rep.Copied, "deleted", rep.Deleted)
	return rep, nil
}

func (e *Engine) finishMetrics(log logging.Logger, success bool) {
	e.metrics.Finish(e.now(), success)
	if e.cfg.Metrics.Textfile == "" {
		return
	}
	if err := e.metrics.WriteTextfile(e.cfg.Metrics.Textfile); err != nil {
		log.Warn("metrics not written", "path", e.cfg.Metrics.Textfile, "error", err)
	}
}

// closeLog folds a close failure into the run error.
func closeLog(l *auditlog.Log, err *error) {
	if cerr := l.Close(); cerr != nil {
		*err = errors.Join(*err, fmt.Errorf("closing log %s: %w", l.Path(), cerr))
	}
}
