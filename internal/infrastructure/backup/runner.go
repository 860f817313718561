// Package backup produces database dumps with an external mysqldump
// invocation. Dumps run in the background; the console polls status
// instead of blocking on the request.
package backup

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"helperdesk/internal/shared/config"
	apperrors "helperdesk/internal/shared/errors"
	"helperdesk/internal/shared/goroutine"
	"helperdesk/internal/shared/logger"
)

type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StateDone    State = "done"
	StateFailed  State = "failed"
)

// Status is a point-in-time snapshot of the dump lifecycle. Error
// carries the failure text verbatim for operators.
type Status struct {
	State      State      `json:"state"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	OutputFile string     `json:"output_file,omitempty"`
	Error      string     `json:"error,omitempty"`
}

type Runner struct {
	cfg    *config.BackupConfig
	dbCfg  *config.DatabaseConfig
	logger logger.Interface

	mu     sync.Mutex
	status Status
}

func NewRunner(cfg *config.BackupConfig, dbCfg *config.DatabaseConfig) *Runner {
	return &Runner{
		cfg:    cfg,
		dbCfg:  dbCfg,
		logger: logger.NewLogger().With("component", "backup.runner"),
		status: Status{State: StateIdle},
	}
}

// Trigger starts a dump in the background. A second trigger while one
// is running is refused with a conflict.
func (r *Runner) Trigger() (Status, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status.State == StateRunning {
		return r.status, apperrors.NewConflictError("a backup is already running")
	}

	now := time.Now()
	outputFile := filepath.Join(r.cfg.OutputDir,
		fmt.Sprintf("helperdesk-%s.sql", now.Format("20060102-150405")))

	r.status = Status{
		State:      StateRunning,
		StartedAt:  &now,
		OutputFile: outputFile,
	}

	goroutine.SafeGo(r.logger, "backup.dump", func() {
		r.finish(r.run(outputFile))
	})

	return r.status, nil
}

// Status returns the current dump state.
func (r *Runner) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

func (r *Runner) run(outputFile string) error {
	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	out, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer out.Close()

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(r.cfg.TimeoutMin)*time.Minute)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.cfg.DumpCommand,
		"-h", r.dbCfg.Host,
		"-P", fmt.Sprintf("%d", r.dbCfg.Port),
		"-u", r.dbCfg.Username,
		fmt.Sprintf("--password=%s", r.dbCfg.Password),
		"--single-transaction",
		r.dbCfg.Database,
	)
	cmd.Stdout = out

	r.logger.Infow("backup started", "output_file", outputFile)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("dump command failed: %w", err)
	}
	return nil
}

func (r *Runner) finish(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	r.status.FinishedAt = &now

	if err != nil {
		r.status.State = StateFailed
		r.status.Error = err.Error()
		r.logger.Errorw("backup failed", "error", err)
		return
	}

	r.status.State = StateDone
	r.logger.Infow("backup completed", "output_file", r.status.OutputFile)
}
