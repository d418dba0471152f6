package jobs

import (
	"context"
	"os/exec"
	"path/filepath"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/fisher-hooks/fisher/pkg/errs"
	"github.com/fisher-hooks/fisher/pkg/events"
	"github.com/fisher-hooks/fisher/pkg/fs"
	"github.com/fisher-hooks/fisher/pkg/logger"
)

const (
	meterName       = "github.com/fisher-hooks/fisher/pkg/jobs"
	workdirPattern  = "fisher-"
	requestBodyFile = "request_body"

	outcomeCompleted = "completed"
	outcomeFailed    = "failed"
	outcomeError     = "error"
)

// Executor runs jobs. It holds no per-job state: one Executor may process
// jobs from several goroutines at once.
type Executor struct {
	fs                 fs.FS
	logger             logger.Logger
	tempDir            string
	keepFailedWorkdirs bool
	outputLimit        int
	lookupEnv          func(string) (string, bool)
	processed          metric.Int64Counter
}

// NewExecutor creates an Executor using the real filesystem, the OS
// temporary directory and the global meter provider.
func NewExecutor() *Executor {
	processed, err := otel.Meter(meterName).Int64Counter(
		"fisher.jobs.processed",
		metric.WithDescription("Number of jobs processed, by outcome"),
		metric.WithUnit("{job}"),
	)
	if err != nil {
		processed = noop.Int64Counter{}
	}

	return &Executor{
		fs:          fs.NewFS(),
		logger:      logger.NewNoopLogger(),
		outputLimit: DefaultOutputLimit,
		lookupEnv:   defaultLookupEnv,
		processed:   processed,
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (e *Executor) WithFS(fsys fs.FS) *Executor {
	e.fs = fsys
	return e
}

// WithLogger sets the logger and returns the instance for chaining.
func (e *Executor) WithLogger(l logger.Logger) *Executor {
	e.logger = l
	return e
}

// WithTempDir sets the directory working directories are created in.
func (e *Executor) WithTempDir(dir string) *Executor {
	e.tempDir = dir
	return e
}

// WithKeepFailedWorkdirs keeps the working directory of failed jobs for inspection.
func (e *Executor) WithKeepFailedWorkdirs(keep bool) *Executor {
	e.keepFailedWorkdirs = keep
	return e
}

// WithOutputLimit caps the bytes of stdout and of stderr kept in the job
// output. A non-positive limit restores DefaultOutputLimit.
func (e *Executor) WithOutputLimit(limit int) *Executor {
	if limit <= 0 {
		limit = DefaultOutputLimit
	}
	e.outputLimit = limit
	return e
}

// Process runs the job's hook in a fresh working directory and waits for it.
// A hook exiting with a non-zero code or killed by a signal returns an error
// matching errs.ErrHookExecutionFailed; filesystem and spawn failures match
// errs.ErrIO. The returned output is meaningful in both cases.
func (e *Executor) Process(job *Job) (events.JobOutput, error) {
	name := job.HookName()
	output := events.JobOutput{
		HookName:           name,
		TriggerStatusHooks: job.TriggerStatusHooks(),
	}

	workdir, err := e.fs.MkdirTemp(e.tempDir, workdirPattern)
	if err != nil {
		e.record(name, outcomeError)
		return output, errs.WithHook(errs.IO(err), name)
	}

	bodyPath := filepath.Join(workdir, requestBodyFile)
	if err := e.fs.CreateFileWithContent(bodyPath, []byte(job.Request().Body()+"\n"), 0600); err != nil {
		e.cleanup(workdir)
		e.record(name, outcomeError)
		return output, errs.WithHook(errs.IO(err), name)
	}

	stdout := newCappedBuffer(e.outputLimit)
	stderr := newCappedBuffer(e.outputLimit)
	cmd := exec.Command(job.Hook().Exec())
	cmd.Dir = workdir
	cmd.Env = e.buildEnv(job, workdir, bodyPath)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	e.logger.Debugf("Executing hook %s in %s", name, workdir)
	runErr := cmd.Run()
	output.Stdout = stdout.String()
	output.Stderr = stderr.String()

	if runErr == nil {
		output.Success = true
		e.record(name, outcomeCompleted)
		if err := e.fs.RemoveAll(workdir); err != nil {
			return output, errs.WithHook(errs.IO(err), name)
		}
		return output, nil
	}

	execErr := classify(runErr)
	if execErr == nil {
		e.cleanup(workdir)
		e.record(name, outcomeError)
		return output, errs.WithHook(errs.IO(runErr), name)
	}

	output.ExitCode = execErr.ExitCode
	output.Signal = execErr.Signal
	e.record(name, outcomeFailed)

	if e.keepFailedWorkdirs {
		e.logger.Logf("Kept working directory of failed hook %s: %s", name, workdir)
	} else {
		e.cleanup(workdir)
	}

	return output, errs.WithHook(execErr, name)
}

func (e *Executor) cleanup(workdir string) {
	if err := e.fs.RemoveAll(workdir); err != nil {
		e.logger.Errorf("Failed to remove working directory %s: %v", workdir, err)
	}
}

func (e *Executor) record(hook, outcome string) {
	e.processed.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("hook", hook),
		attribute.String("outcome", outcome),
	))
}
