package jobs

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrUnknownJob means the requested name matches no registered job. It is
// a client input error, not a server fault.
var ErrUnknownJob = errors.New("unknown job")

// DispatchTimeout is the coarse budget covering one entire job run.
const DispatchTimeout = 5 * time.Minute

// Job is a runnable background task. Run returns human-readable output;
// a returned error marks the run as failed but is still a normal result
// for the dispatcher.
type Job interface {
	Name() string
	Run(ctx context.Context) (string, error)
}

// Result describes one dispatch. It is produced once per run and not
// persisted by this layer.
type Result struct {
	JobName  string
	Success  bool
	Duration time.Duration
	Output   string
	Ran      time.Time
}

// Registry holds runnable jobs keyed by exact name.
type Registry struct {
	jobs map[string]Job
	log  *zap.Logger
}

// NewRegistry creates an empty job registry.
func NewRegistry(log *zap.Logger) *Registry {
	return &Registry{
		jobs: make(map[string]Job),
		log:  log,
	}
}

// Register adds a job under its own name, replacing any previous entry.
func (r *Registry) Register(job Job) {
	r.jobs[job.Name()] = job
}

// Names returns the registered job names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.jobs))
	for name := range r.jobs {
		names = append(names, name)
	}
	return names
}

// Dispatch runs the named job under the dispatch budget. Job-level
// failure is data on the Result; only an unknown name returns an error.
func (r *Registry) Dispatch(ctx context.Context, name string) (*Result, error) {
	job, ok := r.jobs[name]
	if !ok {
		return nil, ErrUnknownJob
	}

	ctx, cancel := context.WithTimeout(ctx, DispatchTimeout)
	defer cancel()

	runID := uuid.NewString()
	r.log.Info("job started",
		zap.String("job", name), zap.String("run_id", runID))

	start := time.Now()
	output, err := job.Run(ctx)
	result := &Result{
		JobName:  name,
		Success:  err == nil,
		Duration: time.Since(start),
		Output:   output,
		Ran:      start,
	}

	if err != nil {
		if result.Output == "" {
			result.Output = err.Error()
		}
		r.log.Warn("job failed",
			zap.String("job", name), zap.String("run_id", runID),
			zap.Duration("duration", result.Duration), zap.Error(err))
		return result, nil
	}

	r.log.Info("job completed",
		zap.String("job", name), zap.String("run_id", runID),
		zap.Duration("duration", result.Duration))
	return result, nil
}
