package dto

import (
	"time"

	"github.com/harukimoto/crm-dashboard-api/internal/jobs"
)

// JobRunDTO is the scheduled-job result envelope. A failed job is still a
// normal envelope with success=false; only dispatch faults become error
// responses.
type JobRunDTO struct {
	Status   string    `json:"status"`
	JobName  string    `json:"jobName"`
	Success  bool      `json:"success"`
	Duration string    `json:"duration"`
	Output   string    `json:"output"`
	Ran      time.Time `json:"ran"`
}

// ToJobRunDTO converts a dispatch result to its envelope
func ToJobRunDTO(result *jobs.Result) JobRunDTO {
	status := "ok"
	if !result.Success {
		status = "error"
	}
	return JobRunDTO{
		Status:   status,
		JobName:  result.JobName,
		Success:  result.Success,
		Duration: result.Duration.String(),
		Output:   result.Output,
		Ran:      result.Ran,
	}
}
