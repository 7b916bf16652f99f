package jobs

import (
	"context"
	"fmt"
	"strings"

	"github.com/harukimoto/crm-dashboard-api/internal/pipedrive"
	"github.com/harukimoto/crm-dashboard-api/internal/repository"
)

// IntegrationHealthJob verifies the CRM integration end to end by
// fetching one collection.
type IntegrationHealthJob struct {
	CRM pipedrive.API
}

func (j *IntegrationHealthJob) Name() string { return "integration-health" }

func (j *IntegrationHealthJob) Run(ctx context.Context) (string, error) {
	if !j.CRM.IsConfigured() {
		return "pipedrive not configured, nothing to check", nil
	}

	persons, err := j.CRM.FetchPersons(ctx)
	if err != nil {
		return "", fmt.Errorf("pipedrive unreachable: %w", err)
	}
	return fmt.Sprintf("pipedrive reachable, %d persons visible", len(persons)), nil
}

// MembershipAuditJob reports identities holding more than one active
// membership. The resolver tolerates duplicates deterministically, but
// they usually mean an offboarding step was missed.
type MembershipAuditJob struct {
	Memberships repository.MembershipRepository
}

func (j *MembershipAuditJob) Name() string { return "membership-audit" }

func (j *MembershipAuditJob) Run(_ context.Context) (string, error) {
	duplicates, err := j.Memberships.FindDuplicateActive()
	if err != nil {
		return "", fmt.Errorf("failed to audit memberships: %w", err)
	}
	if len(duplicates) == 0 {
		return "no identities with multiple active memberships", nil
	}

	users := make([]string, len(duplicates))
	for i, d := range duplicates {
		users[i] = fmt.Sprintf("%s (%d)", d.UserID, d.Count)
	}
	return fmt.Sprintf("%d identities hold multiple active memberships: %s",
		len(duplicates), strings.Join(users, ", ")), nil
}
