package dto

import (
	"github.com/harukimoto/crm-dashboard-api/internal/pipedrive"
)

// OrgOverviewDTO is the "organization plus people and deals" detail view.
// The field set is fixed; demo and live responses share it exactly.
type OrgOverviewDTO struct {
	Org      *pipedrive.Organization `json:"org"`
	Persons  []pipedrive.Person      `json:"persons"`
	Deals    []pipedrive.Deal        `json:"deals"`
	DemoMode bool                    `json:"demo_mode"`
}

// OrgActivityDTO is the "organization plus activities and deals" detail
// view.
type OrgActivityDTO struct {
	Org        *pipedrive.Organization `json:"org"`
	Activities []pipedrive.Activity    `json:"activities"`
	Deals      []pipedrive.Deal        `json:"deals"`
	DemoMode   bool                    `json:"demo_mode"`
}
