package services

import (
	"context"

	"github.com/harukimoto/crm-dashboard-api/internal/dto"
	apierrors "github.com/harukimoto/crm-dashboard-api/internal/errors"
	"github.com/harukimoto/crm-dashboard-api/internal/pipedrive"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AggregationService assembles CRM detail views: one primary entity plus
// independently fetched related collections. The primary fetch failing
// fails the whole view; a related fetch failing degrades that collection
// to empty. Fetches run concurrently and are abandoned when the request
// context is cancelled.
type AggregationService struct {
	crm pipedrive.API
	log *zap.Logger
}

// NewAggregationService creates a new AggregationService.
func NewAggregationService(crm pipedrive.API, log *zap.Logger) *AggregationService {
	return &AggregationService{
		crm: crm,
		log: log,
	}
}

// OrgOverview returns one CRM organization with its people and deals.
func (s *AggregationService) OrgOverview(ctx context.Context, orgID int) (*dto.OrgOverviewDTO, error) {
	if !s.crm.IsConfigured() {
		return &dto.OrgOverviewDTO{
			Org:      pipedrive.DemoOrganization(orgID),
			Persons:  pipedrive.DemoPersons(orgID),
			Deals:    pipedrive.DemoDeals(orgID),
			DemoMode: true,
		}, nil
	}

	var (
		org     *pipedrive.Organization
		persons []pipedrive.Person
		deals   []pipedrive.Deal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fetched, err := s.crm.FetchOrganization(gctx, orgID)
		if err != nil {
			return err
		}
		org = fetched
		return nil
	})
	g.Go(func() error {
		fetched, err := s.crm.FetchPersons(gctx)
		if err != nil {
			s.log.Warn("person fetch failed, degrading to empty collection",
				zap.Int("org_id", orgID), zap.Error(err))
			return nil
		}
		persons = fetched
		return nil
	})
	g.Go(func() error {
		fetched, err := s.crm.FetchDeals(gctx)
		if err != nil {
			s.log.Warn("deal fetch failed, degrading to empty collection",
				zap.Int("org_id", orgID), zap.Error(err))
			return nil
		}
		deals = fetched
		return nil
	})

	// Only the primary fetch returns an error, so a non-nil Wait means
	// the view itself is meaningless.
	if err := g.Wait(); err != nil {
		return nil, apierrors.Upstream(err.Error())
	}

	return &dto.OrgOverviewDTO{
		Org:      org,
		Persons:  filterPersonsByOrg(persons, orgID),
		Deals:    filterDealsByOrg(deals, orgID),
		DemoMode: false,
	}, nil
}

// OrgActivity returns one CRM organization with its activities and deals.
func (s *AggregationService) OrgActivity(ctx context.Context, orgID int) (*dto.OrgActivityDTO, error) {
	if !s.crm.IsConfigured() {
		return &dto.OrgActivityDTO{
			Org:        pipedrive.DemoOrganization(orgID),
			Activities: pipedrive.DemoActivities(orgID),
			Deals:      pipedrive.DemoDeals(orgID),
			DemoMode:   true,
		}, nil
	}

	var (
		org        *pipedrive.Organization
		activities []pipedrive.Activity
		deals      []pipedrive.Deal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fetched, err := s.crm.FetchOrganization(gctx, orgID)
		if err != nil {
			return err
		}
		org = fetched
		return nil
	})
	g.Go(func() error {
		fetched, err := s.crm.FetchActivities(gctx)
		if err != nil {
			s.log.Warn("activity fetch failed, degrading to empty collection",
				zap.Int("org_id", orgID), zap.Error(err))
			return nil
		}
		activities = fetched
		return nil
	})
	g.Go(func() error {
		fetched, err := s.crm.FetchDeals(gctx)
		if err != nil {
			s.log.Warn("deal fetch failed, degrading to empty collection",
				zap.Int("org_id", orgID), zap.Error(err))
			return nil
		}
		deals = fetched
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, apierrors.Upstream(err.Error())
	}

	return &dto.OrgActivityDTO{
		Org:        org,
		Activities: filterActivitiesByOrg(activities, orgID),
		Deals:      filterDealsByOrg(deals, orgID),
		DemoMode:   false,
	}, nil
}

// Pipedrive list endpoints return records across all organizations, so
// related collections are narrowed to the requested org before merging.
// Deals are matched on their org linkage only; matching the person
// linkage instead would leak unrelated records.

func filterPersonsByOrg(persons []pipedrive.Person, orgID int) []pipedrive.Person {
	filtered := make([]pipedrive.Person, 0, len(persons))
	for _, p := range persons {
		if p.OrgID != nil && p.OrgID.Value == orgID {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func filterDealsByOrg(deals []pipedrive.Deal, orgID int) []pipedrive.Deal {
	filtered := make([]pipedrive.Deal, 0, len(deals))
	for _, d := range deals {
		if d.OrgID != nil && d.OrgID.Value == orgID {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func filterActivitiesByOrg(activities []pipedrive.Activity, orgID int) []pipedrive.Activity {
	filtered := make([]pipedrive.Activity, 0, len(activities))
	for _, a := range activities {
		if a.OrgID == orgID {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
