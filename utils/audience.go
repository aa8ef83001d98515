package utils

import (
	"fmt"
	"sort"

	"crewpulse/models"
)

// FacetType names one dimension of audience selection.
type FacetType string

const (
	FacetRegion     FacetType = "region"
	FacetDivision   FacetType = "division"
	FacetLocation   FacetType = "location"
	FacetDepartment FacetType = "department"
	FacetUserGroup  FacetType = "user_group"
	FacetJobOrder   FacetType = "job_order"
)

// FacetLookup translates facet IDs into worker IDs. Implementations may be
// backed by any store; the resolver only needs these two calls.
type FacetLookup interface {
	// WorkersByFacet returns the worker IDs belonging to any of the given
	// facet IDs for the tenant.
	WorkersByFacet(userID uint, facet FacetType, ids []string) ([]string, error)
	// AllWorkers returns every active worker ID for the tenant.
	AllWorkers(userID uint) ([]string, error)
}

// ResolveAudience turns a facet selector into a concrete, deduplicated set
// of worker IDs. Entire-workforce campaigns ignore facet lists. An empty
// selector resolves to an empty audience, which is valid. The result is
// sorted so the same selector against the same lookup snapshot always
// yields the same slice.
func ResolveAudience(userID uint, selector models.FacetSelector, entireWorkforce bool, lookup FacetLookup) ([]string, error) {
	if entireWorkforce {
		workers, err := lookup.AllWorkers(userID)
		if err != nil {
			return nil, fmt.Errorf("workforce lookup failed: %w", err)
		}
		return dedupeSorted(workers), nil
	}

	seen := make(map[string]struct{})

	facets := []struct {
		facet FacetType
		ids   []string
	}{
		{FacetRegion, selector.Regions},
		{FacetDivision, selector.Divisions},
		{FacetLocation, selector.Locations},
		{FacetDepartment, selector.Departments},
		{FacetUserGroup, selector.UserGroups},
		{FacetJobOrder, selector.JobOrders},
	}

	for _, f := range facets {
		if len(f.ids) == 0 {
			continue
		}
		workers, err := lookup.WorkersByFacet(userID, f.facet, f.ids)
		if err != nil {
			return nil, fmt.Errorf("%s lookup failed: %w", f.facet, err)
		}
		for _, w := range workers {
			seen[w] = struct{}{}
		}
	}

	// Explicit user IDs are added verbatim, no lookup round-trip.
	for _, w := range selector.UserIDs {
		seen[w] = struct{}{}
	}

	audience := make([]string, 0, len(seen))
	for w := range seen {
		audience = append(audience, w)
	}
	sort.Strings(audience)
	return audience, nil
}

func dedupeSorted(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
