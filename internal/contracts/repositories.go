package contracts

import (
	"context"
	"time"
)

// Repository interfaces are defined here only; storage packages
// implement them and the engine depends on nothing concrete.

// AthleteRepository manages athlete profile records
type AthleteRepository interface {
	GetByID(ctx context.Context, id string) (*AthleteProfile, error)
	List(ctx context.Context, limit, offset int) ([]*AthleteProfile, error)
	ListBySport(ctx context.Context, sport string) ([]*AthleteProfile, error)
	Save(ctx context.Context, athlete *AthleteProfile) error
}

// CampaignRepository manages campaign criteria records
type CampaignRepository interface {
	GetByID(ctx context.Context, id string) (*CampaignCriteria, error)
	ListActive(ctx context.Context) ([]*CampaignCriteria, error)
	Save(ctx context.Context, campaign *CampaignCriteria) error
}

// ValuationRepository manages computed valuation records
type ValuationRepository interface {
	GetByAthleteID(ctx context.Context, athleteID string) (*ValuationRecord, error)
	ListScores(ctx context.Context) ([]int, error)
	Save(ctx context.Context, record *ValuationRecord) error
	ListStale(ctx context.Context, olderThan time.Time, limit int) ([]*ValuationRecord, error)
}
