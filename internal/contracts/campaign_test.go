package contracts

import (
	"errors"
	"testing"
)

func TestCampaignCriteriaValidate(t *testing.T) {
	tests := []struct {
		name     string
		criteria CampaignCriteria
		wantErr  bool
	}{
		{
			name:     "empty criteria is valid",
			criteria: CampaignCriteria{ID: "c1"},
			wantErr:  false,
		},
		{
			name: "valid follower range",
			criteria: CampaignCriteria{
				ID:          "c1",
				FollowerMin: 1000,
				FollowerMax: 50000,
			},
			wantErr: false,
		},
		{
			name: "unbounded max is valid",
			criteria: CampaignCriteria{
				ID:          "c1",
				FollowerMin: 1000,
				FollowerMax: 0,
			},
			wantErr: false,
		},
		{
			name: "min exceeds max",
			criteria: CampaignCriteria{
				ID:          "c1",
				FollowerMin: 50000,
				FollowerMax: 1000,
			},
			wantErr: true,
		},
		{
			name: "negative follower min",
			criteria: CampaignCriteria{
				ID:          "c1",
				FollowerMin: -1,
			},
			wantErr: true,
		},
		{
			name: "negative engagement threshold",
			criteria: CampaignCriteria{
				ID:                "c1",
				MinEngagementRate: -0.5,
			},
			wantErr: true,
		},
		{
			name: "per-athlete budget exceeds total",
			criteria: CampaignCriteria{
				ID:               "c1",
				TotalBudget:      1000,
				PerAthleteBudget: 2000,
			},
			wantErr: true,
		},
		{
			name: "per-athlete budget without total is valid",
			criteria: CampaignCriteria{
				ID:               "c1",
				PerAthleteBudget: 2000,
			},
			wantErr: false,
		},
		{
			name: "unknown tier",
			criteria: CampaignCriteria{
				ID:    "c1",
				Tiers: []Tier{Tier(9)},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.criteria.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
			if tt.wantErr && err != nil && !errors.Is(err, ErrInvalidCriteria) {
				t.Errorf("Error should wrap ErrInvalidCriteria, got: %v", err)
			}
		})
	}
}

func TestWantsSport(t *testing.T) {
	empty := CampaignCriteria{}
	if !empty.WantsSport("basketball") {
		t.Error("Empty sport set should match any sport")
	}

	c := CampaignCriteria{Sports: []string{"basketball", "soccer"}}
	if !c.WantsSport("soccer") {
		t.Error("Expected soccer to match target set")
	}
	if c.WantsSport("golf") {
		t.Error("Expected golf to miss target set")
	}
}

func TestWantsTier(t *testing.T) {
	empty := CampaignCriteria{}
	if !empty.WantsTier(TierEmerging) {
		t.Error("Empty tier set should match any tier")
	}

	c := CampaignCriteria{Tiers: []Tier{TierEstablished, TierElite}}
	if !c.WantsTier(TierElite) {
		t.Error("Expected elite to match target set")
	}
	if c.WantsTier(TierEmerging) {
		t.Error("Expected emerging to miss target set")
	}
}
