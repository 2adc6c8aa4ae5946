package contracts

import "testing"

func TestFollowerCount(t *testing.T) {
	a := &AthleteProfile{
		SocialStats: []SocialStat{
			{Platform: "instagram", Followers: 12000},
			{Platform: "tiktok", Followers: 30000},
		},
	}
	if got := a.FollowerCount(); got != 42000 {
		t.Errorf("FollowerCount() = %d, want 42000", got)
	}

	// Precomputed aggregate wins
	a.TotalFollowers = 50000
	if got := a.FollowerCount(); got != 50000 {
		t.Errorf("FollowerCount() = %d, want precomputed 50000", got)
	}
}

func TestEngagementRate(t *testing.T) {
	a := &AthleteProfile{
		SocialStats: []SocialStat{
			{Platform: "instagram", EngagementRate: 4.0},
			{Platform: "tiktok", EngagementRate: 6.0},
			{Platform: "twitter", EngagementRate: 0}, // no data, excluded
		},
	}
	if got := a.EngagementRate(); got != 5.0 {
		t.Errorf("EngagementRate() = %.2f, want 5.00", got)
	}

	empty := &AthleteProfile{}
	if got := empty.EngagementRate(); got != 0 {
		t.Errorf("EngagementRate() = %.2f, want 0 for no data", got)
	}
}

func TestVerifiedCount(t *testing.T) {
	a := &AthleteProfile{
		SocialStats: []SocialStat{
			{Platform: "instagram", Verified: true},
			{Platform: "tiktok", Verified: false},
			{Platform: "twitter", Verified: true},
		},
	}
	if got := a.VerifiedCount(); got != 2 {
		t.Errorf("VerifiedCount() = %d, want 2", got)
	}
}

func TestHasSocialData(t *testing.T) {
	empty := &AthleteProfile{}
	if empty.HasSocialData() {
		t.Error("Athlete with no stats should report no social data")
	}

	zeroStats := &AthleteProfile{
		SocialStats: []SocialStat{{Platform: "instagram"}},
	}
	if zeroStats.HasSocialData() {
		t.Error("All-zero stats should report no social data")
	}

	withData := &AthleteProfile{
		SocialStats: []SocialStat{{Platform: "instagram", Followers: 100}},
	}
	if !withData.HasSocialData() {
		t.Error("Nonzero followers should report social data")
	}
}

func TestSortMatches(t *testing.T) {
	results := []*MatchResult{
		{AthleteID: "b", CompositeScore: 70, ValuationScore: 60},
		{AthleteID: "a", CompositeScore: 70, ValuationScore: 80},
		{AthleteID: "c", CompositeScore: 90, ValuationScore: 10},
		{AthleteID: "e", CompositeScore: 70, ValuationScore: 60},
		{AthleteID: "d", CompositeScore: 70, ValuationScore: 60},
	}

	SortMatches(results)

	wantOrder := []string{"c", "a", "b", "d", "e"}
	for i, want := range wantOrder {
		if results[i].AthleteID != want {
			t.Errorf("position %d: got %s, want %s", i, results[i].AthleteID, want)
		}
	}
}
