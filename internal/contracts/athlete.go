package contracts

// SocialStat represents an athlete's metrics on a single platform
type SocialStat struct {
	Platform       string  `json:"platform"` // "instagram", "tiktok", "twitter", "youtube"
	Followers      int64   `json:"followers"`
	EngagementRate float64 `json:"engagement_rate"` // percentage, e.g. 4.2 means 4.2%
	Verified       bool    `json:"verified"`
}

// AthleteProfile is an immutable snapshot of one candidate athlete.
// The scoring pipeline never mutates it.
type AthleteProfile struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Sport        string       `json:"sport"`
	Region       string       `json:"region"` // state or region tag, e.g. "CA"
	School       string       `json:"school,omitempty"`
	SocialStats  []SocialStat `json:"social_stats"`
	Achievements []string     `json:"achievements"` // notable honors, e.g. "all-state"
	TopTraits    []string     `json:"top_traits"`   // ordered, most prominent first

	// Optional precomputed aggregates. Zero means "derive from SocialStats".
	TotalFollowers    int64   `json:"total_followers,omitempty"`
	AvgEngagementRate float64 `json:"avg_engagement_rate,omitempty"`

	// Optional precomputed valuation. Nil means "compute fresh".
	Valuation *ValuationRecord `json:"valuation,omitempty"`
}

// FollowerCount returns the precomputed total if present, otherwise
// sums the per-platform counts.
func (a *AthleteProfile) FollowerCount() int64 {
	if a.TotalFollowers > 0 {
		return a.TotalFollowers
	}

	var total int64
	for _, stat := range a.SocialStats {
		total += stat.Followers
	}
	return total
}

// EngagementRate returns the precomputed average if present, otherwise
// averages the per-platform rates over platforms that report one.
func (a *AthleteProfile) EngagementRate() float64 {
	if a.AvgEngagementRate > 0 {
		return a.AvgEngagementRate
	}

	total := 0.0
	count := 0
	for _, stat := range a.SocialStats {
		if stat.EngagementRate > 0 {
			total += stat.EngagementRate
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// VerifiedCount returns the number of verified platform accounts
func (a *AthleteProfile) VerifiedCount() int {
	count := 0
	for _, stat := range a.SocialStats {
		if stat.Verified {
			count++
		}
	}
	return count
}

// HasSocialData reports whether any platform carries a nonzero signal
func (a *AthleteProfile) HasSocialData() bool {
	if a.TotalFollowers > 0 || a.AvgEngagementRate > 0 {
		return true
	}
	for _, stat := range a.SocialStats {
		if stat.Followers > 0 || stat.EngagementRate > 0 {
			return true
		}
	}
	return false
}
