package response_models

import "encoding/json"

// Limit is a per-period cap with an explicit unlimited state. Unlimited is a
// distinguished value, not a large integer; it marshals as JSON null the same
// way the unlimited tiers store null caps.
type Limit struct {
	N         int64
	Unlimited bool
}

func BoundedLimit(n int64) Limit { return Limit{N: n} }
func UnlimitedLimit() Limit      { return Limit{Unlimited: true} }

// LimitFromCap maps a nullable stored cap onto a Limit.
func LimitFromCap(cap *int64) Limit {
	if cap == nil {
		return UnlimitedLimit()
	}
	return BoundedLimit(*cap)
}

// Allows reports whether one more use fits under the cap.
func (l Limit) Allows(used int64) bool {
	return l.Unlimited || used < l.N
}

func (l Limit) MarshalJSON() ([]byte, error) {
	if l.Unlimited {
		return []byte("null"), nil
	}
	return json.Marshal(l.N)
}

func (l *Limit) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = UnlimitedLimit()
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*l = BoundedLimit(n)
	return nil
}

// Entitlement is the resolved feature surface for one user: tier caps merged
// with stored preferences.
type Entitlement struct {
	SubscriptionName string `json:"subscriptionName"`

	JournalEntries Limit `json:"journal_entries"`
	QuotesPerDay   Limit `json:"quotesPerday"`
	DigsPerWeek    Limit `json:"digsPerWeek"`

	MurmurationLimit bool `json:"murmurationLimit"`
	AudioPostJournal bool `json:"audioPostJournal"`
	MeditationAccess bool `json:"meditationAccess"`
	AdService        bool `json:"adService"`

	FocusArea        []string `json:"focus_area"`
	ContentFrequency string   `json:"content_frequency,omitempty"`
}

func (e *Entitlement) IsFree() bool {
	return e.SubscriptionName == "free"
}
