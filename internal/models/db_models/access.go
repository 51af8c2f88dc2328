package db_models

// SubscriptionAccess is immutable reference data: one row per tier, seeded
// once. Nil caps mean unlimited.
type SubscriptionAccess struct {
	BaseModel
	SubscriptionName string `gorm:"uniqueIndex"` // "free" | "monthly" | "yearly"

	JournalEntries *int64
	QuotesPerDay   *int64
	DigsPerWeek    *int64

	MurmurationLimit bool
	AudioPostJournal bool
	MeditationAccess bool
	AdService        bool
}
