package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"murmur/internal/models/db_models"
	"murmur/internal/models/response_models"
	"murmur/internal/repositories"
)

// The fakes below enforce the same uniqueness rules the Postgres schema
// carries, so toggle and assignment semantics are exercised for real.

type fakeEntitlements struct {
	ent *response_models.Entitlement
	err error
}

func (f *fakeEntitlements) Resolve(context.Context, uuid.UUID) (*response_models.Entitlement, error) {
	return f.ent, f.err
}

func freeEntitlement(focus ...string) *response_models.Entitlement {
	return &response_models.Entitlement{
		SubscriptionName: "free",
		JournalEntries:   response_models.BoundedLimit(2),
		QuotesPerDay:     response_models.BoundedLimit(1),
		DigsPerWeek:      response_models.BoundedLimit(3),
		FocusArea:        focus,
	}
}

func paidEntitlement(focus ...string) *response_models.Entitlement {
	return &response_models.Entitlement{
		SubscriptionName: "monthly",
		JournalEntries:   response_models.UnlimitedLimit(),
		QuotesPerDay:     response_models.UnlimitedLimit(),
		DigsPerWeek:      response_models.UnlimitedLimit(),
		AudioPostJournal: true,
		FocusArea:        focus,
	}
}

// ---- users ----

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*db_models.User
	prefs map[uuid.UUID]*db_models.UserPreferences
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users: make(map[uuid.UUID]*db_models.User),
		prefs: make(map[uuid.UUID]*db_models.UserPreferences),
	}
}

var _ repositories.UserRepository = (*fakeUserRepo)(nil)

func (f *fakeUserRepo) add(user *db_models.User) *db_models.User {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = user
	return user
}

func (f *fakeUserRepo) Create(_ context.Context, user *db_models.User) error {
	f.add(user)
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByBillingID(_ context.Context, billingID string) (*db_models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.BillingID == billingID && billingID != "" {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ListAdmins(_ context.Context) ([]db_models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var admins []db_models.User
	for _, u := range f.users {
		if u.Type == db_models.UserTypeAdmin {
			admins = append(admins, *u)
		}
	}
	return admins, nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		u.Password = hash
	}
	return nil
}

func (f *fakeUserRepo) UpdateBillingID(_ context.Context, id uuid.UUID, billingID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		u.BillingID = billingID
	}
	return nil
}

func (f *fakeUserRepo) UpdatePlanLabel(_ context.Context, id uuid.UUID, plan string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		u.SubscriptionPlan = plan
	}
	return nil
}

func (f *fakeUserRepo) UpdateSubscriptionValidUntil(_ context.Context, id uuid.UUID, until int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		u.SubscriptionValidUntil = until
	}
	return nil
}

func (f *fakeUserRepo) Preferences(_ context.Context, userID uuid.UUID) (*db_models.UserPreferences, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.prefs[userID], nil
}

func (f *fakeUserRepo) UpsertPreferences(_ context.Context, prefs *db_models.UserPreferences) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prefs[prefs.UserID] = prefs
	return nil
}

// ---- digs ----

type fakeDigRepo struct {
	mu        sync.Mutex
	digs      []db_models.Dig
	weekly    []db_models.UserWeeklyDig
	daily     []db_models.UserDailyDig
	responses []db_models.DigResponse
}

func newFakeDigRepo() *fakeDigRepo { return &fakeDigRepo{} }

var _ repositories.DigRepository = (*fakeDigRepo)(nil)

func (f *fakeDigRepo) addDig(title string, tags ...string) db_models.Dig {
	dig := db_models.Dig{Title: title, Type: tags}
	dig.ID = uuid.New()
	dig.CreatedAt = time.Now().Unix()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.digs = append(f.digs, dig)
	return dig
}

func tagsOverlap(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

func (f *fakeDigRepo) CreateDig(_ context.Context, dig *db_models.Dig) error {
	if dig.ID == uuid.Nil {
		dig.ID = uuid.New()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.digs = append(f.digs, *dig)
	return nil
}

func (f *fakeDigRepo) DigByID(_ context.Context, id uuid.UUID) (*db_models.Dig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.digs {
		if f.digs[i].ID == id {
			dig := f.digs[i]
			return &dig, nil
		}
	}
	return nil, nil
}

func (f *fakeDigRepo) ListDigs(_ context.Context, page, pageSize int) ([]db_models.Dig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	start := (page - 1) * pageSize
	if start >= len(f.digs) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(f.digs) {
		end = len(f.digs)
	}
	return append([]db_models.Dig(nil), f.digs[start:end]...), nil
}

func (f *fakeDigRepo) DeleteDig(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.digs {
		if f.digs[i].ID == id {
			f.digs = append(f.digs[:i], f.digs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeDigRepo) CountDigs(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.digs)), nil
}

func (f *fakeDigRepo) DigByOffset(_ context.Context, offset int) (*db_models.Dig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if offset >= len(f.digs) {
		return nil, nil
	}
	dig := f.digs[offset]
	return &dig, nil
}

func (f *fakeDigRepo) MatchingPool(_ context.Context, focusAreas []string, limit int) ([]db_models.Dig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var pool []db_models.Dig
	for _, dig := range f.digs {
		if len(focusAreas) == 0 || tagsOverlap(dig.Type, focusAreas) {
			pool = append(pool, dig)
		}
		if len(pool) == limit {
			break
		}
	}
	return pool, nil
}

func (f *fakeDigRepo) UnassignedPool(_ context.Context, userID uuid.UUID, focusAreas []string, limit int) ([]db_models.Dig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := make(map[uuid.UUID]bool)
	for _, row := range f.daily {
		if row.UserID == userID {
			seen[row.DigID] = true
		}
	}
	var pool []db_models.Dig
	for _, dig := range f.digs {
		if seen[dig.ID] {
			continue
		}
		if len(focusAreas) > 0 && !tagsOverlap(dig.Type, focusAreas) {
			continue
		}
		pool = append(pool, dig)
		if len(pool) == limit {
			break
		}
	}
	return pool, nil
}

func (f *fakeDigRepo) WeeklyAssignments(_ context.Context, userID uuid.UUID, weekStart int64) ([]db_models.UserWeeklyDig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rows []db_models.UserWeeklyDig
	for _, row := range f.weekly {
		if row.UserID == userID && row.WeekStart == weekStart {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })
	return rows, nil
}

func (f *fakeDigRepo) CreateWeeklyAssignments(_ context.Context, rows []db_models.UserWeeklyDig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range rows {
		if rows[i].ID == uuid.Nil {
			rows[i].ID = uuid.New()
		}
		f.weekly = append(f.weekly, rows[i])
	}
	return nil
}

func (f *fakeDigRepo) WeeklyAssignment(_ context.Context, userID, digID uuid.UUID, weekStart int64) (*db_models.UserWeeklyDig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.weekly {
		if row.UserID == userID && row.DigID == digID && row.WeekStart == weekStart {
			found := row
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeDigRepo) MarkWeeklyComplete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.weekly {
		if f.weekly[i].ID == id {
			f.weekly[i].Completed = true
		}
	}
	return nil
}

func (f *fakeDigRepo) IncompleteDailyDigs(_ context.Context, userID uuid.UUID) ([]db_models.UserDailyDig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rows []db_models.UserDailyDig
	for _, row := range f.daily {
		if row.UserID == userID && !row.Completed {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (f *fakeDigRepo) DailyDigsForDay(_ context.Context, userID uuid.UUID, dayStart int64) ([]db_models.UserDailyDig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rows []db_models.UserDailyDig
	for _, row := range f.daily {
		if row.UserID == userID && row.AssignedDay == dayStart {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].DailyDigNumber < rows[j].DailyDigNumber })
	return rows, nil
}

func (f *fakeDigRepo) AssignDailyDig(_ context.Context, row *db_models.UserDailyDig) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	today := 0
	for _, existing := range f.daily {
		if existing.UserID == row.UserID && !existing.Completed {
			return repositories.ErrDailyLimitConflict
		}
		if existing.UserID == row.UserID && existing.AssignedDay == row.AssignedDay {
			today++
			if existing.DailyDigNumber == row.DailyDigNumber {
				return repositories.ErrDailyLimitConflict
			}
		}
	}
	if today >= 2 || today+1 != row.DailyDigNumber {
		return repositories.ErrDailyLimitConflict
	}

	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	for _, dig := range f.digs {
		if dig.ID == row.DigID {
			row.Dig = dig
		}
	}
	f.daily = append(f.daily, *row)
	return nil
}

func (f *fakeDigRepo) LatestDailyDig(_ context.Context, userID, digID uuid.UUID) (*db_models.UserDailyDig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var found *db_models.UserDailyDig
	for i := range f.daily {
		row := f.daily[i]
		if row.UserID == userID && row.DigID == digID {
			if found == nil || row.AssignedAt > found.AssignedAt {
				copied := row
				found = &copied
			}
		}
	}
	return found, nil
}

func (f *fakeDigRepo) MarkDailyComplete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.daily {
		if f.daily[i].ID == id {
			f.daily[i].Completed = true
		}
	}
	return nil
}

func (f *fakeDigRepo) CreateResponse(_ context.Context, resp *db_models.DigResponse) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.responses {
		if existing.UserID == resp.UserID && existing.LayerID == resp.LayerID {
			return repositories.ErrDuplicateResponse
		}
	}
	f.responses = append(f.responses, *resp)
	return nil
}

// ---- quotes ----

type fakeQuoteRepo struct {
	mu        sync.Mutex
	quotes    []db_models.Quote
	admins    map[uuid.UUID]bool
	reactions map[string]bool
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{
		admins:    make(map[uuid.UUID]bool),
		reactions: make(map[string]bool),
	}
}

var _ repositories.QuoteRepository = (*fakeQuoteRepo)(nil)

func reactionKey(userID, quoteID uuid.UUID) string {
	return userID.String() + "|" + quoteID.String()
}

func (f *fakeQuoteRepo) addAdminQuote(text string, tags ...string) db_models.Quote {
	adminID := uuid.New()
	f.mu.Lock()
	f.admins[adminID] = true
	f.mu.Unlock()
	quote := db_models.Quote{UserID: adminID, QuoteText: text, Tags: tags}
	quote.ID = uuid.New()
	quote.CreatedAt = time.Now().Unix()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.quotes = append(f.quotes, quote)
	return quote
}

func (f *fakeQuoteRepo) Create(_ context.Context, quote *db_models.Quote) error {
	if quote.ID == uuid.Nil {
		quote.ID = uuid.New()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.quotes = append(f.quotes, *quote)
	return nil
}

func (f *fakeQuoteRepo) ByID(_ context.Context, id uuid.UUID) (*db_models.Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.quotes {
		if f.quotes[i].ID == id {
			quote := f.quotes[i]
			return &quote, nil
		}
	}
	return nil, nil
}

func (f *fakeQuoteRepo) ByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*db_models.Quote, error) {
	quote, err := f.ByID(ctx, id)
	if err != nil || quote == nil || quote.UserID != userID {
		return nil, err
	}
	return quote, nil
}

func (f *fakeQuoteRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]db_models.Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var quotes []db_models.Quote
	for _, q := range f.quotes {
		if q.UserID == userID {
			quotes = append(quotes, q)
		}
	}
	return quotes, nil
}

func (f *fakeQuoteRepo) Update(_ context.Context, quote *db_models.Quote) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.quotes {
		if f.quotes[i].ID == quote.ID {
			f.quotes[i] = *quote
		}
	}
	return nil
}

func (f *fakeQuoteRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.quotes {
		if f.quotes[i].ID == id {
			f.quotes = append(f.quotes[:i], f.quotes[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeQuoteRepo) adminPool(focusAreas []string) []db_models.Quote {
	var pool []db_models.Quote
	for _, q := range f.quotes {
		if !f.admins[q.UserID] {
			continue
		}
		if len(focusAreas) > 0 && !tagsOverlap(q.Tags, focusAreas) {
			continue
		}
		pool = append(pool, q)
	}
	return pool
}

func (f *fakeQuoteRepo) CountAdminPool(_ context.Context, focusAreas []string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.adminPool(focusAreas))), nil
}

func (f *fakeQuoteRepo) AdminPoolByOffset(_ context.Context, focusAreas []string, offset int) (*db_models.Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pool := f.adminPool(focusAreas)
	if offset >= len(pool) {
		return nil, nil
	}
	quote := pool[offset]
	return &quote, nil
}

func (f *fakeQuoteRepo) HasReaction(_ context.Context, userID, quoteID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reactions[reactionKey(userID, quoteID)], nil
}

func (f *fakeQuoteRepo) ToggleReaction(_ context.Context, userID, quoteID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := reactionKey(userID, quoteID)
	if f.reactions[key] {
		delete(f.reactions, key)
		return false, nil
	}
	f.reactions[key] = true
	return true, nil
}

// ---- journals ----

type fakeJournalRepo struct {
	mu       sync.Mutex
	journals []db_models.Journal
	likes    map[string]bool
}

func newFakeJournalRepo() *fakeJournalRepo {
	return &fakeJournalRepo{likes: make(map[string]bool)}
}

var _ repositories.JournalRepository = (*fakeJournalRepo)(nil)

func (f *fakeJournalRepo) Create(_ context.Context, journal *db_models.Journal) error {
	if journal.ID == uuid.Nil {
		journal.ID = uuid.New()
	}
	if journal.CreatedAt == 0 {
		journal.CreatedAt = time.Now().Unix()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.journals = append(f.journals, *journal)
	return nil
}

func (f *fakeJournalRepo) ByID(_ context.Context, id uuid.UUID) (*db_models.Journal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.journals {
		if f.journals[i].ID == id {
			journal := f.journals[i]
			return &journal, nil
		}
	}
	return nil, nil
}

func (f *fakeJournalRepo) ListAll(_ context.Context) ([]db_models.Journal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]db_models.Journal(nil), f.journals...), nil
}

func (f *fakeJournalRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]db_models.Journal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var journals []db_models.Journal
	for _, j := range f.journals {
		if j.UserID == userID {
			journals = append(journals, j)
		}
	}
	return journals, nil
}

func (f *fakeJournalRepo) ListRecommended(_ context.Context, excludeUserID uuid.UUID, limit int) ([]db_models.Journal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var journals []db_models.Journal
	for _, j := range f.journals {
		if j.UserID != excludeUserID {
			journals = append(journals, j)
		}
		if len(journals) == limit {
			break
		}
	}
	return journals, nil
}

func (f *fakeJournalRepo) Update(_ context.Context, journal *db_models.Journal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.journals {
		if f.journals[i].ID == journal.ID {
			f.journals[i] = *journal
		}
	}
	return nil
}

func (f *fakeJournalRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.journals {
		if f.journals[i].ID == id {
			f.journals = append(f.journals[:i], f.journals[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeJournalRepo) CountCreatedSince(_ context.Context, userID uuid.UUID, since int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, j := range f.journals {
		if j.UserID == userID && j.CreatedAt >= since {
			count++
		}
	}
	return count, nil
}

func (f *fakeJournalRepo) ToggleLike(_ context.Context, userID, journalID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := reactionKey(userID, journalID)
	if f.likes[key] {
		delete(f.likes, key)
		return false, nil
	}
	f.likes[key] = true
	return true, nil
}

func (f *fakeJournalRepo) IsLiked(_ context.Context, userID, journalID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.likes[reactionKey(userID, journalID)], nil
}

func (f *fakeJournalRepo) LikeCount(_ context.Context, journalID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for key := range f.likes {
		if strings.HasSuffix(key, "|"+journalID.String()) {
			count++
		}
	}
	return count, nil
}

// ---- subscriptions ----

type fakeSubscriptionRepo struct {
	mu           sync.Mutex
	subs         map[uuid.UUID]*db_models.UserSubscription
	access       map[string]*db_models.SubscriptionAccess
	transactions []db_models.PaymentTransaction
	users        *fakeUserRepo
}

func newFakeSubscriptionRepo(users *fakeUserRepo) *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{
		subs:   make(map[uuid.UUID]*db_models.UserSubscription),
		access: make(map[string]*db_models.SubscriptionAccess),
		users:  users,
	}
}

var _ repositories.SubscriptionRepository = (*fakeSubscriptionRepo)(nil)

func (f *fakeSubscriptionRepo) addAccess(access *db_models.SubscriptionAccess) *db_models.SubscriptionAccess {
	if access.ID == uuid.Nil {
		access.ID = uuid.New()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.access[access.SubscriptionName] = access
	return access
}

func (f *fakeSubscriptionRepo) SubscriptionByUserID(_ context.Context, userID uuid.UUID) (*db_models.UserSubscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sub, ok := f.subs[userID]
	if !ok {
		return nil, nil
	}
	copied := *sub
	for _, access := range f.access {
		if access.ID == sub.AccessID {
			copied.Access = *access
		}
	}
	return &copied, nil
}

func (f *fakeSubscriptionRepo) SubscriptionByStripeID(_ context.Context, stripeID string) (*db_models.UserSubscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, sub := range f.subs {
		if sub.StripeSubscriptionID == stripeID {
			copied := *sub
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeSubscriptionRepo) AccessByName(_ context.Context, name string) (*db_models.SubscriptionAccess, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.access[strings.ToLower(name)], nil
}

func (f *fakeSubscriptionRepo) AccessByID(_ context.Context, id uuid.UUID) (*db_models.SubscriptionAccess, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, access := range f.access {
		if access.ID == id {
			return access, nil
		}
	}
	return nil, nil
}

func (f *fakeSubscriptionRepo) ListAccess(_ context.Context) ([]db_models.SubscriptionAccess, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rows []db_models.SubscriptionAccess
	for _, access := range f.access {
		rows = append(rows, *access)
	}
	return rows, nil
}

func (f *fakeSubscriptionRepo) CreateAccess(_ context.Context, access *db_models.SubscriptionAccess) error {
	f.addAccess(access)
	return nil
}

func (f *fakeSubscriptionRepo) UpsertSubscriptionWithTransaction(ctx context.Context, sub *db_models.UserSubscription, txn *db_models.PaymentTransaction, planLabel string) error {
	f.mu.Lock()
	if existing, ok := f.subs[sub.UserID]; ok {
		sub.ID = existing.ID
		sub.TimesRenewed = existing.TimesRenewed
	} else if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	copied := *sub
	f.subs[sub.UserID] = &copied
	txn.SubscriptionID = &sub.ID
	f.transactions = append(f.transactions, *txn)
	f.mu.Unlock()
	return f.users.UpdatePlanLabel(ctx, sub.UserID, planLabel)
}

func (f *fakeSubscriptionRepo) UpdateStatus(_ context.Context, stripeID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, sub := range f.subs {
		if sub.StripeSubscriptionID == stripeID {
			sub.Status = status
		}
	}
	return nil
}

func (f *fakeSubscriptionRepo) IncrementTimesRenewed(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, sub := range f.subs {
		if sub.ID == id {
			sub.TimesRenewed++
		}
	}
	return nil
}

func (f *fakeSubscriptionRepo) CreateTransaction(_ context.Context, txn *db_models.PaymentTransaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transactions = append(f.transactions, *txn)
	return nil
}

// ---- mail / notifier / storage ----

type fakeMail struct {
	mu         sync.Mutex
	resetSends []string
}

func (f *fakeMail) SendMailToNotifyUser(string, string, string, string, string) error { return nil }

func (f *fakeMail) SendMailToResetPassword(email, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetSends = append(f.resetSends, email)
	return nil
}

type fakeNotifier struct {
	mu       sync.Mutex
	subjects []string
}

func (f *fakeNotifier) NotifyAdmins(_ context.Context, subject, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subjects = append(f.subjects, subject)
	return nil
}

type fakeObjectStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: make(map[string][]byte)}
}

func (f *fakeObjectStore) Put(name string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[name] = data
	return nil
}

func (f *fakeObjectStore) Delete(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, name)
	return nil
}

func (f *fakeObjectStore) URL(name string) string { return "/storage/" + name }
