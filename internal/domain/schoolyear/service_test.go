package schoolyear

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"volunteer-tracker-go/internal/domain/accounting"
	"volunteer-tracker-go/internal/domain/validation"
	"volunteer-tracker-go/pkg/civil"
)

type fakeYearRepo struct {
	mu             sync.Mutex
	years          map[string]*SchoolYear
	families       []string
	statuses       map[string]bool
	getActiveCalls int
}

func newFakeYearRepo() *fakeYearRepo {
	return &fakeYearRepo{
		years:    make(map[string]*SchoolYear),
		statuses: make(map[string]bool),
	}
}

func (r *fakeYearRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	years := make(map[string]SchoolYear, len(r.years))
	for id, year := range r.years {
		years[id] = *year
	}
	statuses := make(map[string]bool, len(r.statuses))
	for key, value := range r.statuses {
		statuses[key] = value
	}

	if err := fn(r); err != nil {
		r.years = make(map[string]*SchoolYear, len(years))
		for id, year := range years {
			year := year
			r.years[id] = &year
		}
		r.statuses = statuses
		return err
	}
	return nil
}

func (r *fakeYearRepo) GetActive(ctx context.Context) (*SchoolYear, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getActiveCalls++
	for _, year := range r.years {
		if year.IsActive {
			clone := *year
			return &clone, nil
		}
	}
	return nil, ErrNoActiveSchoolYear
}

func (r *fakeYearRepo) GetByID(ctx context.Context, id string) (*SchoolYear, error) {
	year, ok := r.years[id]
	if !ok {
		return nil, ErrSchoolYearNotFound
	}
	clone := *year
	return &clone, nil
}

func (r *fakeYearRepo) List(ctx context.Context) ([]SchoolYear, error) {
	result := make([]SchoolYear, 0, len(r.years))
	for _, year := range r.years {
		result = append(result, *year)
	}
	return result, nil
}

func (r *fakeYearRepo) Create(ctx context.Context, year *SchoolYear) error {
	clone := *year
	r.years[year.ID] = &clone
	return nil
}

func (r *fakeYearRepo) Update(ctx context.Context, year *SchoolYear) error {
	if _, ok := r.years[year.ID]; !ok {
		return ErrSchoolYearNotFound
	}
	clone := *year
	r.years[year.ID] = &clone
	return nil
}

func (r *fakeYearRepo) DeactivateAll(ctx context.Context) error {
	for _, year := range r.years {
		year.IsActive = false
	}
	return nil
}

func (r *fakeYearRepo) MarkActive(ctx context.Context, id string) (bool, error) {
	year, ok := r.years[id]
	if !ok {
		return false, nil
	}
	year.IsActive = true
	return true, nil
}

func (r *fakeYearRepo) BackfillFamilyStatus(ctx context.Context, yearID string) (int64, error) {
	var created int64
	for _, familyID := range r.families {
		key := familyID + "/" + yearID
		if r.statuses[key] {
			continue
		}
		r.statuses[key] = true
		created++
	}
	return created, nil
}

func (r *fakeYearRepo) activeCount() int {
	count := 0
	for _, year := range r.years {
		if year.IsActive {
			count++
		}
	}
	return count
}

type fakeCache struct {
	year  *SchoolYear
	clear int
}

func (c *fakeCache) Get() (*SchoolYear, bool) {
	if c.year == nil {
		return nil, false
	}
	return c.year, true
}

func (c *fakeCache) Set(year *SchoolYear, ttl time.Duration) {
	c.year = year
}

func (c *fakeCache) Clear() {
	c.year = nil
	c.clear++
}

func seedYear(repo *fakeYearRepo, id string, active bool) {
	repo.years[id] = &SchoolYear{
		ID:              id,
		Name:            id,
		StartDate:       civil.MustParse("2024-09-01"),
		EndDate:         civil.MustParse("2025-06-30"),
		RequiredHours:   50,
		HourlyRateCents: accounting.FromFloat(20),
		IsActive:        active,
	}
}

func TestCurrentCachesActiveYear(t *testing.T) {
	repo := newFakeYearRepo()
	seedYear(repo, "2024-2025", true)
	svc := NewServiceWithCache(repo, &fakeCache{}, time.Hour)

	for i := 0; i < 3; i++ {
		year, err := svc.Current(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if year.ID != "2024-2025" {
			t.Fatalf("expected 2024-2025, got %q", year.ID)
		}
	}
	if repo.getActiveCalls != 1 {
		t.Fatalf("expected one store read, got %d", repo.getActiveCalls)
	}
}

func TestCurrentDoesNotCacheMissingYear(t *testing.T) {
	repo := newFakeYearRepo()
	svc := NewServiceWithCache(repo, &fakeCache{}, time.Hour)

	if _, err := svc.Current(context.Background()); !errors.Is(err, ErrNoActiveSchoolYear) {
		t.Fatalf("expected ErrNoActiveSchoolYear, got %v", err)
	}

	seedYear(repo, "2024-2025", true)
	year, err := svc.Current(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if year.ID != "2024-2025" {
		t.Fatalf("expected 2024-2025, got %q", year.ID)
	}
	if repo.getActiveCalls != 2 {
		t.Fatalf("expected two store reads, got %d", repo.getActiveCalls)
	}
}

// blockingYearRepo holds GetActive until release is closed and records the
// lookup context's error at that point.
type blockingYearRepo struct {
	*fakeYearRepo
	entered chan struct{}
	release chan struct{}
	once    sync.Once

	mu      sync.Mutex
	ctxErrs []error
}

func (r *blockingYearRepo) GetActive(ctx context.Context) (*SchoolYear, error) {
	r.once.Do(func() { close(r.entered) })
	<-r.release

	r.mu.Lock()
	r.ctxErrs = append(r.ctxErrs, ctx.Err())
	r.mu.Unlock()
	return r.fakeYearRepo.GetActive(ctx)
}

func TestCurrentSharedLookupOutlivesCancelledCaller(t *testing.T) {
	base := newFakeYearRepo()
	seedYear(base, "2024-2025", true)
	repo := &blockingYearRepo{
		fakeYearRepo: base,
		entered:      make(chan struct{}),
		release:      make(chan struct{}),
	}
	svc := NewServiceWithCache(repo, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.Current(ctx)
		firstErr <- err
	}()

	<-repo.entered
	cancel()
	if err := <-firstErr; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled for the cancelled caller, got %v", err)
	}

	close(repo.release)
	year, err := svc.Current(context.Background())
	if err != nil {
		t.Fatalf("expected no error for the other caller, got %v", err)
	}
	if year.ID != "2024-2025" {
		t.Fatalf("expected 2024-2025, got %q", year.ID)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	for _, err := range repo.ctxErrs {
		if err != nil {
			t.Fatalf("expected shared lookup context alive, got %v", err)
		}
	}
}

func TestActivateKeepsSingleActiveYear(t *testing.T) {
	repo := newFakeYearRepo()
	seedYear(repo, "2023-2024", true)
	seedYear(repo, "2024-2025", false)
	seedYear(repo, "2025-2026", false)
	repo.families = []string{"fam-a", "fam-b"}
	cache := &fakeCache{}
	svc := NewServiceWithCache(repo, cache, time.Hour)

	for _, id := range []string{"2024-2025", "2025-2026", "2024-2025", "2024-2025"} {
		year, _, err := svc.Activate(context.Background(), id)
		if err != nil {
			t.Fatalf("activate %s: expected no error, got %v", id, err)
		}
		if !year.IsActive || year.ID != id {
			t.Fatalf("expected %s active, got %+v", id, year)
		}
		if got := repo.activeCount(); got != 1 {
			t.Fatalf("expected exactly one active year, got %d", got)
		}
	}
	if cache.clear != 4 {
		t.Fatalf("expected cache cleared after each activation, got %d", cache.clear)
	}
}

func TestActivateBackfillIsIdempotent(t *testing.T) {
	repo := newFakeYearRepo()
	seedYear(repo, "2024-2025", false)
	repo.families = []string{"fam-a", "fam-b"}
	svc := NewService(repo)

	_, created, err := svc.Activate(context.Background(), "2024-2025")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created != 2 {
		t.Fatalf("expected two status rows, got %d", created)
	}

	_, created, err = svc.Activate(context.Background(), "2024-2025")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created != 0 || len(repo.statuses) != 2 {
		t.Fatalf("expected no new rows, got %d (total %d)", created, len(repo.statuses))
	}
}

func TestActivateUnknownYearRollsBack(t *testing.T) {
	repo := newFakeYearRepo()
	seedYear(repo, "2024-2025", true)
	cache := &fakeCache{}
	svc := NewServiceWithCache(repo, cache, time.Hour)

	_, _, err := svc.Activate(context.Background(), "missing")
	if !errors.Is(err, ErrSchoolYearNotFound) {
		t.Fatalf("expected ErrSchoolYearNotFound, got %v", err)
	}
	if !repo.years["2024-2025"].IsActive {
		t.Fatalf("expected previous active year restored")
	}
	if cache.clear != 0 {
		t.Fatalf("expected cache untouched on failure")
	}
}

func TestCreateAppliesDefaultsAndStaysInactive(t *testing.T) {
	svc := NewService(newFakeYearRepo())

	year, err := svc.Create(context.Background(), CreateInput{
		Name:      " 2025-2026 ",
		StartDate: civil.MustParse("2025-09-01"),
		EndDate:   civil.MustParse("2026-06-30"),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if year.Name != "2025-2026" || year.RequiredHours != 50 || year.HourlyRateCents != 2000 || year.IsActive {
		t.Fatalf("unexpected year %+v", year)
	}
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	svc := NewService(newFakeYearRepo())
	zero := 0
	negative := accounting.Cents(-1)

	cases := map[string]CreateInput{
		"name":          {StartDate: civil.MustParse("2025-09-01"), EndDate: civil.MustParse("2026-06-30")},
		"endDate":       {Name: "x", StartDate: civil.MustParse("2025-09-01"), EndDate: civil.MustParse("2025-08-01")},
		"requiredHours": {Name: "x", StartDate: civil.MustParse("2025-09-01"), EndDate: civil.MustParse("2026-06-30"), RequiredHours: &zero},
		"hourlyRate":    {Name: "x", StartDate: civil.MustParse("2025-09-01"), EndDate: civil.MustParse("2026-06-30"), HourlyRate: &negative},
	}
	for field, input := range cases {
		_, err := svc.Create(context.Background(), input)
		verr, ok := validation.As(err)
		if !ok || verr.Field != field {
			t.Fatalf("expected validation error on %s, got %v", field, err)
		}
	}
}

func TestUpdateActiveYearInvalidatesCache(t *testing.T) {
	repo := newFakeYearRepo()
	seedYear(repo, "2024-2025", true)
	seedYear(repo, "2023-2024", false)
	cache := &fakeCache{}
	svc := NewServiceWithCache(repo, cache, time.Hour)

	if _, err := svc.Current(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	hours := 60
	if _, err := svc.Update(context.Background(), "2023-2024", UpdateInput{RequiredHours: &hours}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cache.clear != 0 {
		t.Fatalf("expected cache kept for inactive year update")
	}

	if _, err := svc.Update(context.Background(), "2024-2025", UpdateInput{RequiredHours: &hours}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cache.clear != 1 {
		t.Fatalf("expected cache cleared, got %d", cache.clear)
	}

	year, err := svc.Current(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if year.RequiredHours != 60 {
		t.Fatalf("expected fresh year with 60 hours, got %d", year.RequiredHours)
	}
}

func TestUpdateWithoutFieldsFails(t *testing.T) {
	repo := newFakeYearRepo()
	seedYear(repo, "2024-2025", false)
	svc := NewService(repo)

	if _, err := svc.Update(context.Background(), "2024-2025", UpdateInput{}); err == nil {
		t.Fatalf("expected validation error")
	}
	name := "renamed"
	if _, err := svc.Update(context.Background(), "missing", UpdateInput{Name: &name}); !errors.Is(err, ErrSchoolYearNotFound) {
		t.Fatalf("expected ErrSchoolYearNotFound, got %v", err)
	}
}
