package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sevasetu/internal/adapters/persistence/models"
	"sevasetu/internal/adapters/persistence/repositories"
)

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }

// In-memory repository fakes keep service tests independent of MySQL.
// They return gorm.ErrRecordNotFound like the real repositories do.

type fakeProfileRepo struct {
	profiles map[string]*models.CitizenProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*models.CitizenProfile)}
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *models.CitizenProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID string) (*models.CitizenProfile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return profile, nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, profile *models.CitizenProfile) error {
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeProfileRepo) ListUserIDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(f.profiles))
	for id := range f.profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

type fakeSchemeRepo struct {
	schemes []*models.Scheme
}

func newFakeSchemeRepo(schemes ...*models.Scheme) *fakeSchemeRepo {
	repo := &fakeSchemeRepo{}
	for _, s := range schemes {
		_ = repo.Create(context.Background(), s)
	}
	return repo
}

func (f *fakeSchemeRepo) Create(ctx context.Context, scheme *models.Scheme) error {
	if scheme.ID == "" {
		scheme.ID = uuid.NewString()
	}
	f.schemes = append(f.schemes, scheme)
	return nil
}

func (f *fakeSchemeRepo) GetAllActive(ctx context.Context) ([]*models.Scheme, error) {
	var active []*models.Scheme
	for _, s := range f.schemes {
		if s.IsActive {
			active = append(active, s)
		}
	}
	return active, nil
}

func (f *fakeSchemeRepo) GetByID(ctx context.Context, id string) (*models.Scheme, error) {
	for _, s := range f.schemes {
		if s.ID == id && s.IsActive {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSchemeRepo) List(ctx context.Context, filters *repositories.SchemeFilters, offset, limit int) ([]*models.Scheme, int64, error) {
	var matched []*models.Scheme
	for _, s := range f.schemes {
		if !s.IsActive {
			continue
		}
		if filters != nil {
			if filters.Category != "" && !strings.EqualFold(s.Category, filters.Category) {
				continue
			}
			if filters.Search != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(filters.Search)) {
				continue
			}
		}
		matched = append(matched, s)
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (f *fakeSchemeRepo) Categories(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var categories []string
	for _, s := range f.schemes {
		if s.IsActive && !seen[s.Category] {
			seen[s.Category] = true
			categories = append(categories, s.Category)
		}
	}
	return categories, nil
}

func (f *fakeSchemeRepo) Popular(ctx context.Context, limit int) ([]*models.Scheme, error) {
	active, _ := f.GetAllActive(ctx)
	if len(active) > limit {
		active = active[:limit]
	}
	return active, nil
}

func (f *fakeSchemeRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	for _, s := range f.schemes {
		if s.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSchemeRepo) deactivate(id string) {
	for _, s := range f.schemes {
		if s.ID == id {
			s.IsActive = false
		}
	}
}

type fakeRecommendationRepo struct {
	byUser   map[string][]*models.Recommendation
	replaces int
}

func newFakeRecommendationRepo() *fakeRecommendationRepo {
	return &fakeRecommendationRepo{byUser: make(map[string][]*models.Recommendation)}
}

func (f *fakeRecommendationRepo) GetByUserID(ctx context.Context, userID string) ([]*models.Recommendation, error) {
	recs := f.byUser[userID]
	sorted := make([]*models.Recommendation, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	return sorted, nil
}

func (f *fakeRecommendationRepo) ReplaceForUser(ctx context.Context, userID string, recs []*models.Recommendation) error {
	f.replaces++
	now := time.Now()
	for _, rec := range recs {
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = now
		}
	}
	f.byUser[userID] = recs
	return nil
}

func (f *fakeRecommendationRepo) DeleteByUserID(ctx context.Context, userID string) error {
	delete(f.byUser, userID)
	return nil
}

type fakeRefreshTokenRepo struct {
	tokens map[string]*models.RefreshToken // by token hash
	nextID uint
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: make(map[string]*models.RefreshToken)}
}

func (f *fakeRefreshTokenRepo) Create(ctx context.Context, token *models.RefreshToken) error {
	f.nextID++
	token.ID = f.nextID
	f.tokens[token.TokenHash] = token
	return nil
}

func (f *fakeRefreshTokenRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	if token, ok := f.tokens[tokenHash]; ok {
		return token, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRefreshTokenRepo) Revoke(ctx context.Context, id uint) error {
	now := time.Now()
	for _, token := range f.tokens {
		if token.ID == id {
			token.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeRefreshTokenRepo) RevokeByTokenHash(ctx context.Context, tokenHash string) error {
	if token, ok := f.tokens[tokenHash]; ok {
		now := time.Now()
		token.RevokedAt = &now
	}
	return nil
}

func (f *fakeRefreshTokenRepo) RevokeAllByUserID(ctx context.Context, userID string) error {
	now := time.Now()
	for _, token := range f.tokens {
		if token.UserID == userID {
			token.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeRefreshTokenRepo) DeleteExpired(ctx context.Context) error {
	for hash, token := range f.tokens {
		if token.IsExpired() {
			delete(f.tokens, hash)
		}
	}
	return nil
}

type fakeApplicationRepo struct {
	applications map[string]*models.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[string]*models.Application)}
}

func (f *fakeApplicationRepo) Create(ctx context.Context, app *models.Application) error {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	f.applications[app.ID] = app
	return nil
}

func (f *fakeApplicationRepo) GetByID(ctx context.Context, id string) (*models.Application, error) {
	app, ok := f.applications[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return app, nil
}

func (f *fakeApplicationRepo) GetByUserID(ctx context.Context, userID string) ([]*models.Application, error) {
	var apps []*models.Application
	for _, app := range f.applications {
		if app.UserID == userID {
			apps = append(apps, app)
		}
	}
	return apps, nil
}

func (f *fakeApplicationRepo) Update(ctx context.Context, app *models.Application) error {
	f.applications[app.ID] = app
	return nil
}

type fakeGrievanceRepo struct {
	grievances map[string]*models.Grievance
}

func newFakeGrievanceRepo() *fakeGrievanceRepo {
	return &fakeGrievanceRepo{grievances: make(map[string]*models.Grievance)}
}

func (f *fakeGrievanceRepo) Create(ctx context.Context, g *models.Grievance) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	f.grievances[g.ID] = g
	return nil
}

func (f *fakeGrievanceRepo) GetByID(ctx context.Context, id string) (*models.Grievance, error) {
	g, ok := f.grievances[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return g, nil
}

func (f *fakeGrievanceRepo) GetByUserID(ctx context.Context, userID string) ([]*models.Grievance, error) {
	var out []*models.Grievance
	for _, g := range f.grievances {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGrievanceRepo) Update(ctx context.Context, g *models.Grievance) error {
	f.grievances[g.ID] = g
	return nil
}
