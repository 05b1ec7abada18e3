package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/travelog/backend/internal/application"
	"github.com/travelog/backend/internal/domain/entity"
	"github.com/travelog/backend/internal/domain/repository"
	handlers "github.com/travelog/backend/internal/interface/http"
	"github.com/travelog/backend/internal/router"
	"github.com/travelog/backend/internal/router/modules"
	"github.com/travelog/backend/pkg/geocode"
	"github.com/travelog/backend/pkg/helpers"
	"github.com/travelog/backend/pkg/validation"
)

// fakeUserRepo and fakeJournalRepo honor the same contracts as the Postgres
// repositories so handlers can be tested end to end without a database.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrEmailTaken
		}
	}
	u.ID = uuid.NewString()
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	u.UpdatedAt = time.Now()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

type fakeJournalRepo struct {
	mu      sync.Mutex
	entries map[int64]*entity.JournalEntry
	nextID  int64
}

func (r *fakeJournalRepo) ListByUser(_ context.Context, userID string) ([]*entity.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.JournalEntry, 0)
	for _, e := range r.entries {
		if e.UserID == userID {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].VisitedDate.Equal(out[j].VisitedDate) {
			return out[i].VisitedDate.After(out[j].VisitedDate)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *fakeJournalRepo) Create(_ context.Context, e *entity.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = r.nextID
	r.nextID++
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}

func (r *fakeJournalRepo) Update(_ context.Context, userID string, id int64, patch entity.JournalEntryPatch) (*entity.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok || e.UserID != userID {
		return nil, repository.ErrNotFound
	}
	if patch.City != nil {
		e.City = *patch.City
	}
	if patch.Country != nil {
		e.Country = *patch.Country
	}
	if patch.Latitude != nil {
		e.Latitude = *patch.Latitude
	}
	if patch.Longitude != nil {
		e.Longitude = *patch.Longitude
	}
	if patch.VisitedDate != nil {
		e.VisitedDate = *patch.VisitedDate
	}
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Description != nil {
		e.Description = patch.Description
	}
	if patch.Companions != nil {
		e.Companions = patch.Companions
	}
	if patch.Rating != nil {
		e.Rating = patch.Rating
	}
	e.UpdatedAt = time.Now()
	cp := *e
	return &cp, nil
}

func (r *fakeJournalRepo) Delete(_ context.Context, userID string, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok || e.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

// stubResolver is an injected geocoding capability for tests.
type stubResolver struct {
	place geocode.Place
	err   error
}

func (s stubResolver) Reverse(context.Context, float64, float64) (geocode.Place, error) {
	return s.place, s.err
}

type testApp struct {
	server *httptest.Server
	client *http.Client
	jwt    *helpers.JWTManager
}

// newTestApp wires the full route tree over in-memory repositories, the same
// way main wires it over Postgres.
func newTestApp(t *testing.T, resolver geocode.Resolver) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	userRepo := &fakeUserRepo{users: map[string]*entity.User{}}
	journalRepo := &fakeJournalRepo{entries: map[int64]*entity.JournalEntry{}, nextID: 1}

	jwt := &helpers.JWTManager{Secret: []byte("test-secret"), TTL: 7 * 24 * time.Hour}
	cookies := helpers.NewCookie("", false)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	authSvc := application.NewAuthService(userRepo, nil, "", nil, logger)
	journalSvc := application.NewJournalService(journalRepo, logger)

	if resolver == nil {
		resolver = stubResolver{place: geocode.Place{City: "Paris", Country: "France"}}
	}

	engine := gin.New()
	reg := router.NewRegistry(engine)
	reg.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, jwt, logger, "", false), jwt, cookies))
	reg.Add(modules.NewProfileModule(handlers.NewProfileHandler(authSvc, logger), jwt, cookies))
	reg.Add(modules.NewJournalModule(handlers.NewJournalHandler(journalSvc, logger), handlers.NewGeocodeHandler(resolver, logger), jwt, cookies))
	reg.RegisterAll()

	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar.New() error: %v", err)
	}
	return &testApp{
		server: server,
		client: &http.Client{Jar: jar},
		jwt:    jwt,
	}
}

// withFreshJar returns a second client against the same server, so tests can
// act as a different authenticated user.
func (a *testApp) withFreshJar(t *testing.T) *testApp {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar.New() error: %v", err)
	}
	return &testApp{server: a.server, client: &http.Client{Jar: jar}, jwt: a.jwt}
}

type envelope struct {
	Status  int               `json:"status"`
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    map[string]any    `json:"data"`
	Error   map[string]string `json:"error"`
}

func (a *testApp) do(t *testing.T, method, path string, body any) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, a.server.URL+path, reader)
	if err != nil {
		t.Fatalf("NewRequest() error: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := a.client.Do(req)
	if err != nil {
		t.Fatalf("%s %s error: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			t.Fatalf("%s %s: bad envelope %q: %v", method, path, raw, err)
		}
	}
	return resp.StatusCode, env
}

func (a *testApp) register(t *testing.T, email, password, fullName string) envelope {
	t.Helper()
	status, env := a.do(t, http.MethodPost, "/api/auth/register", gin.H{
		"email": email, "password": password, "fullName": fullName,
	})
	if status != http.StatusCreated {
		t.Fatalf("register status = %d, body = %+v", status, env)
	}
	return env
}

func userField(t *testing.T, env envelope, key string) string {
	t.Helper()
	user, ok := env.Data["user"].(map[string]any)
	if !ok {
		t.Fatalf("no user object in %+v", env.Data)
	}
	v, _ := user[key].(string)
	return v
}
