package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tienda-admin/internal/application/ports"
	"tienda-admin/internal/domain/activity"
	domain "tienda-admin/internal/domain/user"
	jwtSvc "tienda-admin/internal/infrastructure/jwt"
	"tienda-admin/internal/interface/web/flash"
	"tienda-admin/internal/interface/web/middleware"
	"tienda-admin/internal/interface/web/session"
)

const testSecret = "test-secret"

type FakeAuth struct {
	AuthenticateFunc func(ctx context.Context, email, password string) (*domain.User, error)
}

func (f *FakeAuth) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if f.AuthenticateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.AuthenticateFunc(ctx, email, password)
}

type FakeUserService struct {
	FindUserByIDFunc   func(ctx context.Context, id domain.ID) (*domain.User, error)
	FindUsersFunc      func(ctx context.Context) (domain.Users, error)
	CreateUserFunc     func(ctx context.Context, actorID domain.ID, u domain.User, password string) (*domain.User, error)
	RegisterUserFunc   func(ctx context.Context, u domain.User, password string) (*domain.User, error)
	UpdateUserFunc     func(ctx context.Context, actorID domain.ID, u domain.User) (*domain.User, error)
	DeactivateUserFunc func(ctx context.Context, actorID, id domain.ID) error
}

func (f *FakeUserService) FindUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	if f.FindUserByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindUserByIDFunc(ctx, id)
}
func (f *FakeUserService) FindUsers(ctx context.Context) (domain.Users, error) {
	if f.FindUsersFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindUsersFunc(ctx)
}
func (f *FakeUserService) CreateUser(ctx context.Context, actorID domain.ID, u domain.User, password string) (*domain.User, error) {
	if f.CreateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateUserFunc(ctx, actorID, u, password)
}
func (f *FakeUserService) RegisterUser(ctx context.Context, u domain.User, password string) (*domain.User, error) {
	if f.RegisterUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.RegisterUserFunc(ctx, u, password)
}
func (f *FakeUserService) UpdateUser(ctx context.Context, actorID domain.ID, u domain.User) (*domain.User, error) {
	if f.UpdateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateUserFunc(ctx, actorID, u)
}
func (f *FakeUserService) DeactivateUser(ctx context.Context, actorID, id domain.ID) error {
	if f.DeactivateUserFunc == nil {
		return errors.New("not used")
	}
	return f.DeactivateUserFunc(ctx, actorID, id)
}

type recorded struct {
	UserID      domain.ID
	Action      activity.Action
	Description string
}

type FakeActivityService struct {
	mu             sync.Mutex
	Records        []recorded
	FindRecentFunc func(ctx context.Context) (activity.Entries, error)
}

func (f *FakeActivityService) Record(_ context.Context, userID domain.ID, action activity.Action, description string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Records = append(f.Records, recorded{UserID: userID, Action: action, Description: description})
}

func (f *FakeActivityService) FindRecent(ctx context.Context) (activity.Entries, error) {
	if f.FindRecentFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindRecentFunc(ctx)
}

type testEnv struct {
	r        *gin.Engine
	jwt      *jwtSvc.Service
	activity ports.ActivityService
}

func setupRouter(t *testing.T, as ports.Auth, us ports.UserService, acts ports.ActivityService) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	j := jwtSvc.New(testSecret)
	sessions := session.NewStore(j, time.Hour, false)
	flashes := flash.New(j, logger, false)

	r := gin.New()
	require.NoError(t, LoadTemplates(r))
	r.Use(middleware.LoadSession(sessions))

	NewAuthController(r, logger, as, us, acts, sessions, flashes)
	NewUserController(r, logger, us, acts, flashes)
	NewActivityController(r, logger, acts, flashes)

	return &testEnv{r: r, jwt: j, activity: acts}
}

func (e *testEnv) sessionCookie(t *testing.T, id domain.ID, email string) *http.Cookie {
	t.Helper()
	tok, err := e.jwt.GenerateJWT(int64(id), email, time.Hour)
	require.NoError(t, err)

	return &http.Cookie{Name: session.CookieName, Value: tok}
}

func (e *testEnv) do(t *testing.T, method, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rr := httptest.NewRecorder()
	e.r.ServeHTTP(rr, req)
	return rr
}

// notices decodes the flash cookie the response leaves behind.
func (e *testEnv) notices(t *testing.T, rr *httptest.ResponseRecorder) []jwtSvc.Notice {
	t.Helper()

	c := responseCookie(rr, flash.CookieName)
	if c == nil || c.Value == "" {
		return nil
	}
	notices, err := e.jwt.ValidateFlash(c.Value)
	require.NoError(t, err)

	return notices
}

func responseCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	var found *http.Cookie
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			found = c
		}
	}
	return found
}

func notice(category, message string) []jwtSvc.Notice {
	return []jwtSvc.Notice{{Category: category, Message: message}}
}

func someDomainUser() *domain.User {
	return &domain.User{
		ID:        3,
		Email:     "ana@tienda.com",
		Name:      "Ana",
		Lastname:  "García",
		Phone:     "555-1234",
		Address:   "Calle 1",
		Active:    true,
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}
