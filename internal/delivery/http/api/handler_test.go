package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/token"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init()
	os.Exit(m.Run())
}

// Stub usecases. Only the methods a test exercises are wired; the rest
// panic so an unexpected call fails loudly.

type stubAuthUC struct {
	login       func(domain.LoginRequest) (*domain.LoginResult, error)
	currentUser func(int64) (*domain.User, error)
}

func (s *stubAuthUC) Login(_ context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	return s.login(req)
}

func (s *stubAuthUC) CurrentUser(_ context.Context, id int64) (*domain.User, error) {
	return s.currentUser(id)
}

func (s *stubAuthUC) ChangePassword(context.Context, int64, domain.ChangePasswordRequest) error {
	return nil
}

type stubProjectUC struct {
	list func(domain.ProjectFilter) ([]domain.Project, error)
	get  func(int64) (*domain.Project, error)
}

func (s *stubProjectUC) List(_ context.Context, f domain.ProjectFilter) ([]domain.Project, error) {
	return s.list(f)
}

func (s *stubProjectUC) Get(_ context.Context, id int64) (*domain.Project, error) {
	return s.get(id)
}

func (s *stubProjectUC) Create(context.Context, domain.ProjectInput, *domain.FileUpload) (*domain.Project, error) {
	panic("not wired")
}

func (s *stubProjectUC) Update(context.Context, int64, domain.ProjectInput, *domain.FileUpload) (*domain.Project, error) {
	panic("not wired")
}

func (s *stubProjectUC) Delete(context.Context, int64) error { return nil }

type stubContactUC struct {
	submitted *domain.ContactRequest
	listed    *domain.ContactFilter
}

func (s *stubContactUC) Submit(_ context.Context, req domain.ContactRequest, ip, ua string) (*domain.ContactMessage, error) {
	s.submitted = &req
	return &domain.ContactMessage{ID: 1}, nil
}

func (s *stubContactUC) List(_ context.Context, filter domain.ContactFilter) ([]domain.ContactMessage, domain.Pagination, error) {
	s.listed = &filter
	return []domain.ContactMessage{}, domain.Pagination{Page: 1, Limit: 10}, nil
}

func (s *stubContactUC) MarkRead(context.Context, int64) error { return nil }
func (s *stubContactUC) Delete(context.Context, int64) error   { return nil }

type stubSkillUC struct {
	created *domain.SkillInput
}

func (s *stubSkillUC) List(context.Context) ([]domain.Skill, error) {
	return []domain.Skill{}, nil
}

func (s *stubSkillUC) Grouped(context.Context) (map[string][]domain.Skill, error) {
	return map[string][]domain.Skill{}, nil
}

func (s *stubSkillUC) Create(_ context.Context, input domain.SkillInput) (*domain.Skill, error) {
	s.created = &input
	skill := &domain.Skill{ID: 1, Name: input.Name, Category: input.Category, Active: true}
	if input.Level != nil {
		skill.Level = *input.Level
	}
	return skill, nil
}

func (s *stubSkillUC) Update(context.Context, int64, domain.SkillInput) (*domain.Skill, error) {
	panic("not wired")
}

func (s *stubSkillUC) Delete(context.Context, int64) error { return nil }

var testTokens = token.NewManager("handler-test-secret", time.Hour)

func adminAuthUC() *stubAuthUC {
	return &stubAuthUC{
		currentUser: func(id int64) (*domain.User, error) {
			return &domain.User{ID: id, Email: "admin@test.dev", Role: "admin"}, nil
		},
	}
}

// newTestRouter mirrors the production middleware chain with stub usecases.
func newTestRouter(register func(public, protected *gin.RouterGroup)) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())

	public := r.Group("/api")
	protected := public.Group("")
	protected.Use(middleware.AuthMiddleware(testTokens, adminAuthUC()))

	register(public, protected)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginEndpoint(t *testing.T) {
	authUC := adminAuthUC()
	authUC.login = func(req domain.LoginRequest) (*domain.LoginResult, error) {
		if req.Password != "correct" {
			return nil, apperror.Unauthorized("Invalid credentials")
		}
		return &domain.LoginResult{Token: "signed-token", User: &domain.User{ID: 1, Email: req.Email}}, nil
	}

	noLimiter := gin.HandlerFunc(func(c *gin.Context) { c.Next() })
	r := newTestRouter(func(public, protected *gin.RouterGroup) {
		NewAuthHandler(public, protected, noLimiter, authUC)
	})

	t.Run("success returns token and user", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/auth/login",
			gin.H{"email": "admin@test.dev", "password": "correct"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "signed-token", body["token"])
	})

	t.Run("bad credentials use the error envelope", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/auth/login",
			gin.H{"email": "admin@test.dev", "password": "wrong"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Invalid credentials", body["error"])
	})

	t.Run("validation failures use the errors array", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/auth/login",
			gin.H{"email": "not-an-email"}, "")
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body struct {
			Errors []string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Errors)
	})
}

func TestAuthMiddlewareGate(t *testing.T) {
	skillUC := &stubSkillUC{}
	r := newTestRouter(func(public, protected *gin.RouterGroup) {
		NewSkillHandler(public, protected, skillUC)
	})

	payload := gin.H{"name": "Go", "category": "backend", "level": 90}

	t.Run("missing token is rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/skills", payload, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/skills", payload, "garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token passes through", func(t *testing.T) {
		signed, err := testTokens.Generate(1, "admin@test.dev", "admin")
		require.NoError(t, err)

		w := doJSON(t, r, http.MethodPost, "/api/skills", payload, signed)
		require.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, skillUC.created)
		assert.Equal(t, "Go", skillUC.created.Name)
	})

	t.Run("public listing needs no token", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/skills", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestProjectEndpoints(t *testing.T) {
	projectUC := &stubProjectUC{
		list: func(f domain.ProjectFilter) ([]domain.Project, error) {
			if f.FeaturedOnly {
				return []domain.Project{{ID: 2, Title: "featured"}}, nil
			}
			return []domain.Project{{ID: 1}, {ID: 2}}, nil
		},
		get: func(id int64) (*domain.Project, error) {
			if id != 1 {
				return nil, apperror.NotFound("Project not found")
			}
			return &domain.Project{ID: 1, Title: "portfolio"}, nil
		},
	}
	r := newTestRouter(func(public, protected *gin.RouterGroup) {
		NewProjectHandler(public, protected, projectUC)
	})

	t.Run("list honors the featured query", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/projects?featured=true", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var projects []domain.Project
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
		require.Len(t, projects, 1)
		assert.Equal(t, "featured", projects[0].Title)
	})

	t.Run("unknown id maps to 404 envelope", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/projects/99", nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Project not found", body["error"])
	})

	t.Run("non-numeric id is a 400", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/projects/abc", nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestContactEndpoints(t *testing.T) {
	contactUC := &stubContactUC{}
	r := newTestRouter(func(public, protected *gin.RouterGroup) {
		NewContactHandler(public, protected, contactUC)
	})

	t.Run("submit accepts a valid message", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/contact", gin.H{
			"name":    "Visitor",
			"email":   "v@test.dev",
			"message": "a sufficiently long message",
		}, "")
		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, contactUC.submitted)
		assert.Equal(t, "Visitor", contactUC.submitted.Name)
	})

	t.Run("terse but complete message is accepted", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/contact", gin.H{
			"name":    "A",
			"email":   "a@b.com",
			"message": "hi",
		}, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing message fails validation", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/contact", gin.H{
			"name":  "Visitor",
			"email": "not-an-email",
		}, "")
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body struct {
			Errors []string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Errors)
	})

	t.Run("inbox listing is admin only", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/contact", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		signed, err := testTokens.Generate(1, "admin@test.dev", "admin")
		require.NoError(t, err)

		w = doJSON(t, r, http.MethodGet, "/api/contact", nil, signed)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body, "messages")
		assert.Contains(t, body, "pagination")

		require.NotNil(t, contactUC.listed)
		assert.Equal(t, 1, contactUC.listed.Page)
		assert.Equal(t, 10, contactUC.listed.Limit)
	})
}
