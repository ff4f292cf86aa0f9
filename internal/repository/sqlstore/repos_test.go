package sqlstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/repository/sqlstore"
)

func strPtr(s string) *string { return &s }

func TestUserRepository(t *testing.T) {
	store := newTestStore(t)
	repo := sqlstore.NewUserRepository(store)
	ctx := context.Background()

	user := &domain.User{Email: "admin@test.dev", PasswordHash: "hash", Role: "admin"}
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)

	t.Run("GetByEmail", func(t *testing.T) {
		got, err := repo.GetByEmail(ctx, "admin@test.dev")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, "admin", got.Role)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("GetByEmail unknown", func(t *testing.T) {
		_, err := repo.GetByEmail(ctx, "nobody@test.dev")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("UpdatePassword", func(t *testing.T) {
		require.NoError(t, repo.UpdatePassword(ctx, user.ID, "newhash"))
		got, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "newhash", got.PasswordHash)
	})

	t.Run("UpdatePassword unknown id", func(t *testing.T) {
		assert.ErrorIs(t, repo.UpdatePassword(ctx, 9999, "x"), domain.ErrNotFound)
	})
}

func TestProfileRepository(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Seed(context.Background(), sqlstore.SeedOptions{}))
	repo := sqlstore.NewProfileRepository(store)
	ctx := context.Background()

	t.Run("Get seeded singleton", func(t *testing.T) {
		p, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), p.ID)
		assert.True(t, p.Available)
	})

	t.Run("Update", func(t *testing.T) {
		years := 7
		available := false
		require.NoError(t, repo.Update(ctx, domain.UpdateProfileRequest{
			Name:            "Jane Doe",
			Title:           "Backend Engineer",
			Summary:         strPtr("short summary"),
			Email:           strPtr("jane@test.dev"),
			YearsExperience: &years,
			Available:       &available,
		}))

		p, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", p.Name)
		assert.Equal(t, 7, p.YearsExperience)
		assert.False(t, p.Available)
		require.NotNil(t, p.Summary)
		assert.Equal(t, "short summary", *p.Summary)
	})

	t.Run("Update with nil optionals keeps previous values", func(t *testing.T) {
		require.NoError(t, repo.Update(ctx, domain.UpdateProfileRequest{
			Name:  "Jane Doe",
			Title: "Backend Engineer",
		}))
		p, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, 7, p.YearsExperience)
		assert.False(t, p.Available)
	})

	t.Run("SetPhoto and SetCV", func(t *testing.T) {
		require.NoError(t, repo.SetPhoto(ctx, "profile-123.jpg"))
		require.NoError(t, repo.SetCV(ctx, "cv-456.pdf"))

		p, err := repo.Get(ctx)
		require.NoError(t, err)
		require.NotNil(t, p.Photo)
		require.NotNil(t, p.CVFile)
		assert.Equal(t, "profile-123.jpg", *p.Photo)
		assert.Equal(t, "cv-456.pdf", *p.CVFile)
	})
}

func TestProjectRepository(t *testing.T) {
	store := newTestStore(t)
	repo := sqlstore.NewProjectRepository(store)
	ctx := context.Background()

	mk := func(title, category string, featured, active bool) *domain.Project {
		p := &domain.Project{
			Title:        title,
			Description:  "desc",
			Category:     category,
			Technologies: domain.StringList{"Go"},
			Status:       "completed",
			Featured:     featured,
			Active:       active,
		}
		require.NoError(t, repo.Create(ctx, p))
		return p
	}

	web := mk("web app", "web", false, true)
	mobile := mk("mobile app", "mobile", true, true)
	mk("hidden", "web", false, false)

	t.Run("Fetch returns only active rows, featured first", func(t *testing.T) {
		got, err := repo.Fetch(ctx, domain.ProjectFilter{})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, mobile.ID, got[0].ID)
		assert.Equal(t, web.ID, got[1].ID)
	})

	t.Run("category filter", func(t *testing.T) {
		got, err := repo.Fetch(ctx, domain.ProjectFilter{Category: "web"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, web.ID, got[0].ID)
	})

	t.Run("category all disables the filter", func(t *testing.T) {
		got, err := repo.Fetch(ctx, domain.ProjectFilter{Category: "all"})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("featured filter", func(t *testing.T) {
		got, err := repo.Fetch(ctx, domain.ProjectFilter{FeaturedOnly: true})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, mobile.ID, got[0].ID)
	})

	t.Run("GetByID decodes the technologies column", func(t *testing.T) {
		got, err := repo.GetByID(ctx, web.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StringList{"Go"}, got.Technologies)
	})

	t.Run("legacy comma-separated technologies still decode", func(t *testing.T) {
		_, err := store.DB.Exec(`UPDATE projects SET technologies = 'Go, Docker' WHERE id = ?`, web.ID)
		require.NoError(t, err)
		got, err := repo.GetByID(ctx, web.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StringList{"Go", "Docker"}, got.Technologies)
	})

	t.Run("Update without image keeps the stored image", func(t *testing.T) {
		_, err := store.DB.Exec(`UPDATE projects SET image = 'project-1.jpg' WHERE id = ?`, web.ID)
		require.NoError(t, err)

		web.Title = "web app v2"
		require.NoError(t, repo.Update(ctx, web, false))

		got, err := repo.GetByID(ctx, web.ID)
		require.NoError(t, err)
		assert.Equal(t, "web app v2", got.Title)
		require.NotNil(t, got.Image)
		assert.Equal(t, "project-1.jpg", *got.Image)
	})

	t.Run("Update with image replaces it", func(t *testing.T) {
		img := "project-2.jpg"
		web.Image = &img
		require.NoError(t, repo.Update(ctx, web, true))

		got, err := repo.GetByID(ctx, web.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Image)
		assert.Equal(t, "project-2.jpg", *got.Image)
	})

	t.Run("Update unknown id", func(t *testing.T) {
		ghost := *web
		ghost.ID = 9999
		assert.ErrorIs(t, repo.Update(ctx, &ghost, false), domain.ErrNotFound)
	})

	t.Run("Delete is idempotent", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, mobile.ID))
		require.NoError(t, repo.Delete(ctx, mobile.ID))
		_, err := repo.GetByID(ctx, mobile.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestSkillRepository(t *testing.T) {
	store := newTestStore(t)
	repo := sqlstore.NewSkillRepository(store)
	ctx := context.Background()

	mk := func(name, category string, level int, main, active bool) *domain.Skill {
		s := &domain.Skill{Name: name, Category: category, Level: level, IsMainStack: main, Active: active}
		require.NoError(t, repo.Create(ctx, s))
		return s
	}

	mk("Go", "backend", 90, true, true)
	mk("Docker", "devops", 70, false, true)
	mk("COBOL", "backend", 40, false, false)

	t.Run("FetchActive orders by category, then level", func(t *testing.T) {
		got, err := repo.FetchActive(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Go", got[0].Name)
		assert.Equal(t, "Docker", got[1].Name)
	})

	t.Run("Update", func(t *testing.T) {
		got, err := repo.FetchActive(ctx)
		require.NoError(t, err)
		s := got[1]
		s.Level = 95
		require.NoError(t, repo.Update(ctx, &s))

		reloaded, err := repo.GetByID(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, 95, reloaded.Level)
	})

	t.Run("Delete", func(t *testing.T) {
		got, err := repo.FetchActive(ctx)
		require.NoError(t, err)
		require.NoError(t, repo.Delete(ctx, got[0].ID))
		after, err := repo.FetchActive(ctx)
		require.NoError(t, err)
		assert.Len(t, after, len(got)-1)
	})

	t.Run("schema defaults level to 80", func(t *testing.T) {
		_, err := store.DB.Exec(
			`INSERT INTO skills (name, category, created_at) VALUES ('Kafka', 'messaging', ?)`,
			time.Now().UTC().Format(time.RFC3339))
		require.NoError(t, err)

		var level int
		require.NoError(t, store.DB.QueryRow(
			`SELECT level FROM skills WHERE name = 'Kafka'`).Scan(&level))
		assert.Equal(t, 80, level)
	})
}

func TestExperienceRepository(t *testing.T) {
	store := newTestStore(t)
	repo := sqlstore.NewExperienceRepository(store)
	ctx := context.Background()

	older := &domain.Experience{
		Title: "Junior Dev", Company: "Acme", StartDate: "2019-01-01",
		EndDate: strPtr("2021-06-30"),
		Technologies: domain.StringList{"PHP"}, Achievements: domain.StringList{},
	}
	current := &domain.Experience{
		Title: "Senior Dev", Company: "Globex", StartDate: "2021-07-01", Current: true,
		Technologies: domain.StringList{"Go", "PostgreSQL"},
		Achievements: domain.StringList{"Shipped v2"},
	}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, current))

	t.Run("Fetch lists newest start date first", func(t *testing.T) {
		got, err := repo.Fetch(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, current.ID, got[0].ID)
		assert.Equal(t, domain.StringList{"Shipped v2"}, got[0].Achievements)
	})

	t.Run("Update", func(t *testing.T) {
		older.Title = "Mid-level Dev"
		require.NoError(t, repo.Update(ctx, older))
		got, err := repo.GetByID(ctx, older.ID)
		require.NoError(t, err)
		assert.Equal(t, "Mid-level Dev", got.Title)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, older.ID))
		_, err := repo.GetByID(ctx, older.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestContactRepository(t *testing.T) {
	store := newTestStore(t)
	repo := sqlstore.NewContactRepository(store)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		m := &domain.ContactMessage{
			Name:    "Visitor",
			Email:   "visitor@test.dev",
			Message: "hello there, nice site",
			Status:  domain.ContactStatusUnread,
		}
		require.NoError(t, repo.Create(ctx, m))
	}

	t.Run("pagination slices and counts with one predicate", func(t *testing.T) {
		page1, total, err := repo.Fetch(ctx, domain.ContactFilter{Page: 1, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		assert.Len(t, page1, 2)

		page3, total, err := repo.Fetch(ctx, domain.ContactFilter{Page: 3, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		assert.Len(t, page3, 1)
	})

	t.Run("MarkRead moves rows out of the unread filter", func(t *testing.T) {
		all, _, err := repo.Fetch(ctx, domain.ContactFilter{Page: 1, Limit: 10})
		require.NoError(t, err)
		require.NoError(t, repo.MarkRead(ctx, all[0].ID))

		unread, total, err := repo.Fetch(ctx, domain.ContactFilter{Status: domain.ContactStatusUnread, Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		assert.Len(t, unread, 4)
	})

	t.Run("MarkRead and Delete are idempotent", func(t *testing.T) {
		require.NoError(t, repo.MarkRead(ctx, 9999))
		require.NoError(t, repo.Delete(ctx, 9999))
	})
}

func TestStatsRepository(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Seed(context.Background(), sqlstore.SeedOptions{}))
	ctx := context.Background()

	projectRepo := sqlstore.NewProjectRepository(store)
	require.NoError(t, projectRepo.Create(ctx, &domain.Project{
		Title: "p1", Description: "d", Category: "web", Status: "completed", Active: true,
	}))
	require.NoError(t, projectRepo.Create(ctx, &domain.Project{
		Title: "p2", Description: "d", Category: "web", Status: "completed", Active: false,
	}))

	contactRepo := sqlstore.NewContactRepository(store)
	require.NoError(t, contactRepo.Create(ctx, &domain.ContactMessage{
		Name: "v", Email: "v@test.dev", Message: "msg content here", Status: domain.ContactStatusUnread,
	}))

	repo := sqlstore.NewStatsRepository(store)

	t.Run("Public counts active rows only", func(t *testing.T) {
		stats, err := repo.Public(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.Projects)
	})

	t.Run("Dashboard counts everything", func(t *testing.T) {
		stats, err := repo.Dashboard(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.Projects)
		assert.Equal(t, int64(1), stats.Messages)
		assert.Equal(t, int64(1), stats.UnreadMessages)
	})
}
