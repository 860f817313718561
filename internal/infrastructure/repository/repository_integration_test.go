package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"helperdesk/internal/domain/admin"
	"helperdesk/internal/domain/audit"
	"helperdesk/internal/domain/helper"
	"helperdesk/internal/domain/ticket"
	"helperdesk/internal/infrastructure/persistence/models"
	"helperdesk/internal/shared/authorization"
	apperrors "helperdesk/internal/shared/errors"
	"helperdesk/internal/shared/query"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.HelperModel{},
		&models.TicketModel{},
		&models.AdminAccountModel{},
		&models.SessionModel{},
		&models.AuditEntryModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestHelper(t *testing.T, db *gorm.DB, name string, rank authorization.Rank) *helper.Helper {
	h, err := helper.NewHelper(name, rank)
	require.NoError(t, err)
	require.NoError(t, NewHelperRepository(db).Save(context.Background(), h))
	return h
}

func createTestTicket(t *testing.T, db *gorm.DB, submitter string, handlerID *uint) *ticket.Ticket {
	tk, err := ticket.NewTicket(submitter, handlerID, 600, 4, nil)
	require.NoError(t, err)
	require.NoError(t, NewTicketRepository(db).Save(context.Background(), tk))
	return tk
}

func TestHelperRepository_SaveAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewHelperRepository(db)
	ctx := context.Background()

	h := createTestHelper(t, db, "Alice", authorization.RankModer)
	assert.NotZero(t, h.ID())

	found, err := repo.GetByID(ctx, h.ID())
	require.NoError(t, err)
	assert.Equal(t, "Alice", found.Name())
	assert.Equal(t, authorization.RankModer, found.Rank())
	assert.Equal(t, uint(0), found.WarningCount())
}

func TestHelperRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewHelperRepository(db)

	_, err := repo.GetByID(context.Background(), 9999)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestHelperRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewHelperRepository(db)
	ctx := context.Background()

	h := createTestHelper(t, db, "Alice", authorization.RankModer)

	require.NoError(t, h.ChangeRank(authorization.RankCurator))
	h.AdjustWarnings(2)
	require.NoError(t, repo.Update(ctx, h))

	found, err := repo.GetByID(ctx, h.ID())
	require.NoError(t, err)
	assert.Equal(t, authorization.RankCurator, found.Rank())
	assert.Equal(t, uint(2), found.WarningCount())
}

func TestHelperRepository_List_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewHelperRepository(db)
	ctx := context.Background()

	createTestHelper(t, db, "Alice", authorization.RankModer)   // id 1
	createTestHelper(t, db, "Bob", authorization.RankAdmin)     // id 2
	h3 := createTestHelper(t, db, "Carol", authorization.RankModer) // id 3
	h3.AdjustWarnings(3)
	require.NoError(t, repo.Update(ctx, h3))

	t.Run("substring match on name is case-insensitive", func(t *testing.T) {
		helpers, total, err := repo.List(ctx, helper.Filter{Search: "ali"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, helpers, 1)
		assert.Equal(t, "Alice", helpers[0].Name())
	})

	t.Run("numeric search matches id and warning count", func(t *testing.T) {
		// "3" matches Carol twice over: id 3 and warning_count 3
		helpers, total, err := repo.List(ctx, helper.Filter{Search: "3"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, helpers, 1)
		assert.Equal(t, "Carol", helpers[0].Name())
	})

	t.Run("rank filter is exact", func(t *testing.T) {
		rank := authorization.RankModer
		helpers, total, err := repo.List(ctx, helper.Filter{Rank: &rank})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, helpers, 2)
	})
}

func TestHelperRepository_List_SortFallback(t *testing.T) {
	db := setupTestDB(t)
	repo := NewHelperRepository(db)
	ctx := context.Background()

	createTestHelper(t, db, "Zoe", authorization.RankModer)
	createTestHelper(t, db, "Amy", authorization.RankModer)

	t.Run("valid sort applies", func(t *testing.T) {
		helpers, _, err := repo.List(ctx, helper.Filter{SortBy: "name", SortOrder: "asc"})
		require.NoError(t, err)
		require.Len(t, helpers, 2)
		assert.Equal(t, "Amy", helpers[0].Name())
	})

	t.Run("unknown sort field falls back to id ASC", func(t *testing.T) {
		helpers, _, err := repo.List(ctx, helper.Filter{SortBy: "password", SortOrder: "desc"})
		require.NoError(t, err)
		require.Len(t, helpers, 2)
		assert.Equal(t, "Zoe", helpers[0].Name())
	})

	t.Run("unknown direction falls back to ASC", func(t *testing.T) {
		helpers, _, err := repo.List(ctx, helper.Filter{SortBy: "name", SortOrder: "sideways"})
		require.NoError(t, err)
		require.Len(t, helpers, 2)
		assert.Equal(t, "Amy", helpers[0].Name())
	})
}

func TestHelperQuerySpec_QualifiesRankColumn(t *testing.T) {
	// RANK is reserved on MySQL 8; the allow-list must emit it
	// table-qualified in the search, filter, and ordering fragments alike.
	db := setupTestDB(t)

	rank := authorization.RankAdmin
	q := query.ListQuery{
		Search:    "adm",
		SortBy:    "rank",
		SortOrder: "desc",
		Rank:      &rank,
		Page:      1,
		PageSize:  10,
	}

	var rows []*models.HelperModel
	result := db.Session(&gorm.Session{DryRun: true}).
		Model(&models.HelperModel{}).
		Scopes(helperQuerySpec.Scope(q)).
		Find(&rows)
	require.NoError(t, result.Error)

	sql := result.Statement.SQL.String()
	assert.Contains(t, sql, "LOWER(helpers.rank) LIKE")
	assert.Contains(t, sql, "helpers.rank = ")
	assert.Contains(t, sql, "ORDER BY helpers.rank DESC")
	assert.NotRegexp(t, `[^.]\brank\b`, sql)
}

func TestHelperRepository_Delete_CascadesTickets(t *testing.T) {
	db := setupTestDB(t)
	helperRepo := NewHelperRepository(db)
	ticketRepo := NewTicketRepository(db)
	ctx := context.Background()

	h := createTestHelper(t, db, "Alice", authorization.RankModer)
	other := createTestHelper(t, db, "Bob", authorization.RankModer)

	hID := h.ID()
	otherID := other.ID()
	handled := createTestTicket(t, db, "player1", &hID)
	kept := createTestTicket(t, db, "player2", &otherID)

	require.NoError(t, helperRepo.Delete(ctx, h.ID()))

	_, err := helperRepo.GetByID(ctx, h.ID())
	assert.True(t, apperrors.IsNotFoundError(err))

	_, err = ticketRepo.GetByID(ctx, handled.ID())
	assert.True(t, apperrors.IsNotFoundError(err))

	still, err := ticketRepo.GetByID(ctx, kept.ID())
	require.NoError(t, err)
	assert.Equal(t, "player2", still.SubmitterUsername())
}

func TestTicketRepository_List_JoinsHandlerName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	h := createTestHelper(t, db, "Alice", authorization.RankModer)
	hID := h.ID()
	createTestTicket(t, db, "player1", &hID)
	createTestTicket(t, db, "player2", nil)

	tickets, total, err := repo.List(ctx, ticket.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, tickets, 2)
	assert.Equal(t, "Alice", tickets[0].HandlerName())
	assert.Equal(t, "", tickets[1].HandlerName())
}

func TestTicketRepository_List_SearchIsNarrow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	h := createTestHelper(t, db, "Alice", authorization.RankModer)
	hID := h.ID()
	createTestTicket(t, db, "player1", &hID)
	createTestTicket(t, db, "someone", nil)

	t.Run("matches submitter", func(t *testing.T) {
		tickets, _, err := repo.List(ctx, ticket.Filter{Search: "PLAYER"})
		require.NoError(t, err)
		assert.Len(t, tickets, 1)
	})

	t.Run("matches handler name", func(t *testing.T) {
		tickets, _, err := repo.List(ctx, ticket.Filter{Search: "alice"})
		require.NoError(t, err)
		assert.Len(t, tickets, 1)
	})

	t.Run("does not match rating", func(t *testing.T) {
		// every test ticket has rating 4; search stays narrow
		tickets, _, err := repo.List(ctx, ticket.Filter{Search: "4"})
		require.NoError(t, err)
		assert.Len(t, tickets, 0)
	})
}

func TestAdminAccountRepository_DuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdminAccountRepository(db)
	ctx := context.Background()

	a1, err := admin.NewAccount("root", "$2a$12$hash", authorization.RankSuperAdmin)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, a1))

	a2, err := admin.NewAccount("root", "$2a$12$other", authorization.RankManager)
	require.NoError(t, err)
	err = repo.Save(ctx, a2)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestSessionRepository_Lifecycle(t *testing.T) {
	db := setupTestDB(t)
	accountRepo := NewAdminAccountRepository(db)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	a, err := admin.NewAccount("root", "$2a$12$hash", authorization.RankSuperAdmin)
	require.NoError(t, err)
	require.NoError(t, accountRepo.Save(ctx, a))

	s, err := admin.NewSession(a.ID(), "hash-abc", "127.0.0.1", "test-agent", time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, s))

	found, err := repo.GetByTokenHash(ctx, "hash-abc")
	require.NoError(t, err)
	assert.Equal(t, a.ID(), found.AdminID())

	require.NoError(t, repo.Delete(ctx, found.ID()))
	_, err = repo.GetByTokenHash(ctx, "hash-abc")
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	fresh, err := admin.NewSession(1, "hash-fresh", "", "", time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, fresh))

	// insert an already-expired row directly; the entity refuses them
	require.NoError(t, db.Create(&models.SessionModel{
		AdminID:        1,
		TokenHash:      "hash-stale",
		ExpiresAt:      time.Now().Add(-time.Hour),
		LastActivityAt: time.Now().Add(-2 * time.Hour),
	}).Error)

	require.NoError(t, repo.DeleteExpired(ctx))

	_, err = repo.GetByTokenHash(ctx, "hash-stale")
	assert.True(t, apperrors.IsNotFoundError(err))
	_, err = repo.GetByTokenHash(ctx, "hash-fresh")
	assert.NoError(t, err)
}

func TestAuditRepository_ListRecent_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()

	for _, action := range []string{"create", "update", "delete"} {
		e, err := audit.NewEntry(1, "root", action, "helper", nil)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, e))
	}

	entries, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "delete", entries[0].Action())
	assert.Equal(t, "update", entries[1].Action())
}
