package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"issuetracker/internal/domain/permission"
	"issuetracker/internal/domain/user"
	vo "issuetracker/internal/domain/user/valueobjects"
	"issuetracker/internal/shared/biztime"
	apperrors "issuetracker/internal/shared/errors"
	"issuetracker/internal/shared/logger"
)

func TestParsePolicy(t *testing.T) {
	t.Run("expands actions", func(t *testing.T) {
		lines, err := ParsePolicy([]byte("rules:\n  - subject: a\n    resource: ticket\n    actions: [list, create]\n"))
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"a", "ticket", "list"}, {"a", "ticket", "create"}}, lines)
	})

	t.Run("rejects incomplete rule", func(t *testing.T) {
		_, err := ParsePolicy([]byte("rules:\n  - subject: a\n    actions: [list]\n"))
		assert.Error(t, err)
	})

	t.Run("rejects empty table", func(t *testing.T) {
		_, err := ParsePolicy([]byte("rules: []\n"))
		assert.Error(t, err)
	})

	t.Run("embedded policy parses", func(t *testing.T) {
		lines, err := DefaultPolicy()
		require.NoError(t, err)
		assert.Contains(t, lines, []string{"submitter", "ticket", "create"})
	})
}

func TestEnforcer_EmbeddedTable(t *testing.T) {
	e, err := NewEnforcer(SourceEmbedded, nil, logger.NewNopLogger())
	require.NoError(t, err)

	cases := []struct {
		subject  string
		resource permission.Resource
		action   permission.Action
		want     bool
	}{
		{"superuser", permission.ResourceProject, permission.ActionDelete, true},
		{"authenticated", permission.ResourceTicket, permission.ActionList, true},
		{"authenticated", permission.ResourceTicket, permission.ActionCreate, false},
		{"authenticated", permission.ResourceProject, permission.ActionCreate, false},
		{"submitter", permission.ResourceTicket, permission.ActionCreate, true},
		{"project_manager", permission.ResourceProject, permission.ActionAssign, true},
		{"staff", permission.ResourceProject, permission.ActionAssign, false},
		{"authenticated", permission.ResourceHistory, permission.ActionDelete, false},
	}
	for _, tc := range cases {
		got, err := e.Allows(tc.subject, tc.resource, tc.action)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s %s %s", tc.subject, tc.action, tc.resource)
	}

	assert.NoError(t, e.Reload())
}

func TestEnforcer_DatabaseSourceSeedsOnce(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	first, err := NewEnforcer(SourceDatabase, db, logger.NewNopLogger())
	require.NoError(t, err)
	allowed, err := first.Allows("submitter", permission.ResourceTicket, permission.ActionCreate)
	require.NoError(t, err)
	assert.True(t, allowed)

	defaults, err := DefaultPolicy()
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Table("casbin_rule").Count(&count).Error)
	assert.Equal(t, int64(len(defaults)), count)

	// a second start reuses the stored rows
	_, err = NewEnforcer(SourceDatabase, db, logger.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, db.Table("casbin_rule").Count(&count).Error)
	assert.Equal(t, int64(len(defaults)), count)
}

func TestEnforcer_UnknownSource(t *testing.T) {
	_, err := NewEnforcer("ldap", nil, logger.NewNopLogger())
	assert.Error(t, err)

	_, err = NewEnforcer(SourceDatabase, nil, logger.NewNopLogger())
	assert.Error(t, err)
}

func newActor(t *testing.T, id uint, caps ...vo.Capability) *user.User {
	t.Helper()
	email, _ := vo.NewEmail("actor@example.com")
	name, _ := vo.NewName("Actor")
	set, err := vo.NewCapabilitySet(caps...)
	require.NoError(t, err)
	u, err := user.ReconstructUser(id, email, name, nil, set, true, "", biztime.NowUTC(), biztime.NowUTC())
	require.NoError(t, err)
	return u
}

type ownedBy uint

func (o ownedBy) OwnerID() uint { return uint(o) }

func TestEngineWithCasbinTable(t *testing.T) {
	table, err := NewEnforcer(SourceEmbedded, nil, logger.NewNopLogger())
	require.NoError(t, err)
	engine := permission.NewEngine(table)

	staff := newActor(t, 1, vo.CapabilityStaff)
	pm := newActor(t, 2, vo.CapabilityProjectManager)
	submitter := newActor(t, 3, vo.CapabilitySubmitter)

	assert.NoError(t, engine.Authorize(staff, permission.ResourceTicket, permission.ActionList, nil))
	assert.True(t, apperrors.IsForbiddenError(
		engine.Authorize(staff, permission.ResourceTicket, permission.ActionCreate, nil)))
	assert.NoError(t, engine.Authorize(submitter, permission.ResourceTicket, permission.ActionCreate, nil))

	assert.NoError(t, engine.Authorize(pm, permission.ResourceProject, permission.ActionUpdate, ownedBy(2)))
	assert.True(t, apperrors.IsNotFoundError(
		engine.Authorize(pm, permission.ResourceProject, permission.ActionUpdate, ownedBy(9))))
	assert.True(t, apperrors.IsUnauthorizedError(
		engine.Authorize(staff, permission.ResourceTicket, permission.ActionDelete, ownedBy(9))))
}
