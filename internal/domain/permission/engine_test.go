package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"issuetracker/internal/domain/user"
	vo "issuetracker/internal/domain/user/valueobjects"
	"issuetracker/internal/shared/biztime"
	"issuetracker/internal/shared/errors"
)

type mapTable map[string]bool

func (m mapTable) Allows(subject string, resource Resource, action Action) (bool, error) {
	return m[subject+"|"+string(resource)+"|"+string(action)] || m[subject+"|*|*"], nil
}

func testTable() mapTable {
	t := mapTable{"superuser|*|*": true}
	for _, r := range []Resource{ResourceProject, ResourceTicket, ResourceComment, ResourceHistory, ResourceAttachment} {
		t["authenticated|"+string(r)+"|list"] = true
		t["authenticated|"+string(r)+"|retrieve"] = true
	}
	for _, k := range []string{
		"authenticated|ticket|update", "authenticated|ticket|delete",
		"authenticated|comment|create", "authenticated|comment|delete",
		"authenticated|attachment|create", "authenticated|attachment|delete",
		"project_manager|project|create", "project_manager|project|update",
		"project_manager|project|delete", "project_manager|project|assign",
		"submitter|ticket|create",
	} {
		t[k] = true
	}
	return t
}

type owned uint

func (o owned) OwnerID() uint { return uint(o) }

func actor(t *testing.T, id uint, active bool, caps ...vo.Capability) *user.User {
	t.Helper()
	email, _ := vo.NewEmail("u@example.com")
	name, _ := vo.NewName("user")
	set, err := vo.NewCapabilitySet(caps...)
	require.NoError(t, err)
	u, err := user.ReconstructUser(id, email, name, nil, set, active, "", biztime.NowUTC(), biztime.NowUTC())
	require.NoError(t, err)
	return u
}

func TestAuthorize_AnonymousAndInactive(t *testing.T) {
	engine := NewEngine(testTable())

	err := engine.Authorize(nil, ResourceTicket, ActionList, nil)
	assert.True(t, errors.IsUnauthorizedError(err))

	inactiveSuper := actor(t, 1, false, vo.CapabilitySuperuser)
	err = engine.Authorize(inactiveSuper, ResourceProject, ActionRetrieve, nil)
	assert.True(t, errors.IsUnauthorizedError(err))
}

func TestAuthorize_SuperuserBypassesEverything(t *testing.T) {
	engine := NewEngine(testTable())
	su := actor(t, 1, true, vo.CapabilitySuperuser)

	assert.NoError(t, engine.Authorize(su, ResourceTicket, ActionDelete, owned(99)))
	assert.NoError(t, engine.Authorize(su, ResourceProject, ActionDelete, owned(99)))
	assert.NoError(t, engine.Authorize(su, ResourceHistory, ActionCreate, nil))
	assert.NoError(t, engine.Authorize(su, ResourceTicket, ActionCreate, nil))
}

func TestAuthorize_ReadsOpenToAuthenticated(t *testing.T) {
	engine := NewEngine(testTable())
	plain := actor(t, 2, true)

	for _, r := range []Resource{ResourceProject, ResourceTicket, ResourceComment, ResourceHistory, ResourceAttachment} {
		assert.NoError(t, engine.Authorize(plain, r, ActionList, nil), r)
		assert.NoError(t, engine.Authorize(plain, r, ActionRetrieve, nil), r)
	}
}

func TestAuthorize_WriteMatrix(t *testing.T) {
	engine := NewEngine(testTable())

	tests := []struct {
		name     string
		caps     []vo.Capability
		resource Resource
		action   Action
		target   Owned
		check    func(error) bool
	}{
		{"ticket create without submitter", []vo.Capability{vo.CapabilityStaff}, ResourceTicket, ActionCreate, nil, errors.IsForbiddenError},
		{"ticket create as submitter", []vo.Capability{vo.CapabilitySubmitter}, ResourceTicket, ActionCreate, nil, isNil},
		{"ticket update by non-creator", []vo.Capability{vo.CapabilitySubmitter}, ResourceTicket, ActionUpdate, owned(7), errors.IsUnauthorizedError},
		{"ticket delete by non-creator", nil, ResourceTicket, ActionDelete, owned(7), errors.IsUnauthorizedError},
		{"ticket delete by creator", nil, ResourceTicket, ActionDelete, owned(3), isNil},
		{"project create without pm", []vo.Capability{vo.CapabilitySubmitter}, ResourceProject, ActionCreate, nil, errors.IsForbiddenError},
		{"project create as pm", []vo.Capability{vo.CapabilityProjectManager}, ResourceProject, ActionCreate, nil, isNil},
		{"project delete by non-creator pm", []vo.Capability{vo.CapabilityProjectManager}, ResourceProject, ActionDelete, owned(7), errors.IsNotFoundError},
		{"project delete without pm", nil, ResourceProject, ActionDelete, owned(3), errors.IsForbiddenError},
		{"project update by creator pm", []vo.Capability{vo.CapabilityProjectManager}, ResourceProject, ActionUpdate, owned(3), isNil},
		{"assign without pm", []vo.Capability{vo.CapabilitySubmitter}, ResourceProject, ActionAssign, nil, errors.IsForbiddenError},
		{"assign as pm", []vo.Capability{vo.CapabilityProjectManager}, ResourceProject, ActionAssign, nil, isNil},
		{"comment create", nil, ResourceComment, ActionCreate, nil, isNil},
		{"comment delete by non-author", nil, ResourceComment, ActionDelete, owned(7), errors.IsUnauthorizedError},
		{"attachment delete by uploader", nil, ResourceAttachment, ActionDelete, owned(3), isNil},
		{"history write", []vo.Capability{vo.CapabilityProjectManager, vo.CapabilitySubmitter, vo.CapabilityStaff}, ResourceHistory, ActionCreate, nil, errors.IsForbiddenError},
		{"history delete", []vo.Capability{vo.CapabilityStaff}, ResourceHistory, ActionDelete, owned(3), errors.IsForbiddenError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := engine.Authorize(actor(t, 3, true, tt.caps...), tt.resource, tt.action, tt.target)
			assert.True(t, tt.check(err), "unexpected result: %v", err)
		})
	}
}

func TestAuthorize_OwnershipWithoutTargetIsInternal(t *testing.T) {
	engine := NewEngine(testTable())
	err := engine.Authorize(actor(t, 3, true), ResourceTicket, ActionDelete, nil)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeInternal, errors.GetAppError(err).Type)
}

func TestHasCapability(t *testing.T) {
	assert.True(t, HasCapability(actor(t, 1, true, vo.CapabilitySuperuser), vo.CapabilitySubmitter))
	assert.True(t, HasCapability(actor(t, 1, true, vo.CapabilitySubmitter), vo.CapabilitySubmitter))
	assert.False(t, HasCapability(actor(t, 1, true, vo.CapabilityStaff), vo.CapabilitySubmitter))
	assert.False(t, HasCapability(nil, vo.CapabilitySubmitter))
}

func isNil(err error) bool { return err == nil }

func TestPrecheck_IgnoresOwnership(t *testing.T) {
	engine := NewEngine(testTable())
	pm := actor(t, 5, true, vo.CapabilityProjectManager)
	staff := actor(t, 6, true, vo.CapabilityStaff)

	assert.NoError(t, engine.Precheck(pm, ResourceProject, ActionDelete))
	assert.True(t, errors.IsForbiddenError(engine.Precheck(staff, ResourceProject, ActionDelete)))
	assert.True(t, errors.IsUnauthorizedError(engine.Precheck(nil, ResourceProject, ActionList)))
	assert.True(t, errors.IsUnauthorizedError(
		engine.Precheck(actor(t, 7, false, vo.CapabilitySuperuser), ResourceProject, ActionList)))
}
