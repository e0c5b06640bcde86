package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "issuetracker/internal/domain/user/valueobjects"
)

func newTestUser(t *testing.T, caps ...vo.Capability) *User {
	t.Helper()
	email, err := vo.NewEmail("dev@example.com")
	require.NoError(t, err)
	name, err := vo.NewName("grace")
	require.NoError(t, err)
	last, err := vo.NewOptionalName("hopper")
	require.NoError(t, err)
	set, err := vo.NewCapabilitySet(caps...)
	require.NoError(t, err)

	u, err := NewUser(email, name, last, set)
	require.NoError(t, err)
	return u
}

func TestNewUser(t *testing.T) {
	u := newTestUser(t, vo.CapabilityStaff)

	assert.True(t, u.IsActive())
	assert.True(t, u.HasCapability(vo.CapabilityStaff))
	assert.False(t, u.IsSuperuser())
	assert.Equal(t, "Grace Hopper", u.FullName())
	assert.Zero(t, u.ID())
}

func TestNewUser_RequiresEmailAndName(t *testing.T) {
	name, _ := vo.NewName("x")
	_, err := NewUser(nil, name, nil, vo.CapabilitySet{})
	assert.Error(t, err)

	email, _ := vo.NewEmail("a@b.io")
	_, err = NewUser(email, nil, nil, vo.CapabilitySet{})
	assert.Error(t, err)
}

func TestUser_GrantRevoke(t *testing.T) {
	u := newTestUser(t)

	require.NoError(t, u.Grant(vo.CapabilitySubmitter))
	assert.True(t, u.HasCapability(vo.CapabilitySubmitter))

	u.Revoke(vo.CapabilitySubmitter)
	assert.False(t, u.HasCapability(vo.CapabilitySubmitter))

	assert.Error(t, u.Grant("root"))
}

func TestUser_SetID(t *testing.T) {
	u := newTestUser(t)

	require.NoError(t, u.SetID(4))
	assert.Error(t, u.SetID(5))
	assert.Equal(t, uint(4), u.ID())
}

func TestUser_Deactivate(t *testing.T) {
	u := newTestUser(t)
	u.Deactivate()
	assert.False(t, u.IsActive())
	u.Activate()
	assert.True(t, u.IsActive())
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
		invalid  bool
	}{
		{name: "minimum length", password: "abcdef"},
		{name: "too short", password: "abc", invalid: true},
		{name: "multibyte counts runes", password: "ééééé", invalid: true},
		{name: "at bcrypt limit", password: strings.Repeat("a", MaxPasswordBytes)},
		{name: "over bcrypt limit", password: strings.Repeat("a", MaxPasswordBytes+1), wantErr: ErrPasswordTooLong, invalid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password, MinPasswordLength)
			if !tt.invalid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
