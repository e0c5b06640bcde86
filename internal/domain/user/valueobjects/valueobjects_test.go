package valueobjects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	email, err := NewEmail("  Test@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", email.String())
	assert.Equal(t, "test", email.LocalPart())

	other, _ := NewEmail("test@example.com")
	assert.True(t, email.Equals(other))

	_, err = NewEmail("")
	assert.Error(t, err)
	_, err = NewEmail("not-an-email")
	assert.Error(t, err)
	_, err = NewEmail(strings.Repeat("a", 250) + "@example.com")
	assert.Error(t, err)
}

func TestNewName(t *testing.T) {
	name, err := NewName("  ada   lovelace ")
	require.NoError(t, err)
	assert.Equal(t, "ada lovelace", name.String())
	assert.Equal(t, "Ada Lovelace", name.Display())

	_, err = NewName("   ")
	assert.Error(t, err)

	last, err := NewOptionalName("")
	require.NoError(t, err)
	assert.True(t, last.IsEmpty())

	_, err = NewName(strings.Repeat("x", 256))
	assert.Error(t, err)
}

func TestCapabilitySet(t *testing.T) {
	set, err := NewCapabilitySet(CapabilityProjectManager, CapabilityStaff, CapabilityStaff)
	require.NoError(t, err)

	assert.Equal(t, []string{"staff", "project_manager"}, set.Strings())
	assert.True(t, set.Has(CapabilityProjectManager))
	assert.False(t, set.Has(CapabilitySubmitter))

	withSubmitter := set.With(CapabilitySubmitter)
	assert.Equal(t, []string{"staff", "submitter", "project_manager"}, withSubmitter.Strings())
	assert.False(t, set.Has(CapabilitySubmitter), "With must not mutate the receiver")

	assert.Equal(t, []string{"staff", "submitter"}, withSubmitter.Without(CapabilityProjectManager).Strings())

	_, err = NewCapabilitySet("admin")
	assert.Error(t, err)

	parsed, err := ParseCapabilitySet([]string{"Superuser", "submitter"})
	require.NoError(t, err)
	assert.Equal(t, []string{"superuser", "submitter"}, parsed.Strings())

	_, err = ParseCapabilitySet([]string{"root"})
	assert.Error(t, err)
}
