package project

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProject(t *testing.T) {
	p, err := NewProject(1, "  Website  ", "public site")
	require.NoError(t, err)

	assert.Equal(t, "Website", p.Name())
	assert.Equal(t, uint(1), p.OwnerID())
	assert.False(t, p.IsComplete())
	assert.False(t, p.CreatedAt().IsZero())
}

func TestNewProject_Validation(t *testing.T) {
	tests := []struct {
		name        string
		ownerID     uint
		projectName string
		description string
	}{
		{"missing owner", 0, "x", ""},
		{"empty name", 1, "   ", ""},
		{"long name", 1, strings.Repeat("n", MaxNameLength+1), ""},
		{"long description", 1, "x", strings.Repeat("d", MaxDescriptionLength+1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProject(tt.ownerID, tt.projectName, tt.description)
			assert.Error(t, err)
		})
	}
}

func TestProject_Mutations(t *testing.T) {
	p, err := NewProject(1, "api", "")
	require.NoError(t, err)

	require.NoError(t, p.Rename("api v2"))
	assert.Equal(t, "api v2", p.Name())
	assert.Error(t, p.Rename(""))

	require.NoError(t, p.UpdateDescription("second iteration"))
	assert.Error(t, p.UpdateDescription(strings.Repeat("d", 201)))

	p.SetComplete(true)
	assert.True(t, p.IsComplete())

	require.NoError(t, p.SetID(9))
	assert.Error(t, p.SetID(10))
}

func TestNewAssignment(t *testing.T) {
	a, err := NewAssignment(2, 5)
	require.NoError(t, err)
	assert.Equal(t, uint(2), a.ProjectID())
	assert.Equal(t, uint(5), a.UserID())

	_, err = NewAssignment(0, 5)
	assert.Error(t, err)
	_, err = NewAssignment(2, 0)
	assert.Error(t, err)
}
