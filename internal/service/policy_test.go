package service

import (
	"RecipeBox/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccessPolicy(t *testing.T) {
	p, err := NewAccessPolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyOwner, p.Name())
	assert.True(t, p.IdentityRequired())

	p, err = NewAccessPolicy(" OPEN ")
	require.NoError(t, err)
	assert.Equal(t, PolicyOpen, p.Name())
	assert.False(t, p.IdentityRequired())

	_, err = NewAccessPolicy("friends-only")
	assert.Error(t, err)
}

func TestOwnerPolicy(t *testing.T) {
	p := OwnerPolicy{}
	rec := &model.Recipe{ID: 1, UserID: 1}

	assert.NoError(t, p.CanModify(alice(), rec))
	assert.ErrorIs(t, p.CanModify(bob(), rec), ErrForbidden)
	assert.ErrorIs(t, p.CanModify(nil, rec), ErrUnauthenticated)

	id, err := p.OwnerFor(bob())
	assert.NoError(t, err)
	assert.Equal(t, int64(2), id)
	_, err = p.OwnerFor(nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestOpenPolicy(t *testing.T) {
	p := OpenPolicy{}
	rec := &model.Recipe{ID: 1, UserID: 1}

	assert.NoError(t, p.CanModify(nil, rec))
	assert.NoError(t, p.CanModify(bob(), rec))

	id, err := p.OwnerFor(nil)
	assert.NoError(t, err)
	assert.Equal(t, model.SharedOwnerID, id)

	id, err = p.OwnerFor(alice())
	assert.NoError(t, err)
	assert.Equal(t, int64(1), id)
}
