package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBaseEntity(t *testing.T) {
	at := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)

	e := NewAt(at)
	assert.True(t, e.IsNew())
	assert.Nil(t, e.GetID())
	assert.NotEqual(t, uuid.Nil, e.GetUUID())
	assert.True(t, at.Equal(e.GetCreatedOn()))

	id := NextID()
	e.AssignID(id)
	assert.False(t, e.IsNew())
	assert.EqualValues(t, id, *e.GetID())

	e2 := New()
	assert.NotEqual(t, e.GetUUID(), e2.GetUUID())
	assert.NotEqual(t, id, NextID())
}
