package entity

import (
	"time"

	"github.com/godruoyi/go-snowflake"
	"github.com/google/uuid"
)

type Entity interface {
	GetID() *uint64
	AssignID(id uint64)
	GetUUID() uuid.UUID
	GetCreatedOn() time.Time
}

// BaseEntity is embedded by records kept in repositories. A nil ID marks an entity that was
// never saved.
type BaseEntity struct {
	ID        *uint64   `json:"id,omitempty" yaml:"id,omitempty"`
	UUID      uuid.UUID `json:"uuid" yaml:"uuid"`
	CreatedOn time.Time `json:"createdOn" yaml:"createdOn"`
}

func New() BaseEntity {
	return NewAt(time.Now())
}

func NewAt(createdOn time.Time) BaseEntity {
	return BaseEntity{
		UUID:      uuid.New(),
		CreatedOn: createdOn,
	}
}

func (e *BaseEntity) GetID() *uint64 {
	return e.ID
}

func (e *BaseEntity) AssignID(id uint64) {
	e.ID = &id
}

func (e *BaseEntity) GetUUID() uuid.UUID {
	return e.UUID
}

func (e *BaseEntity) GetCreatedOn() time.Time {
	return e.CreatedOn
}

func (e *BaseEntity) IsNew() bool {
	return e.ID == nil
}

func NextID() uint64 {
	return snowflake.ID()
}
