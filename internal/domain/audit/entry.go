// Package audit records who did what in the console. Entries are
// append-only; nothing updates or deletes them.
package audit

import (
	"fmt"
	"time"
)

type Entry struct {
	id        uint
	actorID   uint
	actorName string
	action    string
	entity    string
	targetID  *uint
	createdAt time.Time
}

func NewEntry(actorID uint, actorName, action, entity string, targetID *uint) (*Entry, error) {
	if actorID == 0 {
		return nil, fmt.Errorf("actor ID is required")
	}
	if len(action) == 0 {
		return nil, fmt.Errorf("action is required")
	}
	if len(entity) == 0 {
		return nil, fmt.Errorf("entity is required")
	}

	return &Entry{
		actorID:   actorID,
		actorName: actorName,
		action:    action,
		entity:    entity,
		targetID:  targetID,
		createdAt: time.Now(),
	}, nil
}

func ReconstructEntry(id, actorID uint, actorName, action, entity string, targetID *uint, createdAt time.Time) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("entry ID cannot be zero")
	}

	return &Entry{
		id:        id,
		actorID:   actorID,
		actorName: actorName,
		action:    action,
		entity:    entity,
		targetID:  targetID,
		createdAt: createdAt,
	}, nil
}

// SetID assigns the storage-generated ID after the first save.
func (e *Entry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("entry ID already set")
	}
	if id == 0 {
		return fmt.Errorf("entry ID cannot be zero")
	}
	e.id = id
	return nil
}

func (e *Entry) ID() uint             { return e.id }
func (e *Entry) ActorID() uint        { return e.actorID }
func (e *Entry) ActorName() string    { return e.actorName }
func (e *Entry) Action() string       { return e.action }
func (e *Entry) Entity() string       { return e.entity }
func (e *Entry) TargetID() *uint      { return e.targetID }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }
