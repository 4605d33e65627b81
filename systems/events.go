package systems

import (
	"ebiten-shapes/ecs"
)

// Event type constants
const (
	EventCollisionEnter ecs.EventType = "collision_enter"
	EventCollisionExit  ecs.EventType = "collision_exit"
)

// CollisionEnterEvent is emitted when an entity's collider flag turns on:
// it overlapped nothing last tick and overlaps something now
type CollisionEnterEvent struct {
	EntityID ecs.EntityID
}

// Type returns the event type
func (e CollisionEnterEvent) Type() ecs.EventType {
	return EventCollisionEnter
}

// CollisionExitEvent is emitted when an entity's collider flag turns off
type CollisionExitEvent struct {
	EntityID ecs.EntityID
}

// Type returns the event type
func (e CollisionExitEvent) Type() ecs.EventType {
	return EventCollisionExit
}
