package ecs

// EntityID is a unique identifier for an entity
type EntityID uint64

// Entity represents a simulation object in the ECS architecture
type Entity struct {
	ID EntityID
}
