package ecs

// World manages all entities and components. It is an explicitly owned
// simulation context: create one with NewWorld and pass it to each system,
// rather than keeping entity state in package globals.
type World struct {
	// Next entity ID to hand out; scoped to this world
	nextEntityID uint64
	entities     map[EntityID]*Entity
	// Entity IDs in creation order. All iteration walks this slice so that
	// two passes over the same world within a tick see the same sequence.
	order []EntityID
	// Store components as map[EntityID]map[ComponentID]Component
	components map[EntityID]ComponentMap
	// Systems slice to store all systems, run in registration order
	systems []System
	// Event manager for system communication
	eventManager *EventManager
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		entities:     make(map[EntityID]*Entity),
		order:        make([]EntityID, 0),
		components:   make(map[EntityID]ComponentMap),
		systems:      make([]System, 0),
		eventManager: NewEventManager(),
	}
}

// CreateEntity creates a new entity and adds it to the world
func (w *World) CreateEntity() *Entity {
	w.nextEntityID++
	entity := &Entity{ID: EntityID(w.nextEntityID)}
	w.entities[entity.ID] = entity
	w.order = append(w.order, entity.ID)
	w.components[entity.ID] = make(ComponentMap)
	return entity
}

// AddComponent adds a component to an entity
func (w *World) AddComponent(entityID EntityID, componentID ComponentID, component Component) {
	if _, exists := w.entities[entityID]; !exists {
		return
	}
	w.components[entityID][componentID] = component
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(entityID EntityID, componentID ComponentID) (Component, bool) {
	if componentMap, exists := w.components[entityID]; exists {
		component, exists := componentMap[componentID]
		return component, exists
	}
	return nil, false
}

// HasComponent checks if an entity has a specific component
func (w *World) HasComponent(entityID EntityID, componentID ComponentID) bool {
	if componentMap, exists := w.components[entityID]; exists {
		_, exists := componentMap[componentID]
		return exists
	}
	return false
}

// RemoveComponent removes a component from an entity
func (w *World) RemoveComponent(entityID EntityID, componentID ComponentID) {
	if componentMap, exists := w.components[entityID]; exists {
		delete(componentMap, componentID)
	}
}

// AddSystem adds a system to the world
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// Update runs all systems once, in the order they were registered
func (w *World) Update(dt float64) {
	for _, system := range w.systems {
		system.Update(w, dt)
	}
}

// GetSystems returns all systems registered in the world
func (w *World) GetSystems() []System {
	return w.systems
}

// EntitiesWith returns all entities carrying every one of the given
// components, in entity creation order
func (w *World) EntitiesWith(componentIDs ...ComponentID) []*Entity {
	entities := make([]*Entity, 0)

	for _, id := range w.order {
		componentMap := w.components[id]
		hasAll := true
		for _, componentID := range componentIDs {
			if _, exists := componentMap[componentID]; !exists {
				hasAll = false
				break
			}
		}
		if hasAll {
			entities = append(entities, w.entities[id])
		}
	}

	return entities
}

// GetAllEntities returns a slice of all entities in creation order
func (w *World) GetAllEntities() []*Entity {
	entities := make([]*Entity, 0, len(w.order))
	for _, id := range w.order {
		entities = append(entities, w.entities[id])
	}
	return entities
}

// EntityCount returns the number of entities in the world
func (w *World) EntityCount() int {
	return len(w.order)
}

// GetEntity returns an entity by its ID
func (w *World) GetEntity(entityID EntityID) *Entity {
	entity, exists := w.entities[entityID]
	if !exists {
		return nil
	}
	return entity
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}
