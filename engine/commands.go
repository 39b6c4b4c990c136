package engine

import (
	"github.com/lixenwraith/henshin/core"
)

// SpawnFunc builds one entity tree when the command buffer is flushed
type SpawnFunc func(w *World) core.Entity

type opKind uint8

const (
	opSpawn opKind = iota
	opDespawnRecursive
)

type command struct {
	kind   opKind
	entity core.Entity
	spawn  SpawnFunc
}

// CommandBuffer collects structural changes requested during a tick
// and applies them, in request order, once all systems have run
// Systems iterating stores therefore never observe half-created or half-destroyed entities
type CommandBuffer struct {
	ops []command
}

// NewCommandBuffer creates an empty command buffer
func NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{ops: make([]command, 0, 16)}
}

// Spawn queues creation of an entity tree
func (cb *CommandBuffer) Spawn(fn SpawnFunc) {
	cb.ops = append(cb.ops, command{kind: opSpawn, spawn: fn})
}

// DespawnRecursive queues destruction of an entity and everything it owns
func (cb *CommandBuffer) DespawnRecursive(e core.Entity) {
	cb.ops = append(cb.ops, command{kind: opDespawnRecursive, entity: e})
}

// Len returns the number of pending commands
func (cb *CommandBuffer) Len() int {
	return len(cb.ops)
}

// Flush applies pending commands and returns the entities spawned
// Despawns of entities that are already gone are skipped
func (cb *CommandBuffer) Flush(w *World) []core.Entity {
	if len(cb.ops) == 0 {
		return nil
	}

	ops := cb.ops
	cb.ops = make([]command, 0, cap(ops))

	var spawned []core.Entity
	for _, op := range ops {
		switch op.kind {
		case opSpawn:
			spawned = append(spawned, op.spawn(w))
		case opDespawnRecursive:
			if w.Alive(op.entity) {
				w.DestroyRecursive(op.entity)
			}
		default:
			panic("unreachable: unknown command kind")
		}
	}
	return spawned
}
