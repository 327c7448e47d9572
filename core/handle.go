package core

// Handle addresses a pool slot; Gen detects reuse after release
type Handle struct {
	Index uint32
	Gen   uint32
}

// NilHandle never resolves in any pool (generations start at 1)
var NilHandle = Handle{}

// IsNil reports whether the handle was never assigned
func (h Handle) IsNil() bool {
	return h.Gen == 0
}

// Owner is a liveness token scheduled callbacks are bound to
// NoOwner is always alive and cannot be retired
type Owner uint64

const NoOwner Owner = 0

// TimerID identifies one scheduled callback
type TimerID uint64

// Faction separates player and enemy projectiles for collision
type Faction uint8

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}
