package survival

import "fmt"

// ObstacleKind identifies one of the thrown school objects.
type ObstacleKind int

const (
	KindPaperAirplane ObstacleKind = iota
	KindTextbook
	KindApple
	KindPencil
	KindBackpack
	KindLunchTray

	kindCount
)

// KindSpec is the static property table entry of an obstacle kind.
type KindSpec struct {
	Name   string
	Width  float64
	Height float64
	Speed  float64 // Leftward speed in px/s before the difficulty scalar

	// Spawn height is GroundLevel - SpawnOffset + rand*SpawnRange.
	SpawnOffset float64
	SpawnRange  float64

	// Heavy objects fall under obstacle gravity and bounce on the ground.
	Heavy bool
}

var kindTable = [kindCount]KindSpec{
	KindPaperAirplane: {Name: "paperAirplane", Width: 20, Height: 15, Speed: 150, SpawnOffset: 80, SpawnRange: 40},
	KindTextbook:      {Name: "textbook", Width: 25, Height: 35, Speed: 100, SpawnOffset: 20, SpawnRange: 20, Heavy: true},
	KindApple:         {Name: "apple", Width: 18, Height: 18, Speed: 80, SpawnOffset: 30, SpawnRange: 30},
	KindPencil:        {Name: "pencil", Width: 8, Height: 30, Speed: 200, SpawnOffset: 60, SpawnRange: 60},
	KindBackpack:      {Name: "backpack", Width: 35, Height: 45, Speed: 60, SpawnOffset: 10, SpawnRange: 10, Heavy: true},
	KindLunchTray:     {Name: "lunchTray", Width: 40, Height: 25, Speed: 90, SpawnOffset: 40, SpawnRange: 40, Heavy: true},
}

var kindsByName = func() map[string]ObstacleKind {
	m := make(map[string]ObstacleKind, kindCount)
	for k := ObstacleKind(0); k < kindCount; k++ {
		m[kindTable[k].Name] = k
	}
	return m
}()

// AllKinds returns every obstacle kind in catalog order.
func AllKinds() []ObstacleKind {
	kinds := make([]ObstacleKind, kindCount)
	for i := range kinds {
		kinds[i] = ObstacleKind(i)
	}
	return kinds
}

// Valid reports whether k is one of the catalog kinds.
func (k ObstacleKind) Valid() bool {
	return k >= 0 && k < kindCount
}

// Spec returns the property table entry for k. k must be valid.
func (k ObstacleKind) Spec() KindSpec {
	return kindTable[k]
}

// String returns the catalog name of the kind.
func (k ObstacleKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("ObstacleKind(%d)", int(k))
	}
	return kindTable[k].Name
}

// ParseObstacleKind resolves a catalog name such as "apple".
func ParseObstacleKind(name string) (ObstacleKind, error) {
	k, ok := kindsByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownObstacle, name)
	}
	return k, nil
}

// SpawnY draws a spawn height for the kind relative to groundLevel.
func (s KindSpec) SpawnY(groundLevel float64, rnd Rand) float64 {
	return groundLevel - s.SpawnOffset + rnd.Float64()*s.SpawnRange
}
