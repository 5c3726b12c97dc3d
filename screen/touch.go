package screen

import "github.com/hajimehoshi/ebiten/v2"

// updateTouch picks the touch that acts as the pointer. A finger keeps that
// role until it lifts; then the oldest remaining touch takes over.
func (g *Game) updateTouch() {
	// Reuse the slice; touches change every frame.
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	g.primaryTouch, g.touching = primaryTouch(g.touchIDs, g.primaryTouch, g.touching)
}

func primaryTouch(active []ebiten.TouchID, current ebiten.TouchID, touching bool) (ebiten.TouchID, bool) {
	if touching && containsTouchID(active, current) {
		return current, true
	}
	if len(active) == 0 {
		return 0, false
	}
	return active[0], true
}

// containsTouchID reports whether the pointer touch is still down.
func containsTouchID(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, tid := range ids {
		if tid == id {
			return true
		}
	}
	return false
}
