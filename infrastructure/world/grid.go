package world

import (
	"chat-dispatch/domain/chat"
	"math"
)

// Position is a point on one map.
type Position struct {
	MapID uint32
	X, Y  float32
}

type cell struct {
	mapID uint32
	x, y  int32
}

type placed struct {
	entity chat.WorldEntity
	pos    Position
}

// grid buckets entities into square cells so a radius query only scans the
// cells it overlaps. Not safe for concurrent use; World guards it.
type grid struct {
	size     float32
	entities map[chat.GUID]placed
	cells    map[cell]map[chat.GUID]struct{}
}

func newGrid(size float32) *grid {
	if size <= 0 {
		size = 50
	}
	return &grid{
		size:     size,
		entities: make(map[chat.GUID]placed),
		cells:    make(map[cell]map[chat.GUID]struct{}),
	}
}

func (g *grid) cellOf(pos Position) cell {
	return cell{
		mapID: pos.MapID,
		x:     int32(math.Floor(float64(pos.X / g.size))),
		y:     int32(math.Floor(float64(pos.Y / g.size))),
	}
}

func (g *grid) place(e chat.WorldEntity, pos Position) {
	g.remove(e.GUID)
	g.entities[e.GUID] = placed{entity: e, pos: pos}
	c := g.cellOf(pos)
	if g.cells[c] == nil {
		g.cells[c] = make(map[chat.GUID]struct{})
	}
	g.cells[c][e.GUID] = struct{}{}
}

func (g *grid) move(guid chat.GUID, pos Position) bool {
	p, ok := g.entities[guid]
	if !ok {
		return false
	}
	g.place(p.entity, pos)
	return true
}

func (g *grid) remove(guid chat.GUID) {
	p, ok := g.entities[guid]
	if !ok {
		return
	}
	c := g.cellOf(p.pos)
	delete(g.cells[c], guid)
	if len(g.cells[c]) == 0 {
		delete(g.cells, c)
	}
	delete(g.entities, guid)
}

func (g *grid) around(origin chat.GUID, radius float32) []chat.WorldEntity {
	center, ok := g.entities[origin]
	if !ok {
		return nil
	}
	lo := g.cellOf(Position{MapID: center.pos.MapID, X: center.pos.X - radius, Y: center.pos.Y - radius})
	hi := g.cellOf(Position{MapID: center.pos.MapID, X: center.pos.X + radius, Y: center.pos.Y + radius})
	r2 := radius * radius

	var found []chat.WorldEntity
	for x := lo.x; x <= hi.x; x++ {
		for y := lo.y; y <= hi.y; y++ {
			for guid := range g.cells[cell{mapID: center.pos.MapID, x: x, y: y}] {
				p := g.entities[guid]
				dx, dy := p.pos.X-center.pos.X, p.pos.Y-center.pos.Y
				if dx*dx+dy*dy <= r2 {
					found = append(found, p.entity)
				}
			}
		}
	}
	return found
}
