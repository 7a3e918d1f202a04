package lib

import (
	"fmt"
	"image"
	"math"
	"sort"
)

// Sprite selects what the renderer draws into a rectangle. The renderer decides
// what each sprite looks like.
type Sprite int

const (
	SpriteGround Sprite = iota
	SpriteBirch
	SpriteTree
	SpriteHighlight
	SpriteTarget
	SpritePlayer
	SpriteEnemy
	SpriteCount
)

func (s Sprite) String() string {
	switch s {
	case SpriteGround:
		return "GROUND"
	case SpriteBirch:
		return "BIRCH"
	case SpriteTree:
		return "TREE"
	case SpriteHighlight:
		return "HIGHLIGHT"
	case SpriteTarget:
		return "TARGET"
	case SpritePlayer:
		return "PLAYER"
	case SpriteEnemy:
		return "ENEMY"
	}
	panic(fmt.Errorf("Unknown sprite: %d", int(s)))
}

func decorationSprite(d Decoration) (Sprite, bool) {
	switch d {
	case Birch:
		return SpriteBirch, true
	case Tree:
		return SpriteTree, true
	}
	return 0, false
}

// Layers are drawn in increasing order.
type Layer int

const (
	LayerGround Layer = iota
	LayerDecoration
	LayerOverlay
	LayerActors
)

type DrawRequest struct {
	Rect   image.Rectangle
	Sprite Sprite
	Layer  Layer
}

func (s *Session) actorRect(a *Actor) image.Rectangle {
	extent := s.Config.Layout.TileExtent()
	x0, y0 := int(math.Round(a.Pixel.X)), int(math.Round(a.Pixel.Y))
	return image.Rect(x0, y0, x0+int(math.Round(extent.X)), y0+int(math.Round(extent.Y)))
}

// DrawList returns the draw requests of the current frame, ordered by layer.
func (s *Session) DrawList(cursor Point) []DrawRequest {
	scene := s.Mode.Scene()
	var requests []DrawRequest
	if scene.ShowMap {
		requests = s.mapRequests(cursor)
	}
	if scene.ShowCombat {
		requests = append(requests, s.combatRequests(scene)...)
	}
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].Layer < requests[j].Layer
	})
	return requests
}

func (s *Session) mapRequests(cursor Point) []DrawRequest {
	layout := s.Config.Layout
	requests := make([]DrawRequest, 0, 2*s.Map.Len()+4)
	for tile := range s.Map.Tiles() {
		rect := TileRect(layout, tile.Coord)
		requests = append(requests, DrawRequest{rect, SpriteGround, LayerGround})
		if sprite, ok := decorationSprite(tile.Decoration); ok {
			requests = append(requests, DrawRequest{rect, sprite, LayerDecoration})
		}
	}
	if tile, ok := s.Highlighted(cursor); ok {
		requests = append(requests, DrawRequest{TileRect(layout, tile), SpriteHighlight, LayerOverlay})
	}
	if tile, ok := s.TargetTile(); ok {
		requests = append(requests, DrawRequest{TileRect(layout, tile), SpriteTarget, LayerOverlay})
	}
	requests = append(requests,
		DrawRequest{s.actorRect(s.Enemy), SpriteEnemy, LayerActors},
		DrawRequest{s.actorRect(s.Player), SpritePlayer, LayerActors})
	return requests
}

// In combat the shooter stands in the left quarter of the window and the target in the right one.
func (s *Session) combatRequests(scene Scene) []DrawRequest {
	extent := s.Config.Layout.TileExtent()
	w, h := int(extent.X), int(extent.Y)
	y := s.Config.WindowHeight/2 - h/2
	var requests []DrawRequest
	if scene.ShowShooter {
		x := s.Config.WindowWidth/4 - w/2
		requests = append(requests, DrawRequest{image.Rect(x, y, x+w, y+h), SpritePlayer, LayerActors})
	}
	if scene.ShowTarget {
		x := 3*s.Config.WindowWidth/4 - w/2
		requests = append(requests, DrawRequest{image.Rect(x, y, x+w, y+h), SpriteEnemy, LayerActors})
	}
	return requests
}
