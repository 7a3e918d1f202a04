package main

// Types of the Tiled JSON map format, limited to what the odd-q hex map export writes.

type Orientation string

const Hexagonal Orientation = "hexagonal"

type RenderOrder string

const RightDown RenderOrder = "right-down"

type Axis string

// X staggers columns, matching the odd-q grid.
const X Axis = "x"

type StaggerIndex string

// Odd shifts odd columns down.
const Odd StaggerIndex = "odd"

type LayerType string

const (
	TileLayer   LayerType = "tilelayer"
	ObjectGroup LayerType = "objectgroup"
)

type Property struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

type Object struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Point   bool    `json:"point"`
	Visible bool    `json:"visible"`
}

type Layer struct {
	Data    []int     `json:"data,omitempty"`
	Objects []Object  `json:"objects,omitempty"`
	Height  int       `json:"height,omitempty"`
	Width   int       `json:"width,omitempty"`
	ID      int       `json:"id"`
	Name    string    `json:"name"`
	Opacity float64   `json:"opacity"`
	Type    LayerType `json:"type"`
	Visible bool      `json:"visible"`
	X       int       `json:"x"`
	Y       int       `json:"y"`
}

type TileSet struct {
	Columns     int    `json:"columns"`
	FirstGID    int    `json:"firstgid"`
	Margin      int    `json:"margin"`
	Name        string `json:"name"`
	Spacing     int    `json:"spacing"`
	TileCount   int    `json:"tilecount"`
	TileHeight  int    `json:"tileheight"`
	TileWidth   int    `json:"tilewidth"`
	Image       string `json:"image"`
	ImageHeight int    `json:"imageheight"`
	ImageWidth  int    `json:"imagewidth"`
}

type TiledMap struct {
	Height        int          `json:"height"`
	Width         int          `json:"width"`
	Infinite      bool         `json:"infinite"`
	Layers        []Layer      `json:"layers"`
	NextLayerID   int          `json:"nextlayerid"`
	NextObjectID  int          `json:"nextobjectid"`
	Orientation   Orientation  `json:"orientation"`
	RenderOrder   RenderOrder  `json:"renderorder"`
	StaggerAxis   Axis         `json:"staggeraxis"`
	StaggerIndex  StaggerIndex `json:"staggerindex"`
	HexSideLength int          `json:"hexsidelength"`
	TileHeight    int          `json:"tileheight"`
	TileWidth     int          `json:"tilewidth"`
	Type          string       `json:"type"`
	TileSets      []TileSet    `json:"tilesets"`
	Properties    []Property   `json:"properties,omitempty"`
}
