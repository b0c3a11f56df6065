package scene

// Screen selects which top-level view presentation draws
type Screen uint8

const (
	ScreenMenu Screen = iota
	ScreenPlay
	ScreenCredits
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "Menu"
	case ScreenPlay:
		return "Play"
	case ScreenCredits:
		return "Credits"
	default:
		return "Unknown"
	}
}

// Kind classifies scene entities for renderers and hit-testing
type Kind uint8

const (
	KindFloor Kind = iota
	KindGrid
	KindWall
	KindProp
	KindBody
	KindSlot
	KindHand
	KindGlass
	KindCrack
	KindFrame
	KindCharacter
)

var kindNames = [...]string{
	KindFloor:     "Floor",
	KindGrid:      "Grid",
	KindWall:      "Wall",
	KindProp:      "Prop",
	KindBody:      "Body",
	KindSlot:      "Slot",
	KindHand:      "Hand",
	KindGlass:     "Glass",
	KindCrack:     "Crack",
	KindFrame:     "Frame",
	KindCharacter: "Character",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Shape is the primitive a prop is drawn as
type Shape uint8

const (
	ShapeBox Shape = iota
	ShapeSphere
	ShapeCylinder
)

// Vec3 is a world-space position or extent, y up
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v+o
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v*s
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Color is a 24-bit RGB value taken from the scene palette
type Color uint32

// RGB splits the color into components
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Palette
const (
	ColorAccent  Color = 0x0EA5E9
	ColorDark    Color = 0x1A1F2C
	ColorGray    Color = 0x8E9196
	ColorFloor   Color = 0x0F1419
	ColorCrack   Color = 0xFFFFFF
	ColorWarning Color = 0xEAB308
)

// Entity is one visible element of the scene
type Entity struct {
	ID    string
	Kind  Kind
	Shape Shape
	Pos   Vec3
	Size  Vec3
	Color Color
	Label string
	Item  string
}

// Slot identifies a body inventory slot
type Slot uint8

const (
	SlotChestLeft Slot = iota
	SlotChestRight
	SlotHipLeft
	SlotHipRight
	SlotBack
)

// SlotCount is the number of body inventory slots
const SlotCount = 5

// View is the declarative result of composing a snapshot
type View struct {
	Screen Screen

	// Level and FinalLevel drive the banner above the arena
	Level      int
	FinalLevel bool

	Entities []Entity

	// BossVisible is true while the glass, the character and the warning are shown
	BossVisible bool
	CrackCount  int

	// ShootEnabled is false when the magazine is empty
	ShootEnabled bool
}

// Filter returns the entities of the given kind in composition order
func (v View) Filter(k Kind) []Entity {
	var out []Entity
	for _, e := range v.Entities {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

// Find returns the entity with the given id
func (v View) Find(id string) (Entity, bool) {
	for _, e := range v.Entities {
		if e.ID == id {
			return e, true
		}
	}
	return Entity{}, false
}
