package scene

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"

	"github.com/lixenwraith/gman-shooter/game"
	"github.com/lixenwraith/gman-shooter/parameter"
)

// Entity ids referenced by interaction and rendering
const (
	IDFloor     = "floor"
	IDGrid      = "grid"
	IDWall      = "wall"
	IDBody      = "body"
	IDHandLeft  = "hand.left"
	IDHandRight = "hand.right"
	IDGlass     = "glass"
	IDFrame     = "glass.frame"
	IDCharacter = "character"
)

// Item names carried in inventory slots
const (
	ItemGun    = "gun"
	ItemMedkit = "medkit"
)

// GlassOrigin is the center of the boss glass pane
var GlassOrigin = Vec3{0, 2, 10}

// GlassSize is the extent of the glass pane
var GlassSize = Vec3{3, 4, 0.2}

type propDef struct {
	shape Shape
	pos   Vec3
	color Color
	scale float32
}

var props = [...]propDef{
	{ShapeBox, Vec3{-2, 2, 3}, ColorDark, 1},
	{ShapeSphere, Vec3{2, 3, 2}, ColorAccent, 0.8},
	{ShapeCylinder, Vec3{0, 2.5, 4}, ColorGray, 0.7},
	{ShapeBox, Vec3{-3, 1.5, 1}, ColorDark, 0.6},
	{ShapeSphere, Vec3{3, 1.8, 3}, ColorAccent, 0.5},
}

type slotDef struct {
	id    string
	label string
	pos   Vec3
	item  string
}

// Body-relative slot placement, body sits at z=-2
var slots = [SlotCount]slotDef{
	SlotChestLeft:  {"slot.chest_left", "slot.chest_left", Vec3{-0.3, 0.8, 0.25}, ""},
	SlotChestRight: {"slot.chest_right", "slot.chest_right", Vec3{0.3, 0.8, 0.25}, ""},
	SlotHipLeft:    {"slot.hip_left", "slot.hip_left", Vec3{-0.5, 0, 0.25}, ItemGun},
	SlotHipRight:   {"slot.hip_right", "slot.hip_right", Vec3{0.5, 0, 0.25}, ItemMedkit},
	SlotBack:       {"slot.back", "slot.back", Vec3{0, 1.2, -0.15}, ""},
}

var bodyOrigin = Vec3{0, 0, -2}

// SlotID returns the entity id of a body slot
func SlotID(s Slot) string {
	return slots[s].id
}

// PropID returns the entity id of the i-th prop
func PropID(i int) string {
	return fmt.Sprintf("prop.%d", i)
}

// Compose maps a snapshot to the entities presentation should show
// Pure: equal snapshots compose to equal views
func Compose(s game.Snapshot) View {
	v := View{
		Level:        s.Level,
		FinalLevel:   s.Level >= parameter.MaxLevel,
		CrackCount:   s.CrackCount,
		ShootEnabled: s.Ammo > 0,
	}

	switch s.Phase {
	case game.PhaseMenu:
		v.Screen = ScreenMenu
		return v
	case game.PhaseCredits:
		v.Screen = ScreenCredits
		return v
	}

	v.Screen = ScreenPlay
	v.Entities = make([]Entity, 0, 16+s.CrackCount*parameter.CracksPerHit)
	v.Entities = appendArena(v.Entities)
	v.Entities = appendBody(v.Entities)
	v.Entities = appendHands(v.Entities)

	if s.Phase == game.PhaseBossEncounter {
		v.BossVisible = true
		v.Entities = appendBoss(v.Entities, s)
	}
	return v
}

func appendArena(es []Entity) []Entity {
	es = append(es,
		Entity{ID: IDFloor, Kind: KindFloor, Pos: Vec3{0, -1, 0}, Size: Vec3{50, 0.5, 50}, Color: ColorFloor},
		Entity{ID: IDGrid, Kind: KindGrid, Pos: Vec3{0, -0.7, 0}, Size: Vec3{40, 0.05, 40}, Color: ColorAccent},
		Entity{ID: IDWall, Kind: KindWall, Pos: Vec3{-5, 1, 5}, Size: Vec3{2, 3, 0.5}, Color: ColorDark},
	)
	for i, p := range props {
		size := Vec3{1, 1, 1}
		if p.shape == ShapeCylinder {
			size = Vec3{0.6, 1, 0.6}
		}
		es = append(es, Entity{
			ID:    PropID(i),
			Kind:  KindProp,
			Shape: p.shape,
			Pos:   p.pos,
			Size:  size.Scale(p.scale),
			Color: p.color,
		})
	}
	return es
}

func appendBody(es []Entity) []Entity {
	es = append(es, Entity{ID: IDBody, Kind: KindBody, Pos: bodyOrigin.Add(Vec3{0, 0.5, 0}), Size: Vec3{0.8, 1.2, 0.4}, Color: ColorDark})
	for _, sl := range slots {
		c := ColorDark
		if sl.item != "" {
			c = ColorAccent
		}
		es = append(es, Entity{
			ID:    sl.id,
			Kind:  KindSlot,
			Pos:   bodyOrigin.Add(sl.pos),
			Size:  Vec3{0.3, 0.3, 0.1},
			Color: c,
			Label: sl.label,
			Item:  sl.item,
		})
	}
	return es
}

func appendHands(es []Entity) []Entity {
	return append(es,
		Entity{ID: IDHandLeft, Kind: KindHand, Shape: ShapeSphere, Pos: Vec3{-1, 1.5, 1}, Size: Vec3{0.3, 0.3, 0.3}, Color: ColorGray},
		Entity{ID: IDHandRight, Kind: KindHand, Shape: ShapeSphere, Pos: Vec3{1, 1.5, 1}, Size: Vec3{0.3, 0.3, 0.3}, Color: ColorGray},
	)
}

func appendBoss(es []Entity, s game.Snapshot) []Entity {
	es = append(es,
		Entity{ID: IDFrame, Kind: KindFrame, Pos: GlassOrigin.Add(Vec3{0, 0, -0.5}), Size: Vec3{3.1, 4.1, 0.1}, Color: ColorDark},
		Entity{ID: IDCharacter, Kind: KindCharacter, Shape: ShapeCylinder, Pos: GlassOrigin.Add(Vec3{0, 0, -0.4}), Size: Vec3{0.7, 1.4, 0.7}, Color: ColorDark, Label: "boss.name"},
		Entity{ID: IDGlass, Kind: KindGlass, Shape: ShapeBox, Pos: GlassOrigin, Size: GlassSize, Color: ColorAccent},
	)
	return append(es, Cracks(s.SessionID, s.CrackCount)...)
}

// Cracks lays out count*CracksPerHit crack lines on the glass
// Positions depend only on the seed and the index so earlier cracks stay put as new ones appear
func Cracks(seed string, count int) []Entity {
	n := max(count, 0) * parameter.CracksPerHit
	if n == 0 {
		return nil
	}
	h := fnv.New64a()
	h.Write([]byte(seed))
	base := h.Sum64()

	out := make([]Entity, n)
	for i := range out {
		r := rand.New(rand.NewPCG(base, uint64(i)))
		out[i] = Entity{
			ID:    fmt.Sprintf("crack.%d", i),
			Kind:  KindCrack,
			Pos:   GlassOrigin.Add(Vec3{(r.Float32() - 0.5) * 2.5, (r.Float32() - 0.5) * 3.5, 0.15}),
			Size:  Vec3{r.Float32()*0.5 + 0.2, 0.02, 0},
			Color: ColorCrack,
		}
	}
	return out
}
