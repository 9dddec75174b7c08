// Package bastion is a small retained-mode 2D game core for [Ebitengine],
// built around a tower-defense playfield.
//
// Bastion provides the object tree, transform hierarchy, frame-phased
// components, a buildable terrain grid with snapping and occupancy, the core
// structure with its health bar, and a drag-and-drop inventory with a hotbar.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := bastion.NewScene()
//	// ... add objects ...
//	bastion.Run(scene, bastion.RunConfig{
//		Title: "My Game", Width: 640, Height: 480,
//	})
//
// For full control, wrap the scene with [NewGame] or call [Scene.Update] and
// [Scene.Draw] from your own [ebiten.Game].
//
// # Object tree
//
// Every element is a [GameObject]. Objects form a tree rooted at
// [Scene.Root]. Children inherit their parent's transform and alpha, and
// sibling names are unique so [GameObject.Child] can look them up.
//
//	ui := bastion.NewContainer("ui")
//	scene.Root().AddChild(ui)
//
// Behavior is attached as components: any value implementing one or more of
// [Initializer], [EarlyUpdater], [Updater], [Drawer] and [Disposer]. Each
// [Scene.Update] samples input once, runs the early pass over the whole tree
// and then the normal pass. [Scene.Draw] blits visuals in child order.
//
// # Terrain and placement
//
// The [Terrain] is registered under [TerrainName]. A [Placeable] resolves it
// through the scene, snaps to the cell under its position and claims that
// cell on [Placeable.Register] when the cell is free and nothing collides.
// Snapping happens in world space before the object has a parent, so attach
// it with [Placeable.AttachTo], which keeps the world position, rather than
// a bare AddChild under a transformed parent.
//
//	t := bastion.NewTerrain(bastion.TerrainName, center, 15, 9, 64, ground)
//	scene.Register(bastion.TerrainName, t.Object())
//	block, _ := bastion.NewBlock(scene, "wall", cursor, wallVisual)
//	if block.Register() {
//		block.AttachTo(scene.Root())
//	}
//
// # Inventory
//
// An [Inventory] holds cols×rows items plus a hotbar of cols slots, opened
// with a toggle key. Cells share one address space where Row == Rows() is
// the hotbar. The inventory is a ScreenSpace object: it is drawn and hit
// tested in screen coordinates whatever the camera does.
//
// # Camera
//
// A [Camera] installed with [Scene.SetCamera] offsets every world-space
// object when drawing. Input stays in screen space; convert the pointer with
// [Scene.ScreenToWorld] before placing blocks.
//
//	cam := bastion.NewCamera(bastion.Vec2{X: 1280, Y: 720})
//	scene.SetCamera(cam)
//	cam.ScrollTo(target, 0.4, ease.OutQuad)
//
// [Ebitengine]: https://ebitengine.org
package bastion
