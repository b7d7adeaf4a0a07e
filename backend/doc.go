// Package backend provides pluggable texture backends for pixelgrid hosts.
//
// A backend owns texture storage (it is the gpucontext.TextureCreator the
// grid sync writes into) and draws its textures into a viewport. The
// software backend keeps textures in memory and is always available; it is
// used by the headless demo and the terminal host.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected by name at
// runtime. The software backend is registered on import and is the
// default:
//
//	import "github.com/gogpu/pixelgrid/backend"
//
// # Backend Selection
//
// InitNamed creates and initializes a backend by name; an empty name
// selects DefaultBackend. Available lists the registered names:
//
//	b, err := backend.InitNamed("software")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
//	sync, err := gridtex.New(grid, b.TextureCreator())
//
// # Drawing
//
// DrawTexture takes a texel-to-screen matrix, normally the camera view
// matrix composed with the sprite placement (see scene.Scene.TextureMatrix):
//
//	dst := image.NewRGBA(image.Rect(0, 0, 800, 600))
//	err := b.DrawTexture(dst, sync.Texture(), s.TextureMatrix(viewport))
//
// # Available Backends
//
// - "software": in-memory textures drawn with golang.org/x/image/draw
package backend
