package render

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-bridge/internal/openglhelper"
	"github.com/leterax/go-bridge/pkg/geometry"
	"github.com/leterax/go-bridge/pkg/level"
	log "github.com/sirupsen/logrus"
)

// Renderer handles rendering logic and game loop
type Renderer struct {
	cfg     Config
	window  *openglhelper.Window
	shader  *openglhelper.Shader
	mvpLoc  int32
	session *session

	blockMesh     *openglhelper.ColorMesh
	tileMesh      *openglhelper.ColorMesh
	breakableMesh *openglhelper.ColorMesh

	floor     []mgl32.Vec3
	breakable []level.Cell

	lastFrameTime float64
}

// NewRenderer opens the window, loads the shader program and uploads the
// block and tile meshes for layout.
func NewRenderer(cfg Config, layout *level.Layout, sounds SoundPlayer) (*Renderer, error) {
	window, err := openglhelper.NewWindow(openglhelper.WindowConfig{
		Width:  cfg.Width,
		Height: cfg.Height,
		Title:  cfg.Title,
		VSync:  cfg.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	r := &Renderer{
		cfg:     cfg,
		window:  window,
		session: newSession(cfg, layout, sounds),
	}

	fbWidth, fbHeight := window.FramebufferSize()
	r.framebufferSizeCallback(nil, fbWidth, fbHeight)

	glfwWindow := window.GLFWWindow()
	glfwWindow.SetKeyCallback(r.keyCallback)
	glfwWindow.SetCharCallback(r.charCallback)
	glfwWindow.SetMouseButtonCallback(r.mouseButtonCallback)
	glfwWindow.SetFramebufferSizeCallback(r.framebufferSizeCallback)
	glfwWindow.SetCloseCallback(r.closeCallback)

	shader, err := openglhelper.LoadShaderFromFiles(cfg.VertexShader, cfg.FragmentShader)
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}
	r.shader = shader
	r.mvpLoc = shader.UniformLocation("MVP")
	if r.mvpLoc < 0 {
		log.WithField("shader", cfg.VertexShader).Warn("shader has no MVP uniform")
	}
	log.WithFields(log.Fields{
		"vertex":   cfg.VertexShader,
		"fragment": cfg.FragmentShader,
	}).Info("shader program linked")

	if err := r.initMeshes(layout); err != nil {
		r.Cleanup()
		return nil, fmt.Errorf("failed to create meshes: %w", err)
	}

	return r, nil
}

// initMeshes uploads one mesh per kind of object. Every tile of a kind is
// drawn from the same mesh with its own model matrix.
func (r *Renderer) initMeshes(layout *level.Layout) error {
	var err error
	if r.blockMesh, err = newMesh(geometry.Cuboid()); err != nil {
		return fmt.Errorf("block: %w", err)
	}
	if r.tileMesh, err = newMesh(geometry.Tile()); err != nil {
		return fmt.Errorf("tile: %w", err)
	}
	if r.breakableMesh, err = newMesh(geometry.BreakableTile()); err != nil {
		return fmt.Errorf("breakable tile: %w", err)
	}

	for _, c := range layout.FloorCells() {
		r.floor = append(r.floor, c.Center())
	}
	r.breakable = layout.BreakableCells()

	log.WithFields(log.Fields{
		"layout":    layout.Name,
		"tiles":     len(r.floor),
		"breakable": len(r.breakable),
	}).Info("level loaded")
	return nil
}

func newMesh(m geometry.Mesh) (*openglhelper.ColorMesh, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return openglhelper.NewColorMesh(m.Positions, m.Colors)
}

// render draws the block and every tile from the current camera
func (r *Renderer) render() {
	r.window.Clear(ClearColor)
	r.shader.Use()

	s := r.session
	blockPos := s.roll.Position()
	vp := s.camera.ProjectionMatrix().Mul4(s.camera.ViewMatrix(s.view, blockPos))

	r.draw(r.blockMesh, vp.Mul4(s.state.Block.Model(blockPos)))

	for _, pos := range r.floor {
		r.draw(r.tileMesh, vp.Mul4(mgl32.Translate3D(pos.X(), pos.Y(), pos.Z())))
	}

	brokenCell, drop, broken := s.state.Broken()
	for _, c := range r.breakable {
		pos := c.Center()
		if broken && c == brokenCell {
			pos[1] -= drop
		}
		r.draw(r.breakableMesh, vp.Mul4(mgl32.Translate3D(pos.X(), pos.Y(), pos.Z())))
	}
}

func (r *Renderer) draw(mesh *openglhelper.ColorMesh, mvp mgl32.Mat4) {
	r.shader.SetMat4At(r.mvpLoc, mvp)
	mesh.Draw()
}

// Run starts the main rendering loop and returns once the window closes.
func (r *Renderer) Run() {
	r.lastFrameTime = glfw.GetTime()

	for !r.window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := float32(currentTime - r.lastFrameTime)
		r.lastFrameTime = currentTime

		r.session.update(deltaTime)
		if r.session.quit {
			r.window.SetShouldClose(true)
		}

		r.render()
		r.window.SetTitle(r.session.title(r.cfg.Title))

		r.window.SwapBuffers()
		r.window.PollEvents()
	}

	r.Cleanup()
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	for _, m := range []*openglhelper.ColorMesh{r.blockMesh, r.tileMesh, r.breakableMesh} {
		if m != nil {
			m.Delete()
		}
	}
	if r.shader != nil {
		r.shader.Delete()
	}
	r.window.Close()
}

// Callback functions
func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	cmd := commandFor(key, action)
	r.session.handle(cmd)
	if r.session.quit {
		r.window.SetShouldClose(true)
	}
}

func (r *Renderer) charCallback(_ *glfw.Window, char rune) {
	if isQuitChar(char) {
		r.session.handle(command{kind: cmdQuit})
		r.window.SetShouldClose(true)
	}
}

func (r *Renderer) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button == glfw.MouseButtonRight && action == Release {
		r.session.toggleSpin()
	}
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.window.OnResize(width, height)
	r.session.camera.UpdateProjectionMatrix(width, height)
}

func (r *Renderer) closeCallback(_ *glfw.Window) {
	log.WithField("moves", r.session.state.Moves).Info("window closed")
}
