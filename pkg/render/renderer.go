package render

import (
	_ "embed"
	"fmt"
	"log"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-freecam/internal/openglhelper"
	"github.com/leterax/go-freecam/pkg/camera"
	"github.com/leterax/go-freecam/pkg/scene"
)

//go:embed shaders/vert.glsl
var vertexShaderSource string

//go:embed shaders/frag.glsl
var fragmentShaderSource string

// Config holds the renderer settings
type Config struct {
	Width  int
	Height int
	Title  string
	VSync  bool

	CameraSpeed float32
	FOV         float32

	GridSize    int
	GridSpacing float32

	// Optional shader overrides. Both must be set to take effect.
	VertexShaderPath   string
	FragmentShaderPath string
}

// DefaultConfig returns the settings used when no flags are given
func DefaultConfig() Config {
	return Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Title:       DefaultTitle,
		VSync:       true,
		CameraSpeed: camera.DefaultSpeed,
		FOV:         scene.DefaultFOV,
		GridSize:    scene.DefaultGridSize,
		GridSpacing: scene.DefaultGridSpacing,
	}
}

// Renderer drives the frame loop: it samples input, updates the camera and
// draws a field of spinning cubes through the camera's view transform.
type Renderer struct {
	window *openglhelper.Window
	camera *camera.Camera
	input  windowInput

	cubeShader *openglhelper.Shader
	cube       *openglhelper.Mesh

	projection scene.Projection
	spin       *scene.Spin
	cells      []scene.Cell

	// Timing
	lastFrameTime float64
	deltaTime     float32
}

// NewRenderer opens the window and uploads the scene
func NewRenderer(cfg Config) (*Renderer, error) {
	window, err := openglhelper.NewWindow(cfg.Width, cfg.Height, cfg.Title, cfg.VSync)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	projection := scene.DefaultProjection()
	if cfg.FOV > 0 {
		projection.FOV = cfg.FOV
	}

	cameraOpts := []camera.Option{camera.WithPosition(defaultEye)}
	if cfg.CameraSpeed > 0 {
		cameraOpts = append(cameraOpts, camera.WithSpeed(cfg.CameraSpeed))
	}

	renderer := &Renderer{
		window:     window,
		camera:     camera.New(cameraOpts...),
		input:      windowInput{window: window},
		projection: projection,
		spin:       scene.NewSpin(),
		cells:      scene.Grid(cfg.GridSize, cfg.GridSpacing),
	}

	window.GLFWWindow().SetKeyCallback(renderer.keyCallback)
	window.GLFWWindow().SetFramebufferSizeCallback(renderer.framebufferSizeCallback)

	shader, err := loadShader(cfg)
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}
	renderer.cubeShader = shader
	renderer.cube = openglhelper.NewCube()

	window.SetMouseCaptured(true)
	// Prime the cursor and build the basis before the first frame is drawn
	renderer.camera.OnMouse(window.CursorPos())

	return renderer, nil
}

// loadShader builds the cube program from disk when both paths are set,
// otherwise from the embedded sources
func loadShader(cfg Config) (*openglhelper.Shader, error) {
	if cfg.VertexShaderPath != "" && cfg.FragmentShaderPath != "" {
		return openglhelper.LoadShaderFromFiles(cfg.VertexShaderPath, cfg.FragmentShaderPath)
	}
	return openglhelper.NewShader(vertexShaderSource, fragmentShaderSource)
}

// update advances the clock, the camera and the animation
func (r *Renderer) update() {
	currentTime := glfw.GetTime()
	r.deltaTime = float32(currentTime - r.lastFrameTime)
	r.lastFrameTime = currentTime

	// Mouse-look only while the cursor is captured
	if r.window.IsMouseCaptured() {
		r.camera.Update(r.deltaTime, r.input)
	} else {
		r.camera.OnFrame(r.deltaTime, r.input.Keys())
	}

	r.spin.Advance(r.deltaTime)
}

// render draws every cell with the current view and projection
func (r *Renderer) render() {
	r.window.Clear(clearColor)

	r.cubeShader.Use()
	r.cubeShader.SetMat4("view", r.camera.ViewTransform())
	// The camera's up axis is u x n, which points toward world -Y
	r.cubeShader.SetMat4("projection", scene.FlipY(r.projection.Matrix(r.window.AspectRatio())))
	r.cubeShader.SetVec3("viewPos", r.camera.Position())
	r.cubeShader.SetVec3("lightPos", mgl32.Vec3{10, 20, -10})

	spin := r.spin.Matrix()
	for _, cell := range r.cells {
		model := mgl32.Translate3D(cell.Position.Elem()).Mul4(spin)
		r.cubeShader.SetMat4("model", model)
		r.cubeShader.SetVec3("objectColor", cell.Color)
		r.cube.Draw()
	}
}

// Run starts the main loop and cleans up once the window closes
func (r *Renderer) Run() {
	r.lastFrameTime = glfw.GetTime()

	for !r.window.ShouldClose() {
		r.update()
		r.render()

		r.window.SwapBuffers()
		r.window.PollEvents()
	}

	r.Cleanup()
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	if r.cube != nil {
		r.cube.Delete()
		r.cube = nil
	}
	if r.cubeShader != nil {
		r.cubeShader.Delete()
		r.cubeShader = nil
	}

	yaw, pitch := r.camera.Orientation()
	log.Printf("Closing at position %v, yaw %.1f, pitch %.1f", r.camera.Position(), yaw, pitch)

	r.window.Close()
}

// Callback functions
func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != Press {
		return
	}

	switch key {
	case KeyEscape:
		r.window.SetShouldClose(true)
	case KeyToggleCapture:
		r.window.ToggleMouseCaptured()
		// The cursor jumps when capture changes; prime again instead of turning
		r.camera.ResetMouse()
		log.Printf("Mouse captured: %v", r.window.IsMouseCaptured())
	}
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnResize(width, height)
}
