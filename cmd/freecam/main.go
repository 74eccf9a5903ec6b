package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/leterax/go-freecam/pkg/render"
)

func init() {
	// GLFW and OpenGL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	cfg := render.DefaultConfig()

	width := flag.Int("width", cfg.Width, "Window width in pixels")
	height := flag.Int("height", cfg.Height, "Window height in pixels")
	vsync := flag.Bool("vsync", cfg.VSync, "Enable vertical sync")
	speed := flag.Float64("speed", float64(cfg.CameraSpeed), "Camera speed in units per second")
	fov := flag.Float64("fov", float64(cfg.FOV), "Vertical field of view in degrees")
	grid := flag.Int("grid", cfg.GridSize, "Number of cubes along each side of the field")
	spacing := flag.Float64("spacing", float64(cfg.GridSpacing), "Distance between neighbouring cubes")
	vertPath := flag.String("vert", "", "Vertex shader file (overrides the built-in shader, needs -frag)")
	fragPath := flag.String("frag", "", "Fragment shader file (overrides the built-in shader, needs -vert)")
	flag.Parse()

	if (*vertPath == "") != (*fragPath == "") {
		log.Fatalf("-vert and -frag must be given together")
	}

	cfg.Width = *width
	cfg.Height = *height
	cfg.VSync = *vsync
	cfg.CameraSpeed = float32(*speed)
	cfg.FOV = float32(*fov)
	cfg.GridSize = *grid
	cfg.GridSpacing = float32(*spacing)
	cfg.VertexShaderPath = *vertPath
	cfg.FragmentShaderPath = *fragPath

	log.Println("Starting free camera demo. WASD to move, mouse to look, C toggles capture, Esc quits.")

	renderer, err := render.NewRenderer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	renderer.Run()
}
