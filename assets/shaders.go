package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// ScruffyShader warps the character layer by a noise texture
	ScruffyShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	src, err := shaderFS.ReadFile("shaders/scruffy.kage")
	if err != nil {
		return fmt.Errorf("failed to read scruffy shader: %w", err)
	}
	ScruffyShader, err = ebiten.NewShader(src)
	if err != nil {
		return fmt.Errorf("failed to compile scruffy shader: %w", err)
	}
	return nil
}
