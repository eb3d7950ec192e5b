package renderer

import (
	"fmt"
	"log"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	gst "github.com/richinsley/goshadertranslator"

	"github.com/lumascope/lumascope/glfwcontext"
	"github.com/lumascope/lumascope/graphics"
	"github.com/lumascope/lumascope/shader"
	"github.com/lumascope/lumascope/translator"
)

// quadVertices is the fullscreen quad: four corners of clip space, ordered
// so a triangle strip covers the whole [-1,1]x[-1,1] rectangle.
var quadVertices = []float32{
	-1.0, 1.0,
	1.0, 1.0,
	-1.0, -1.0,
	1.0, -1.0,
}

// Renderer owns the single program, quad buffer and clock that exist for the
// process lifetime, and drives the frame loop against a graphics context.
type Renderer struct {
	context graphics.Context
	window  *glfwcontext.Context

	quadVAO      uint32
	quadVBO      uint32
	program      uint32
	vertexAttrib uint32

	// Uniform locations resolved by name after linking. -1 means the
	// uniform is not present in the linked program and the per-frame set
	// is skipped.
	resolutionLoc int32
	timeLoc       int32

	width      int
	height     int
	recordMode bool

	offscreen          *OffscreenRenderer
	screenshotRequest  bool
	screenshotSequence int
}

// New creates the window, makes its context current and loads the OpenGL
// function pointers. Nothing else is initialized if any of those steps fail.
func New(width, height int, visible bool) (*Renderer, error) {
	r := &Renderer{
		width:      width,
		height:     height,
		recordMode: !visible,
	}

	win, err := glfwcontext.New(width, height, visible)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize glfw context: %w", err)
	}
	r.window = win
	r.context = win
	r.context.MakeCurrent()

	if err := gl.Init(); err != nil {
		r.context.Shutdown()
		return nil, fmt.Errorf("gl.Init: %w", err)
	}
	log.Printf("OpenGL version %s", gl.GoStr(gl.GetString(gl.VERSION)))

	if !r.recordMode {
		r.width, r.height = r.context.GetFramebufferSize()
	}

	return r, nil
}

// Window exposes the underlying GLFW context for key bindings.
func (r *Renderer) Window() *glfwcontext.Context {
	return r.window
}

// InitScene uploads the quad, compiles and links the fractal program,
// resolves its bindings and sets the static uniforms. Any failure here is
// fatal to startup; the frame loop never runs after an error.
func (r *Renderer) InitScene() error {
	gl.GenVertexArrays(1, &r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	xlate, err := translator.Shared()
	if err != nil {
		return err
	}
	fsShader, err := xlate.TranslateShader(shader.FragmentSource(), "fragment", gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return fmt.Errorf("fragment shader translation failed: %w", err)
	}

	r.program, err = newProgram(shader.VertexSource(), fsShader.Code)
	if err != nil {
		return fmt.Errorf("failed to create shader program: %w", err)
	}
	gl.UseProgram(r.program)

	attrib := gl.GetAttribLocation(r.program, gl.Str("aVertexPosition\x00"))
	if attrib < 0 {
		return fmt.Errorf("vertex attribute aVertexPosition not found in linked program")
	}
	r.vertexAttrib = uint32(attrib)
	gl.EnableVertexAttribArray(r.vertexAttrib)
	gl.VertexAttribPointerWithOffset(r.vertexAttrib, 2, gl.FLOAT, false, 2*4, 0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	// The translator rewrites uniform names; resolve through its variable
	// map. A uniform the compiler discarded resolves to -1 and is skipped
	// at set time.
	uniformMap := fsShader.Variables
	r.resolutionLoc = -1
	r.timeLoc = -1
	if v, ok := uniformMap["uResolution"]; ok {
		r.resolutionLoc = gl.GetUniformLocation(r.program, gl.Str(v.MappedName+"\x00"))
	}
	if v, ok := uniformMap["uTime"]; ok {
		r.timeLoc = gl.GetUniformLocation(r.program, gl.Str(v.MappedName+"\x00"))
	}

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	if r.resolutionLoc != -1 {
		gl.Uniform2f(r.resolutionLoc, float32(r.width), float32(r.height))
	}

	if r.recordMode {
		r.offscreen, err = NewOffscreenRenderer(r.width, r.height)
		if err != nil {
			return fmt.Errorf("failed to create offscreen renderer: %w", err)
		}
	}

	log.Printf("Fractal program ready at %dx%d", r.width, r.height)
	return nil
}

// RenderFrame pushes the elapsed time and draws the quad into whatever
// framebuffer is currently bound.
func (r *Renderer) RenderFrame(elapsed float64) {
	gl.UseProgram(r.program)
	if r.timeLoc != -1 {
		gl.Uniform1f(r.timeLoc, float32(elapsed))
	}
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.BindVertexArray(r.quadVAO)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
}

// Run drives the interactive frame loop: compute elapsed seconds, draw,
// swap, poll. It returns when the window is closed.
func (r *Renderer) Run() {
	clock := NewFrameClock(r.context.Time)

	for !r.context.ShouldClose() {
		r.RenderFrame(clock.Elapsed())

		if r.screenshotRequest {
			r.screenshotRequest = false
			if err := r.saveScreenshot(); err != nil {
				log.Printf("screenshot failed: %v", err)
			}
		}

		r.context.EndFrame()
	}
}

// Shutdown releases the GL objects and the window.
func (r *Renderer) Shutdown() {
	if r.offscreen != nil {
		r.offscreen.Destroy()
	}
	gl.DeleteProgram(r.program)
	gl.DeleteBuffers(1, &r.quadVBO)
	gl.DeleteVertexArrays(1, &r.quadVAO)
	r.context.Shutdown()
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logText))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %v", trimInfoLog(logText))
	}

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csources, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(sh, logLength, nil, gl.Str(logText))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("failed to compile shader: %v", trimInfoLog(logText))
	}
	return sh, nil
}

// trimInfoLog strips the NUL padding GL leaves in the info-log buffer so
// diagnostics embed cleanly in errors.
func trimInfoLog(s string) string {
	return strings.TrimRight(s, "\x00")
}
