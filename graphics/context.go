package graphics

// Context is the interface the renderer needs from a windowing backend.
// It matches the capabilities of a GLFW window but keeps the renderer's
// frame loop independent of any one backend.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
}
