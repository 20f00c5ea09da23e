package render

// Renderer produces one composite portrait per Request.
type Renderer interface {
	Render(req Request) error
}

// Request describes a single identity render. It is not modified by Render.
type Request struct {
	InputPath  string // base portrait
	OutputPath string
	AssetDir   string // directory holding gradient and border overlays

	Rarity int
	Title  string // identity name, drawn top-left
	Name   string // sinner name, drawn bottom-left
}
