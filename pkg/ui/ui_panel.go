package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	titleHeight   = 30.0
	headerHeight  = 25.0
	labelHeight   = 15.0
	panelPadding  = 10.0
	scrollPerStep = 20.0
)

// UIWidget is anything the panel can stack.
type UIWidget interface {
	Update()
	Draw(screen *ebiten.Image)
	GetHeight() float64
	moveTo(y float64)
}

// SliderWrapper wraps Slider to implement UIWidget
type SliderWrapper struct {
	*Slider
}

func (s *SliderWrapper) GetHeight() float64 { return s.H + 25 }
func (s *SliderWrapper) moveTo(y float64)   { s.Y = y }

// CheckboxWrapper wraps Checkbox to implement UIWidget
type CheckboxWrapper struct {
	*Checkbox
}

func (c *CheckboxWrapper) GetHeight() float64 { return c.Size + 5 }
func (c *CheckboxWrapper) moveTo(y float64)   { c.Y = y }

// ButtonWrapper wraps Button to implement UIWidget
type ButtonWrapper struct {
	*Button
}

func (b *ButtonWrapper) GetHeight() float64 { return b.Height + 10 }
func (b *ButtonWrapper) moveTo(y float64)   { b.Y = y }

// panelRow is either a section header (widget == nil) or a labelled widget.
type panelRow struct {
	text    string
	widget  UIWidget
	y       float64 // top of the row, scroll applied
	visible bool
}

// UIPanel stacks widgets vertically under optional section headers and
// scrolls with the mouse wheel when they do not fit.
type UIPanel struct {
	Title         string
	X, Y          float64
	Width, Height float64
	Widgets       []UIWidget
	ScrollOffset  float64

	BGColor     color.RGBA
	BorderColor color.RGBA
	HeaderColor color.RGBA

	rows []panelRow
}

func NewUIPanel(title string, x, y, width, height float64) *UIPanel {
	return &UIPanel{
		Title:       title,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
		HeaderColor: color.RGBA{R: 60, G: 60, B: 70, A: 255},
	}
}

// AddSection starts a new group of widgets under a header.
func (p *UIPanel) AddSection(title string) {
	p.rows = append(p.rows, panelRow{text: title})
	p.layout()
}

// EndSection is kept for symmetry with AddSection, a section simply runs
// until the next header.
func (p *UIPanel) EndSection() {}

func (p *UIPanel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+panelPadding, 0, p.Width-2*panelPadding, label, min, max, value)
	p.add(label, &SliderWrapper{s})
	return s
}

func (p *UIPanel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+panelPadding, 0, label, value)
	p.add(label, &CheckboxWrapper{c})
	return c
}

// AddButton adds a full-width button, its label is drawn inside it.
func (p *UIPanel) AddButton(label string, onClick func()) *Button {
	b := NewButton(p.X+panelPadding, 0, p.Width-2*panelPadding, 20, label, onClick)
	p.add("", &ButtonWrapper{b})
	return b
}

func (p *UIPanel) add(label string, w UIWidget) {
	p.Widgets = append(p.Widgets, w)
	p.rows = append(p.rows, panelRow{text: label, widget: w})
	p.layout()
}

// Contains reports whether the point (x, y) is over the panel.
func (p *UIPanel) Contains(x, y float64) bool {
	return x >= p.X && x <= p.X+p.Width && y >= p.Y && y <= p.Y+p.Height
}

func rowHeight(r panelRow) float64 {
	if r.widget == nil {
		return headerHeight
	}
	h := r.widget.GetHeight()
	if r.text != "" {
		h += labelHeight
	}
	return h
}

func (p *UIPanel) contentHeight() float64 {
	h := titleHeight
	for _, r := range p.rows {
		h += rowHeight(r)
	}
	return h
}

// layout places every row at its scrolled position and moves the widgets
// there, so Update hit-tests against what Draw shows.
func (p *UIPanel) layout() {
	y := p.Y + titleHeight - p.ScrollOffset
	for i := range p.rows {
		r := &p.rows[i]
		r.y = y
		h := rowHeight(*r)
		r.visible = y >= p.Y+titleHeight-labelHeight && y+h <= p.Y+p.Height+labelHeight
		if r.widget != nil {
			wy := y
			if r.text != "" {
				wy += labelHeight
			}
			r.widget.moveTo(wy)
		}
		y += h
	}
}

func (p *UIPanel) scroll(dy float64) {
	maxScroll := max(p.contentHeight()-p.Height+panelPadding, 0)
	p.ScrollOffset = min(max(p.ScrollOffset-dy*scrollPerStep, 0), maxScroll)
}

// Update scrolls the panel and forwards input to the visible widgets.
func (p *UIPanel) Update() {
	if _, dy := ebiten.Wheel(); dy != 0 {
		mx, my := ebiten.CursorPosition()
		if p.Contains(float64(mx), float64(my)) {
			p.scroll(dy)
		}
	}
	p.layout()
	for _, r := range p.rows {
		if r.widget != nil && r.visible {
			r.widget.Update()
		}
	}
}

func (p *UIPanel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), p.BGColor, true)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), 2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+panelPadding), int(p.Y+5))

	for _, r := range p.rows {
		if !r.visible {
			continue
		}
		if r.widget == nil {
			vector.FillRect(screen, float32(p.X+5), float32(r.y), float32(p.Width-10), headerHeight-5, p.HeaderColor, true)
			ebitenutil.DebugPrintAt(screen, r.text, int(p.X+panelPadding), int(r.y+2))
			continue
		}
		if r.text != "" {
			ebitenutil.DebugPrintAt(screen, r.text, int(p.X+panelPadding), int(r.y))
		}
		r.widget.Draw(screen)
	}
}
