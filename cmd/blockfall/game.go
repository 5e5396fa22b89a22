package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/tetris/debugui"
	debugui_ebiten "github.com/plus3/blockfall/tetris/debugui/ebiten"
)

// Key repeat timings, in ticks.
const (
	repeatDelay = 10
	repeatRate  = 3
	dropRate    = 3
)

type Game struct {
	runner  *tetris.Runner
	layout  layout
	imgui   *debugui_ebiten.ImguiBackend
	overlay *debugui.Overlay
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.imgui != nil {
		g.imgui.BeginFrame()
		defer g.imgui.EndFrame()
	}

	if g.imgui == nil || !debugui.WantsKeyboard() {
		g.queueInput()
	}

	if _, err := g.runner.Once(1.0 / float64(ebiten.TPS())); err != nil {
		return err
	}

	if g.overlay != nil {
		g.overlay.Render(g.runner)
	}
	return nil
}

func (g *Game) queueInput() {
	if repeating(ebiten.KeyLeft) {
		g.runner.Queue(tetris.IntentMoveLeft)
	}
	if repeating(ebiten.KeyRight) {
		g.runner.Queue(tetris.IntentMoveRight)
	}
	if d := inpututil.KeyPressDuration(ebiten.KeyDown); d > 0 && (d-1)%dropRate == 0 {
		g.runner.Queue(tetris.IntentSoftDrop)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		g.runner.Queue(tetris.IntentRotate)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.runner.Queue(tetris.IntentRestart)
	}
}

// repeating reports whether a held key should fire this tick.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d > repeatDelay && (d-repeatDelay)%repeatRate == 0
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	session := g.runner.Session()
	g.layout.drawWell(screen, session)
	g.layout.drawPanel(screen, session)

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.layout.screenSize()
}
