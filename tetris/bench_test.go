package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
)

func BenchmarkClearFullRows(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		board := tetris.NewBoard(10)
		for y := range 20 {
			cells := fillRow(10, y)
			if y%2 == 1 {
				cells = cells[1:]
			}
			_ = board.Lock(cells...)
		}
		b.StartTimer()

		board.ClearFullRows()
	}
}

func BenchmarkCanPlace(b *testing.B) {
	board := tetris.NewBoard(10)
	for y := range 10 {
		_ = board.Lock(fillRow(10, y)[1:]...)
	}
	piece := tetris.NewActivePiece(tetris.ShapeT, tetris.Cell{X: 4, Y: 12})
	cells := piece.AbsoluteCells()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.CanPlace(cells...)
	}
}

func BenchmarkSessionTick(b *testing.B) {
	session, err := tetris.NewSession(tetris.DefaultConfig().WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	session.Start()
	in := tetris.Intents{Rotate: true}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := session.Tick(0.1, in); err != nil {
			b.Fatal(err)
		}
		if session.IsGameOver() {
			session.Restart()
		}
	}
}
