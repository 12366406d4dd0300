package cli

import (
	"strings"

	"github.com/fatih/color"

	"github.com/woodpusher/arbiter/board"
	"github.com/woodpusher/arbiter/position"
)

var (
	labelStyle    = color.New(color.Bold)
	lightCell     = color.New(color.BgHiWhite, color.FgBlack)
	darkCell      = color.New(color.BgHiGreen, color.FgBlack)
	captureStyle  = color.New(color.Faint)
	capturedOrder = []board.Side{board.SideWhite, board.SideBlack}
)

// Draw renders the position as a checkered grid with rank and file labels,
// followed by the capture tallies.
func Draw(b *board.Board) string {
	builder := strings.Builder{}
	for rank := position.Square(position.Width) - 1; rank >= 0; rank-- {
		_, _ = builder.WriteString(labelStyle.Sprintf(" %s ", position.NewSquare(0, rank).RankNotation()))
		for file := position.Square(0); file < position.Width; file++ {
			sq := position.NewSquare(file, rank)
			sym := b.PieceAt(sq).SymbolUnicode()
			if sym == "" {
				sym = " "
			}
			cell := darkCell
			if (file+rank)%2 == 1 {
				cell = lightCell
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for file := position.Square(0); file < position.Width; file++ {
		_, _ = builder.WriteString(labelStyle.Sprintf(" %s ", position.NewSquare(file, 0).FileNotation()))
	}

	captured := b.CapturedPieces()
	for _, s := range capturedOrder {
		var syms []string
		for _, p := range captured {
			if p.Side() == s {
				syms = append(syms, p.SymbolUnicode())
			}
		}
		if len(syms) > 0 {
			_, _ = builder.WriteString("\n")
			_, _ = builder.WriteString(captureStyle.Sprintf("captured %s: %s", s, strings.Join(syms, " ")))
		}
	}
	return builder.String()
}
