package tictactoe

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Renderer prints boards as three "a | b | c" lines framed by blank lines.
type Renderer struct {
	w      io.Writer
	color  bool
	output *termenv.Output
	colors map[entity.Cell]termenv.Color
}

// NewRenderer colours the marks when color is set and w is a terminal that
// supports it. Otherwise the glyphs are written as plain text.
func NewRenderer(w io.Writer, color bool) *Renderer {
	output := termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	if color {
		output = termenv.NewOutput(w)
	}

	return &Renderer{
		w:      w,
		color:  color,
		output: output,
		colors: map[entity.Cell]termenv.Color{
			entity.MarkX: output.Color("9"),
			entity.MarkO: output.Color("12"),
		},
	}
}

func (that *Renderer) Board(board *entity.Board) {
	fmt.Fprintln(that.w)
	for _, row := range board {
		fmt.Fprintf(that.w, "%s | %s | %s\n", that.glyph(row[0]), that.glyph(row[1]), that.glyph(row[2]))
	}
	fmt.Fprintln(that.w)
}

func (that *Renderer) glyph(cell entity.Cell) string {
	if !that.color {
		return cell.String()
	}

	style := that.output.String(cell.String())
	if c, ok := that.colors[cell]; ok {
		style = style.Foreground(c).Bold()
	}
	return style.String()
}
