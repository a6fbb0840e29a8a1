package menu

// Surface is a fixed grid of character cells.
// Print writes from the cursor and advances the column,
// text past the right edge is dropped.
type Surface interface {
	Size() (cols, rows int)
	Clear()
	SetCursor(col, row int)
	Print(s string)
}
