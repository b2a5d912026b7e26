package blockfall

import "github.com/vovakirdan/blockfall/internal/core"

// scriptedSpawner replays a fixed sequence of types and offsets, cycling when exhausted.
type scriptedSpawner struct {
	types   []PieceType
	offsets []int
	calls   int
}

func (s *scriptedSpawner) Next() (PieceType, int) {
	i := s.calls
	s.calls++
	offset := 0
	if len(s.offsets) > 0 {
		offset = s.offsets[i%len(s.offsets)]
	}
	return s.types[i%len(s.types)], offset
}

func spawnerOf(types ...PieceType) *scriptedSpawner {
	return &scriptedSpawner{types: types}
}

// fillRow occupies every cell of row y except the listed columns.
func fillRow(b *Board, y int, c core.Color, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < Cols; x++ {
		if !skip[x] {
			b[y][x] = c
		}
	}
}

func countEvents[T Event](events []Event) int {
	n := 0
	for _, evt := range events {
		if _, ok := evt.(T); ok {
			n++
		}
	}
	return n
}
