package tetris

import (
	"math/rand"
)

// Source chooses the shape of each new piece.
type Source interface {
	Next() Shape
}

// RandomSource draws every shape independently and uniformly.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a uniform source seeded with seed.
func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniformly random shape.
func (s *RandomSource) Next() Shape {
	return Shapes[s.rng.Intn(len(Shapes))]
}

// BagSource deals shapes from a shuffled bag of all seven, refilling the bag
// when it runs out. No shape can be missing for more than 12 pieces in a row.
type BagSource struct {
	rng *rand.Rand
	bag []Shape
}

// NewBagSource creates a 7-bag source seeded with seed.
func NewBagSource(seed int64) *BagSource {
	return &BagSource{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next shape from the bag.
func (s *BagSource) Next() Shape {
	if len(s.bag) == 0 {
		s.bag = append(s.bag[:0], Shapes...)
		s.rng.Shuffle(len(s.bag), func(i, j int) {
			s.bag[i], s.bag[j] = s.bag[j], s.bag[i]
		})
	}
	next := s.bag[0]
	s.bag = s.bag[1:]
	return next
}

// QueueSource replays a fixed sequence of shapes, starting over when it
// reaches the end. It makes games deterministic in tests.
type QueueSource struct {
	shapes []Shape
	pos    int
}

// NewQueueSource creates a source that cycles through shapes. With no shapes
// it always returns ShapeI.
func NewQueueSource(shapes ...Shape) *QueueSource {
	return &QueueSource{shapes: shapes}
}

// Next returns the next shape in the sequence.
func (s *QueueSource) Next() Shape {
	if len(s.shapes) == 0 {
		return ShapeI
	}
	next := s.shapes[s.pos]
	s.pos = (s.pos + 1) % len(s.shapes)
	return next
}
