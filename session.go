package plot3d

import (
	"fmt"
	"slices"
)

// Session keeps figures by id. It takes the place of a global "current
// figure": callers fetch a figure handle by id and pass it around.
//
// A Session is not safe for concurrent use.
type Session struct {
	defaults []FigureOption
	figures  map[int]*Figure
}

// NewSession creates an empty session. defaults are applied to every
// figure it creates, before the options passed to Figure.
func NewSession(defaults ...FigureOption) *Session {
	return &Session{
		defaults: defaults,
		figures:  make(map[int]*Figure),
	}
}

// Figure returns the figure with the given id, creating it if needed.
// opts only take effect when the figure is created.
func (s *Session) Figure(id int, opts ...FigureOption) *Figure {
	if f, ok := s.figures[id]; ok {
		return f
	}
	all := append(slices.Clip(s.defaults), opts...)
	f := NewFigure(id, all...)
	s.figures[id] = f
	return f
}

// Lookup returns the figure with the given id without creating it.
func (s *Session) Lookup(id int) (*Figure, error) {
	f, ok := s.figures[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNoFigure, id)
	}
	return f, nil
}

// IDs returns the ids of all figures in ascending order.
func (s *Session) IDs() []int {
	ids := make([]int, 0, len(s.figures))
	for id := range s.figures {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Save renders figure id and writes it to path as PNG.
func (s *Session) Save(id int, path string) error {
	f, err := s.Lookup(id)
	if err != nil {
		return err
	}
	return f.SavePNG(path)
}
