package factory

import (
	"fmt"
	"io"
)

// Movie is the abstract movie product.
type Movie interface {
	Title() string
	Play() string
}

// Snacks is the abstract snack product.
type Snacks interface {
	Name() string
	StuffFace() string
}

// MovieNight is the abstract factory. Every implementation creates a
// Movie and Snacks from the same family.
type MovieNight interface {
	CreateMovie() Movie
	CreateSnacks() Snacks
}

type movie struct {
	title string
	quote string
}

func (m movie) Title() string { return m.title }
func (m movie) Play() string  { return fmt.Sprintf("Now playing %q: %s", m.title, m.quote) }

type snacks struct {
	name   string
	action string
}

func (s snacks) Name() string      { return s.name }
func (s snacks) StuffFace() string { return fmt.Sprintf("%s %s", s.action, s.name) }

// Comedy creates comedy movie nights.
type Comedy struct{}

// CreateMovie implements MovieNight.
func (Comedy) CreateMovie() Movie {
	return movie{title: "Tropic Thunder", quote: "I know who I am."}
}

// CreateSnacks implements MovieNight.
func (Comedy) CreateSnacks() Snacks {
	return snacks{name: "jelly beans", action: "Washing down a pack of"}
}

// Thriller creates thriller movie nights.
type Thriller struct{}

// CreateMovie implements MovieNight.
func (Thriller) CreateMovie() Movie {
	return movie{title: "American Psycho", quote: "Let's see Paul Allen's card."}
}

// CreateSnacks implements MovieNight.
func (Thriller) CreateSnacks() Snacks {
	return snacks{name: "duck takeaway", action: "Gulping down the"}
}

// Host runs a movie night built by f: it plays the movie, then serves the
// snacks, writing one line for each to w.
func Host(w io.Writer, f MovieNight) error {
	if f == nil {
		return ErrNilFactory
	}

	m := f.CreateMovie()
	s := f.CreateSnacks()

	if _, err := fmt.Fprintln(w, m.Play()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, s.StuffFace())
	return err
}
