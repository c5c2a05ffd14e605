package factory

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFamilies(t *testing.T) {
	tests := []struct {
		name   string
		f      MovieNight
		title  string
		snacks string
	}{
		{"Comedy", Comedy{}, "Tropic Thunder", "jelly beans"},
		{"Thriller", Thriller{}, "American Psycho", "duck takeaway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.f.CreateMovie()
			s := tt.f.CreateSnacks()

			assert.Equal(t, tt.title, m.Title())
			assert.Contains(t, m.Play(), tt.title)
			assert.Equal(t, tt.snacks, s.Name())
			assert.Contains(t, s.StuffFace(), tt.snacks)
		})
	}
}

func TestHost(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Host(&buf, Comedy{}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Tropic Thunder")
	assert.Contains(t, lines[1], "jelly beans")
}

func TestHost_NilFactory(t *testing.T) {
	assert.ErrorIs(t, Host(&bytes.Buffer{}, nil), ErrNilFactory)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestHost_WriteError(t *testing.T) {
	assert.Error(t, Host(failingWriter{}, Thriller{}))
}

type documentary struct{}

func (documentary) CreateMovie() Movie   { return movie{title: "Planet Earth", quote: "Shallow seas."} }
func (documentary) CreateSnacks() Snacks { return snacks{name: "popcorn", action: "Munching"} }

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"comedy", "thriller"}, r.Genres())

	f, err := r.Lookup(" Thriller ")
	require.NoError(t, err)
	assert.Equal(t, Thriller{}, f)

	_, err = r.Lookup("western")
	assert.ErrorIs(t, err, ErrUnknownGenre)

	require.NoError(t, r.Register("Documentary", documentary{}))
	f, err = r.Lookup("documentary")
	require.NoError(t, err)
	assert.Equal(t, "Planet Earth", f.CreateMovie().Title())

	assert.ErrorIs(t, r.Register("comedy", Comedy{}), ErrDuplicateGenre)
	assert.ErrorIs(t, r.Register("horror", nil), ErrNilFactory)
	assert.Error(t, r.Register("  ", Comedy{}))
}
