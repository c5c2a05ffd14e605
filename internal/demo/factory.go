package demo

import (
	"fmt"

	"github.com/hupe1980/gopatterns/factory"
)

// MovieNights hosts one movie night per genre. Without genres every
// registered genre is hosted in name order.
func MovieNights(env Env, reg *factory.Registry, genres ...string) error {
	env = env.withDefaults()
	if reg == nil {
		reg = factory.DefaultRegistry()
	}
	if len(genres) == 0 {
		genres = reg.Genres()
	}

	for _, g := range genres {
		f, err := reg.Lookup(g)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(env.Out, "== %s night ==\n", g); err != nil {
			return err
		}
		if err := factory.Host(env.Out, f); err != nil {
			return err
		}
	}
	return nil
}
