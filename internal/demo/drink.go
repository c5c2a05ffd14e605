package demo

import (
	"fmt"

	"github.com/hupe1980/gopatterns/drink"
)

// Drinks mixes a NOCCO with BCAA, vitamins and a Celsius emulator and
// prints every layer.
func Drinks(env Env) (drink.EnergyDrink, error) {
	env = env.withDefaults()

	d := drink.Mix(
		drink.NewNocco("Starting with a refreshing energy drink with amazing taste"),
		drink.BCAA,
		drink.Vitamins,
		drink.CelsiusEmulator,
	)

	if _, err := fmt.Fprintf(env.Out, "The drink: %s\n", d.Description()); err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintf(env.Out, "The caffeine level %d\n", d.CaffeineLevel()); err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintf(env.Out, "Layers: %d, %s\n", len(drink.Layers(d)), d.AddBubbles(3)); err != nil {
		return nil, err
	}
	return d, nil
}
