// Package drink implements the Decorator pattern for energy drinks.
//
// Supplements wrap an EnergyDrink and return another EnergyDrink, so they can
// be stacked in any order and any number of times:
//
//	d := drink.Mix(drink.NewNocco("Citrus"), drink.BCAA, drink.Vitamins, drink.CelsiusEmulator)
//	d.Description()   // "Citrus, add BCAA, add lots of vitamins, add more caffeine and worse taste"
//	d.CaffeineLevel() // 200
package drink

import "fmt"

// NoccoCaffeine is the caffeine level of the base drink, in milligrams.
const NoccoCaffeine = 180

// EnergyDrink is the component interface shared by base drinks and supplements.
type EnergyDrink interface {
	Description() string
	CaffeineLevel() int
	AddBubbles(pressure int) string
}

// Nocco is the concrete base drink.
type Nocco struct {
	description string
}

// NewNocco creates a base drink with the given description.
func NewNocco(description string) *Nocco {
	return &Nocco{description: description}
}

// Description implements EnergyDrink.
func (n *Nocco) Description() string { return n.description }

// CaffeineLevel implements EnergyDrink.
func (n *Nocco) CaffeineLevel() int { return NoccoCaffeine }

// AddBubbles implements EnergyDrink.
func (n *Nocco) AddBubbles(pressure int) string {
	return fmt.Sprintf("adding bubbles with pressure: %d bar", pressure)
}

// Decorator wraps a drink with an extra supplement.
type Decorator func(EnergyDrink) EnergyDrink

// supplement is the shared decorator implementation.
type supplement struct {
	inner    EnergyDrink
	suffix   string
	caffeine int
}

func (s *supplement) Description() string {
	return s.inner.Description() + ", " + s.suffix
}

func (s *supplement) CaffeineLevel() int {
	return s.inner.CaffeineLevel() + s.caffeine
}

func (s *supplement) AddBubbles(pressure int) string {
	return s.inner.AddBubbles(pressure)
}

// Unwrap returns the drink this supplement decorates.
func (s *supplement) Unwrap() EnergyDrink { return s.inner }

// Supplement returns a decorator that appends ", <suffix>" to the description
// and adds caffeine milligrams.
func Supplement(suffix string, caffeine int) Decorator {
	return func(d EnergyDrink) EnergyDrink {
		return &supplement{inner: d, suffix: suffix, caffeine: caffeine}
	}
}

// BCAA adds branched-chain amino acids. No extra caffeine.
func BCAA(d EnergyDrink) EnergyDrink {
	return Supplement("add BCAA", 0)(d)
}

// Vitamins adds vitamins. No extra caffeine.
func Vitamins(d EnergyDrink) EnergyDrink {
	return Supplement("add lots of vitamins", 0)(d)
}

// CelsiusEmulator adds 20mg of caffeine at the cost of taste.
func CelsiusEmulator(d EnergyDrink) EnergyDrink {
	return Supplement("add more caffeine and worse taste", 20)(d)
}

// Mix applies decorators to base in order; the last one is outermost.
func Mix(base EnergyDrink, decorators ...Decorator) EnergyDrink {
	d := base
	for _, dec := range decorators {
		if dec == nil {
			continue
		}
		d = dec(d)
	}
	return d
}

// Unwrap returns the drink wrapped by d, or nil if d is not a decorator.
func Unwrap(d EnergyDrink) EnergyDrink {
	u, ok := d.(interface{ Unwrap() EnergyDrink })
	if !ok {
		return nil
	}
	return u.Unwrap()
}

// Layers returns the decorator chain from the outermost drink down to the base.
func Layers(d EnergyDrink) []EnergyDrink {
	var layers []EnergyDrink
	for d != nil {
		layers = append(layers, d)
		d = Unwrap(d)
	}
	return layers
}
