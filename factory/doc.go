// Package factory implements the Abstract Factory pattern for movie nights.
//
// A MovieNight factory creates a family of products (a Movie and matching
// Snacks) without exposing their concrete types. Callers pick a family once
// and get products that belong together:
//
//	night, err := factory.DefaultRegistry().Lookup("thriller")
//	if err != nil { ... }
//	_ = factory.Host(os.Stdout, night)
package factory
