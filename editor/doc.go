// Package editor provides a Bubble Tea notepad component that keeps
// perturbing what is typed into it.
//
// The Model wires keyboard and mouse input into the chaos mutations, runs the
// timed behaviors (idle auto-typing, zoom, aging, scroll inversion) through a
// schedule.Coordinator, and pairs every visible mutation with an artifact.
// Hosts observe state through Config.OnRender and the count queries.
package editor
