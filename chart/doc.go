// Package chart computes a numerological cycle chart and the layer codes
// used to paint it.
//
// # Overview
//
// A chart is derived from a birth date (day, month, year) and an age. Each
// input is reduced by repeated digit summing, then combined into composite
// quantities grouped in families:
//
//   - Inner (day), Intellect (month), Outer (year): the leaf profiles
//   - Combination (Inner+Intellect, Outer+Intellect): intermediate, not painted
//   - Synthesis, or NEM (Inner+Outer)
//   - Compound, or PEX (both combinations)
//   - Deep personality, or PPR (Inner+Intellect+Outer)
//
// Synthesis, Compound and Deep personality are refined by the age into
// Drive, Action and Reaction quantities.
//
// Every quantity carries four roles: primary (PA), secondary (SA), and the
// B variants (PB, SB) that only exist when the day is past 22. A non-primary
// quantity is significant when it differs from its baseline; only
// significant quantities become layer codes.
//
// # Quick Start
//
//	c := chart.Derive(chart.BirthInputs{Day: 14, Month: 6, Year: 1946, Age: 79})
//	order := c.PaintOrder(chart.LegacyFrames)
//
// # Layer Codes
//
// A code is a 5-letter tag followed by a 2-digit value, for example
// "PPRPA04". Frame codes decorate a code's category and end in "-R".
package chart
