// Package styles implements the style and number-format canonicalization
// engine for the spreadsheet package: flyweight pools for fonts, fills and
// borders, a bidirectional number-format registry, the cell-format (XF) pool
// and the styleSheet part emission/parsing built on top of them.
package styles

// Fill pattern of a cell.
// ENUM(none, solid, mediumGray, darkGray, lightGray, darkHorizontal, darkVertical, darkDown, darkUp, darkGrid, darkTrellis, lightHorizontal, lightVertical, lightDown, lightUp, lightGrid, lightTrellis, gray125, gray0625)
type PatternType int

// Line style of a single border edge.
// ENUM(none, thin, medium, dashed, dotted, thick, double, hair, mediumDashed, dashDot, mediumDashDot, dashDotDot, mediumDashDotDot, slantDashDot)
type LineStyle int

// Horizontal cell alignment.
// ENUM(general, left, center, right, fill, justify, centerContinuous, distributed)
type HAlign int

// Vertical cell alignment. The zero value is bottom, the format default.
// ENUM(bottom, top, center, justify, distributed)
type VAlign int

// Classification of a number format definition.
// ENUM(general, number, currency, percentage, date, time, dateTime, scientific, text, custom)
type NumberFormatKind int
