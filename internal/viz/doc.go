// Package viz draws orbitsim worlds in a terminal.
//
// [Canvas] is a braille dot grid with a world-to-dot projection, so a
// 1000x800 world fits in an 80x25 terminal at 160x100 dot resolution.
// The lipgloss styles in this package are shared by the terminal front
// end and the CLI.
package viz
