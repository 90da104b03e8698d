// Package export writes session images: the filmstrip as PNG, the captures
// as an animated GIF and a surface image as SVG.
package export
