// Package screen implements the compositing core: a frame window holding a
// horizontal slice of the display, and the fill, glyph and map operations
// that draw into it.
//
// Every operation clips its target against a mask and against the window's
// current placement, then walks the visible scanlines. Nothing is retained
// from the inputs once a call returns. A Window is not safe for concurrent
// use; callers serialize all drawing into the same window.
//
// Build with the vdbdebug tag to panic on contract violations (short glyph
// bitmaps, undersized pixel maps) instead of logging and ignoring them.
package screen
