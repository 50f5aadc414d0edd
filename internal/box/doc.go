// Package box lays out and draws the prompt box.
//
// The layout engine computes a uniform interior width from the longest
// display text plus a padding, and synthesizes the three row kinds from a
// 6-glyph Palette:
//
//	┌─Title─────────┐   top (title row)
//	│Context         │   middle, static
//	│Question        │   middle, field: input is echoed after "Question"
//	└────────────────┘   bottom
//
// Widths are byte counts, not display widths. Content with multi-byte or
// wide characters is therefore padded short and the right border drifts;
// this matches the behaviour ibox has always had.
//
// A content line ending in PromptMarker is a field. The Renderer records the
// screen position right after each field's text so the capture loop can
// echo input there.
package box
