// Package text provides font loading and glyph outline extraction.
// It supplies the sizing information that a glyph atlas packer needs:
// for each rune, the glyph's bounding box and vector outline.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: Heavyweight, shared font resource (parses TTF/OTF files)
//   - ParsedFont: Abstracted, per-glyph metric and outline queries
//   - FontParser: Pluggable font parsing backend (default: golang.org/x/image)
//
// # Example usage
//
//	// Load font (do once, share across application)
//	source, err := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	parsed := source.Parsed()
//	gid := parsed.GlyphIndex('A')
//	bounds := parsed.GlyphBounds(gid, 32) // 32px em size
//
//	// bounds.Width()/bounds.Height() size the request handed to an
//	// atlas allocator; OutlineExtractor produces the glyph's path for
//	// rasterization once a cell has been placed.
//
// # Pluggable Parser Backend
//
// The font parsing is abstracted through the FontParser interface.
// By default, golang.org/x/image/font/opentype is used.
// Custom parsers can be registered for alternative implementations:
//
//	// Register a custom parser
//	text.RegisterParser("myparser", myCustomParser)
//
//	// Use the custom parser
//	source, err := text.NewFontSource(data, text.WithParser("myparser"))
//
// This design allows:
//   - Easy migration to different font libraries
//   - Pure Go implementations without external dependencies
//   - Custom font formats or optimized parsers
package text
