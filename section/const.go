package section

const (
	// HeaderSize is the fixed size of the index header in bytes.
	HeaderSize = 8

	// NumDistinctOffset is the byte offset of the distinct-value count field.
	NumDistinctOffset = 0
	// CountsOffsetOffset is the byte offset of the counts-section offset field.
	CountsOffsetOffset = 4
)
