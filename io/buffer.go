package io

// Buffer collects output values in memory.
type Buffer struct {
	Capacity int     // Maximum number of values held. Zero is unlimited.
	Data     []uint8 // Values received, oldest first.
}

var _ Channel = (*Buffer)(nil)

// Rewind discards all collected values.
func (buf *Buffer) Rewind() {
	buf.Data = nil
}

// Send appends a value, or returns ErrChannelFull at capacity.
func (buf *Buffer) Send(value uint8) (err error) {
	if buf.Capacity > 0 && len(buf.Data) >= buf.Capacity {
		err = ErrChannelFull
		return
	}

	buf.Data = append(buf.Data, value)
	return
}
