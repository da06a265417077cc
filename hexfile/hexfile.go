// Package hexfile writes Intel HEX records.
package hexfile

import (
	"fmt"
	"io"
	"strings"
)

// Mode selects how a record boundary may fall.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_INSTRUCTION_WRAP = Mode(0) // instruction
	MODE_BYTE_WRAP        = Mode(1) // byte
)

const (
	RECORD_DATA = 0x00
	RECORD_EOF  = 0x01

	DEFAULT_SIZE = 16
	MAXIMUM_SIZE = 0xff
	ADDRESS_MAX  = 0xffff
)

// Writer buffers code bytes into data records.
type Writer struct {
	w      io.Writer
	size   int
	mode   Mode
	addr   uint32
	buffer []byte
}

// NewWriter creates a record writer with up to size data bytes per record.
func NewWriter(w io.Writer, size int, mode Mode) (hw *Writer, err error) {
	if size < 1 || size > MAXIMUM_SIZE {
		err = ErrRecordSize(size)
		return
	}

	hw = &Writer{
		w:      w,
		size:   size,
		mode:   mode,
		buffer: make([]byte, 0, size),
	}
	return
}

// Checksum of a record: the two's complement of the sum of all its bytes.
func Checksum(record []byte) (sum byte) {
	for _, b := range record {
		sum += b
	}
	sum = -sum
	return
}

// record writes one record.
func (hw *Writer) record(addr uint32, kind byte, data []byte) (err error) {
	if addr+uint32(len(data)) > ADDRESS_MAX+1 {
		err = ErrAddressRange(addr)
		return
	}

	raw := append([]byte{byte(len(data)), byte(addr >> 8), byte(addr), kind}, data...)
	raw = append(raw, Checksum(raw))

	var line strings.Builder
	line.WriteByte(':')
	for _, b := range raw {
		fmt.Fprintf(&line, "%02X", b)
	}
	line.WriteByte('\n')

	_, err = io.WriteString(hw.w, line.String())
	return
}

// Write the bytes of one instruction, or of raw data, at addr.
func (hw *Writer) Write(addr uint32, code []byte) (err error) {
	if len(hw.buffer) != 0 && addr != hw.addr+uint32(len(hw.buffer)) {
		err = hw.Flush()
		if err != nil {
			return
		}
	}

	if hw.mode == MODE_INSTRUCTION_WRAP && len(code) <= hw.size {
		if len(hw.buffer)+len(code) > hw.size {
			err = hw.Flush()
			if err != nil {
				return
			}
		}
		if len(hw.buffer) == 0 {
			hw.addr = addr
		}
		hw.buffer = append(hw.buffer, code...)
		return
	}

	// Byte wrap, and data too large for one record.
	for _, b := range code {
		if len(hw.buffer) == 0 {
			hw.addr = addr
		}
		hw.buffer = append(hw.buffer, b)
		addr++
		if len(hw.buffer) == hw.size {
			err = hw.Flush()
			if err != nil {
				return
			}
		}
	}

	return
}

// Flush writes any buffered bytes as a data record.
func (hw *Writer) Flush() (err error) {
	if len(hw.buffer) == 0 {
		return
	}

	err = hw.record(hw.addr, RECORD_DATA, hw.buffer)
	hw.addr += uint32(len(hw.buffer))
	hw.buffer = hw.buffer[:0]
	return
}

// Close flushes the buffer and writes the end-of-file record.
func (hw *Writer) Close() (err error) {
	err = hw.Flush()
	if err != nil {
		return
	}

	return hw.record(0, RECORD_EOF, nil)
}

// WriteRaw writes a flat memory image.
func WriteRaw(w io.Writer, image []byte) (err error) {
	_, err = w.Write(image)
	return
}
