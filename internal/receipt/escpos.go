package receipt

import (
	"bytes"
	"strings"
)

// ESC/POS opcodes. The protocol here is write-only: no
// acknowledgement, no flow control.
var (
	escInit     = []byte{0x1B, 0x40}             // ESC @  initialize
	escCenter   = []byte{0x1B, 0x61, 0x01}       // ESC a 1  center align
	escCutPaper = []byte{0x1D, 0x56, 0x42, 0x00} // GS V B 0  feed and cut
)

// Encode frames receipt text as an ESC/POS command stream:
// initialize, center alignment, one write per line, cut.
func Encode(text string) []byte {

	var buf bytes.Buffer
	buf.Write(escInit)
	buf.Write(escCenter)

	for _, line := range strings.Split(text, "\n") {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	buf.Write(escCutPaper)
	return buf.Bytes()
}

// Chunk splits a command stream into bounded writes for transports
// with a small MTU.
func Chunk(data []byte, size int) [][]byte {

	if size <= 0 {
		return [][]byte{data}
	}

	var chunks [][]byte
	for len(data) > size {
		chunks = append(chunks, data[:size])
		data = data[size:]
	}
	if len(data) > 0 {
		chunks = append(chunks, data)
	}
	return chunks
}
