package testutil

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// MessageType is the type field of an i3-ipc message.
type MessageType uint32

const (
	MsgRunCommand MessageType = 0
	MsgGetVersion MessageType = 7
)

func (t MessageType) String() string {
	switch t {
	case MsgRunCommand:
		return "RUN_COMMAND"
	case MsgGetVersion:
		return "GET_VERSION"
	default:
		return fmt.Sprintf("type(%d)", uint32(t))
	}
}

const (
	magic     = "i3-ipc"
	headerLen = len(magic) + 8

	// maxPayload bounds a message so a corrupt length cannot exhaust memory.
	maxPayload = 64 << 20
)

var errBadMagic = errors.New("bad magic")

// writeMessage writes one message: the magic string, the payload length
// and the type in native byte order, then the payload.
func writeMessage(w io.Writer, typ MessageType, payload []byte) error {
	buf := make([]byte, 0, headerLen+len(payload))
	buf = append(buf, magic...)
	buf = binary.NativeEndian.AppendUint32(buf, uint32(len(payload)))
	buf = binary.NativeEndian.AppendUint32(buf, uint32(typ))
	buf = append(buf, payload...)
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("write %s message: %w", typ, err)
	}
	return nil
}

// readMessage reads one message written by writeMessage.
func readMessage(r io.Reader) (MessageType, []byte, error) {
	var header [headerLen]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, nil, fmt.Errorf("read message header: %w", err)
	}
	if !bytes.Equal(header[:len(magic)], []byte(magic)) {
		return 0, nil, errBadMagic
	}

	length := binary.NativeEndian.Uint32(header[len(magic):])
	typ := MessageType(binary.NativeEndian.Uint32(header[len(magic)+4:]))
	if length > maxPayload {
		return 0, nil, fmt.Errorf("%s payload of %d bytes exceeds limit", typ, length)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return 0, nil, fmt.Errorf("read %s payload: %w", typ, err)
	}
	return typ, payload, nil
}
