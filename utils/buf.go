package utils

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrFrame is returned when a length-prefixed frame cannot be read back.
var ErrFrame = errors.New("invalid length-prefixed frame")

type readByte struct {
	in   io.Reader
	read int
}

func (s *readByte) ReadByte() (byte, error) {
	var data [1]byte
	_, err := s.in.Read(data[:])
	s.read++
	return data[0], err
}

// ReadUvarint reads an unsigned varint and reports how many bytes it used.
func ReadUvarint(sr io.Reader) (num uint64, n int, err error) {
	rb := &readByte{in: sr}
	num, err = binary.ReadUvarint(rb)
	return num, rb.read, err
}

// UvarintLen is the encoded size of num.
func UvarintLen(num uint64) int {
	var buf [binary.MaxVarintLen64]byte
	return binary.PutUvarint(buf[:], num)
}

// WriteVarBytes writes data prefixed with its uvarint length.
func WriteVarBytes(w io.Writer, data []byte) error {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], uint64(len(data)))
	if _, err := w.Write(buf[:n]); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// ReadVarBytes reads a frame written by WriteVarBytes. The frame must consume
// the reader exactly; trailing or missing bytes yield ErrFrame.
func ReadVarBytes(r io.Reader) (data []byte, varIntLen int, err error) {
	num, n, err := ReadUvarint(r)
	if err != nil {
		return nil, n, fmt.Errorf("%w: %v", ErrFrame, err)
	}
	if num > 1<<20 {
		return nil, n, fmt.Errorf("%w: length %d out of range", ErrFrame, num)
	}
	data = make([]byte, num)
	if _, err = io.ReadFull(r, data); err != nil {
		return nil, n, fmt.Errorf("%w: %v", ErrFrame, err)
	}
	var probe [1]byte
	if m, _ := r.Read(probe[:]); m != 0 {
		return nil, n, fmt.Errorf("%w: trailing bytes", ErrFrame)
	}
	return data, n, nil
}

// Frame returns data prefixed with its uvarint length.
func Frame(data []byte) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, len(data)+binary.MaxVarintLen64))
	_ = WriteVarBytes(buf, data)
	return buf.Bytes()
}

// Unframe is the inverse of Frame.
func Unframe(framed []byte) ([]byte, error) {
	data, _, err := ReadVarBytes(bytes.NewReader(framed))
	return data, err
}
