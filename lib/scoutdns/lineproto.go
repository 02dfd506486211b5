package scoutdns

import (
	"errors"

	"github.com/jpicht/scoutcode/lib/cipher"
	"github.com/jpicht/scoutcode/lib/scout"
)

type (
	// Request is a single translation shipped inside a query name
	Request struct {
		Op      scout.Op
		Cipher  string
		Message string
		Options scout.Options
	}

	requestFlags byte
)

var (
	ERR_PAYLOAD_INCOMPLETE = errors.New("Payload incomplete")
	ERR_NAME_TOO_LONG      = errors.New("Cipher name too long")
)

const (
	FLAG_ENCODE  requestFlags = 0x80
	FLAG_STRICT  requestFlags = 0x40
	FLAG_LENIENT requestFlags = 0x20
	FLAG_LOWER   requestFlags = 0x10
	FLAG_UPPER   requestFlags = 0x08

	// flags + name length
	headerSize = 2
)

func (r Request) flags() requestFlags {
	var f requestFlags
	if r.Op == scout.Encode {
		f |= FLAG_ENCODE
	}
	if r.Options.Strict {
		f |= FLAG_STRICT
	}
	if r.Options.Lenient {
		f |= FLAG_LENIENT
	}
	switch r.Options.Case {
	case cipher.Lower:
		f |= FLAG_LOWER
	case cipher.Upper:
		f |= FLAG_UPPER
	}
	return f
}

// Bytes serializes the request as
//
//	[flags][len(cipher)][cipher][message]
func (r Request) Bytes() ([]byte, error) {
	if len(r.Cipher) > 0xff {
		return nil, ERR_NAME_TOO_LONG
	}
	data := make([]byte, 0, headerSize+len(r.Cipher)+len(r.Message))
	data = append(data, byte(r.flags()), byte(len(r.Cipher)))
	data = append(data, r.Cipher...)
	data = append(data, r.Message...)
	return data, nil
}

func requestFromBytes(data []byte) (*Request, error) {
	if len(data) < headerSize {
		return nil, ERR_PAYLOAD_INCOMPLETE
	}

	f := requestFlags(data[0])
	n := int(data[1])
	if len(data) < headerSize+n {
		return nil, ERR_PAYLOAD_INCOMPLETE
	}

	r := &Request{
		Op:      scout.Decode,
		Cipher:  string(data[headerSize : headerSize+n]),
		Message: string(data[headerSize+n:]),
		Options: scout.Options{
			Strict:  f&FLAG_STRICT != 0,
			Lenient: f&FLAG_LENIENT != 0,
		},
	}
	if f&FLAG_ENCODE != 0 {
		r.Op = scout.Encode
	}
	if f&FLAG_LOWER != 0 {
		r.Options.Case = cipher.Lower
	} else if f&FLAG_UPPER != 0 {
		r.Options.Case = cipher.Upper
	}
	return r, nil
}
