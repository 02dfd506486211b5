package scoutdns

import (
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

// Decode takes a partial domain and decodes it to a request
func Decode(payload string) (*Request, error) {
	parts := strings.Split(payload, ".")
	lenMarker := parts[len(parts)-1]
	parts = parts[0 : len(parts)-1]

	if len(lenMarker) < 2 || lenMarker[0] != 'l' {
		return nil, ERR_PAYLOAD_INCOMPLETE
	}
	expected, err := strconv.Atoi(lenMarker[1:])
	if err != nil || expected != len(strings.Join(parts, ".")) {
		return nil, ERR_PAYLOAD_INCOMPLETE
	}

	for i, p := range parts {
		parts[i], err = idna.ToUnicode(p)
		if err != nil {
			return nil, err
		}
		parts[i] = mapLabel(fromLabel, parts[i])
	}

	data, err := Encoding.DecodeString(strings.Join(parts, ""))
	if err != nil {
		return nil, ERR_PAYLOAD_INCOMPLETE
	}

	return requestFromBytes(data)
}
