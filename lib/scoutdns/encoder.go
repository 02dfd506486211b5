package scoutdns

import (
	"encoding/base64"
	"errors"
	"strconv"
	"strings"

	"github.com/miekg/dns"
	"golang.org/x/net/idna"
)

const (
	// characters of base64 per label, leaves room for the IDNA expansion
	partLength = 30
	maxLabel   = 63
	maxName    = 253
)

var (
	// Encoding configures the base64 library
	Encoding = base64.StdEncoding.WithPadding(base64.NoPadding)

	ERR_MESSAGE_TOO_LONG = errors.New("Message does not fit into a query name")
)

// Encode binary data to subdomain(s), terminated by a length marker label
func Encode(data []byte) (string, error) {
	s := Encoding.EncodeToString(data)

	parts := make([]string, 0, len(s)/partLength+1)
	for start := 0; start < len(s); start += partLength {
		end := start + partLength
		if end > len(s) {
			end = len(s)
		}
		part, err := idna.ToASCII(mapLabel(toLabel, s[start:end]))
		if err != nil {
			return "", err
		}
		if len(part) > maxLabel {
			return "", ERR_MESSAGE_TOO_LONG
		}
		parts = append(parts, part)
	}

	encoded := strings.Join(parts, ".")
	marker := "l" + strconv.Itoa(len(encoded))
	if encoded == "" {
		return marker, nil
	}
	return encoded + "." + marker, nil
}

// QueryName builds the full query name of a request below zone
func QueryName(r Request, zone string) (string, error) {
	data, err := r.Bytes()
	if err != nil {
		return "", err
	}
	payload, err := Encode(data)
	if err != nil {
		return "", err
	}
	name := dns.Fqdn(payload + "." + strings.Trim(zone, "."))
	// the trailing dot does not count
	if len(name)-1 > maxName {
		return "", ERR_MESSAGE_TOO_LONG
	}
	return name, nil
}
