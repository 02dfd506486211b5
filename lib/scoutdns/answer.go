package scoutdns

import (
	"errors"
	"fmt"
	"strings"

	"github.com/miekg/dns"
)

const (
	statusOK  = "ok"
	statusErr = "err"

	// limit of a single TXT character-string
	txtChunk = 255
)

var (
	ERR_QUERY_FAILED     = errors.New("Query failed")
	ERR_MALFORMED_ANSWER = errors.New("Malformed answer")
)

type (
	// Answer is the outcome of one translation, as carried in a TXT record
	Answer struct {
		OK   bool
		Text string
	}

	// RemoteError is a translation error reported by the server
	RemoteError struct {
		Message string
	}
)

func (e *RemoteError) Error() string {
	return "remote: " + e.Message
}

func answerFor(text string, err error) Answer {
	if err != nil {
		return Answer{Text: err.Error()}
	}
	return Answer{OK: true, Text: text}
}

// TXT returns the character-strings of the record: status first, then the
// text cut into chunks
func (a Answer) TXT() []string {
	status := statusOK
	if !a.OK {
		status = statusErr
	}
	txt := []string{status}
	for s := a.Text; s != ""; {
		n := len(s)
		if n > txtChunk {
			n = txtChunk
		}
		txt = append(txt, s[:n])
		s = s[n:]
	}
	return txt
}

// RR builds the TXT record answering name
func (a Answer) RR(name string) dns.RR {
	return &dns.TXT{
		Hdr: dns.RR_Header{Name: name, Rrtype: dns.TypeTXT, Class: dns.ClassINET, Ttl: 3600},
		Txt: a.TXT(),
	}
}

// ParseAnswer extracts the translation from a response
func ParseAnswer(m *dns.Msg) (string, error) {
	if m.Rcode != dns.RcodeSuccess {
		return "", fmt.Errorf("%w: %s", ERR_QUERY_FAILED, dns.RcodeToString[m.Rcode])
	}
	for _, rr := range m.Answer {
		t, ok := rr.(*dns.TXT)
		if !ok || len(t.Txt) == 0 {
			continue
		}
		text := strings.Join(t.Txt[1:], "")
		switch t.Txt[0] {
		case statusOK:
			return text, nil
		case statusErr:
			return "", &RemoteError{Message: text}
		}
	}
	return "", ERR_MALFORMED_ANSWER
}
