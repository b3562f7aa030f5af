// Package deeplink encodes a subject and a topic selection into a Telegram
// /start payload, e.g. "s12_1-3-4".
//
// Telegram accepts at most 64 characters from [A-Za-z0-9_-] in a start
// parameter; Encode refuses selections that do not fit.
package deeplink

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

const MaxPayloadLen = 64

var (
	ErrInvalidPayload = errors.New("invalid deep link payload")
	ErrPayloadTooLong = errors.New("deep link payload too long")
)

var payloadRe = regexp.MustCompile(`^s([1-9][0-9]*)_([1-9][0-9]*(?:-[1-9][0-9]*)*)$`)

// Encode builds the payload for subjectID and topic numbers, keeping the
// given order and dropping duplicates.
func Encode(subjectID int64, topics []int) (string, error) {
	if subjectID <= 0 || len(topics) == 0 {
		return "", ErrInvalidPayload
	}

	seen := make(map[int]struct{}, len(topics))
	parts := make([]string, 0, len(topics))
	for _, n := range topics {
		if n <= 0 {
			return "", ErrInvalidPayload
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		parts = append(parts, strconv.Itoa(n))
	}

	p := fmt.Sprintf("s%d_%s", subjectID, strings.Join(parts, "-"))
	if len(p) > MaxPayloadLen {
		return "", ErrPayloadTooLong
	}
	return p, nil
}

// Decode parses a payload produced by Encode.
func Decode(payload string) (int64, []int, error) {
	if len(payload) > MaxPayloadLen {
		return 0, nil, ErrPayloadTooLong
	}
	m := payloadRe.FindStringSubmatch(payload)
	if m == nil {
		return 0, nil, ErrInvalidPayload
	}

	subjectID, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, nil, ErrInvalidPayload
	}

	fields := strings.Split(m[2], "-")
	topics := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return 0, nil, ErrInvalidPayload
		}
		topics = append(topics, n)
	}
	return subjectID, topics, nil
}

// Link returns the t.me URL that opens botUserName with payload.
func Link(botUserName, payload string) string {
	return "https://t.me/" + url.PathEscape(strings.TrimPrefix(botUserName, "@")) + "?start=" + url.QueryEscape(payload)
}
