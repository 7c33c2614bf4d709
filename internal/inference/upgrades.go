package inference

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/osse101/IdleRates_Go/internal/domain"
)

var (
	legacyStripPattern  = regexp.MustCompile(`[\[\]\s]`)
	leadingIntegerMatch = regexp.MustCompile(`^[+-]?\d+`)
)

// ParseSerializedUpgrades decodes the clan upgrade id list. It accepts a JSON
// numeric array, a JSON string holding such an array, or a legacy comma
// separated string. Empty or null input yields no ids and no error.
func ParseSerializedUpgrades(raw json.RawMessage) ([]int, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil, nil
	}

	switch trimmed[0] {
	case '[':
		return decodeIDArray(trimmed)
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, fmt.Errorf(ErrFmtUnsupportedUpgrades, domain.ErrMalformedProfile, err)
		}
		return parseSerializedString(s)
	}

	return nil, fmt.Errorf(ErrFmtUnsupportedUpgrades, domain.ErrMalformedProfile, string(trimmed))
}

// parseSerializedString handles the string forms: JSON first, legacy comma list second
func parseSerializedString(s string) ([]int, error) {
	var decoded interface{}
	if err := json.Unmarshal([]byte(s), &decoded); err == nil {
		if _, isArray := decoded.([]interface{}); !isArray {
			return nil, fmt.Errorf(ErrFmtUnsupportedUpgrades, domain.ErrMalformedProfile, strconv.Quote(s))
		}
		return decodeIDArray([]byte(s))
	}

	return parseLegacyList(s), nil
}

func decodeIDArray(data []byte) ([]int, error) {
	var values []float64
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf(ErrFmtUnsupportedUpgrades, domain.ErrMalformedProfile, err)
	}

	ids := make([]int, 0, len(values))
	for _, v := range values {
		ids = append(ids, int(v))
	}
	return ids, nil
}

// parseLegacyList strips brackets and whitespace, splits on commas and keeps
// every entry with a leading integer
func parseLegacyList(s string) []int {
	cleaned := legacyStripPattern.ReplaceAllString(s, "")
	if cleaned == "" {
		return nil
	}

	var ids []int
	for _, part := range strings.Split(cleaned, ",") {
		digits := leadingIntegerMatch.FindString(part)
		if digits == "" {
			continue
		}
		if n, err := strconv.Atoi(digits); err == nil {
			ids = append(ids, n)
		}
	}
	return ids
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
