package mlbstats

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
)

// number accepts a JSON number or a numeric string such as ".285". Anything
// else decodes as an invalid zero value rather than failing the payload.
type number struct {
	Value float64
	Text  string
	Valid bool
}

func (n *number) UnmarshalJSON(data []byte) error {
	*n = number{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] == '"' {
		var text string
		if err := sonic.Unmarshal(trimmed, &text); err != nil {
			return nil
		}
		n.Text = strings.TrimSpace(text)
	} else {
		n.Text = string(trimmed)
	}

	parsed, err := strconv.ParseFloat(n.Text, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return nil
	}
	n.Value = parsed
	n.Valid = true
	return nil
}

func (n number) Float() float64 {
	if !n.Valid {
		return 0
	}
	return n.Value
}

func (n number) Int() int {
	if !n.Valid {
		return 0
	}
	return int(n.Value)
}

// FloatPtr returns nil for missing, invalid or zero values.
func (n number) FloatPtr() *float64 {
	if !n.Valid || n.Value == 0 {
		return nil
	}
	v := n.Value
	return &v
}

// IntPtr returns nil for missing, invalid or non-positive values.
func (n number) IntPtr() *int {
	if !n.Valid || n.Value <= 0 {
		return nil
	}
	v := int(math.Round(n.Value))
	return &v
}

// String returns the upstream text when it parses, empty otherwise.
func (n number) String() string {
	if !n.Valid {
		return ""
	}
	return n.Text
}
