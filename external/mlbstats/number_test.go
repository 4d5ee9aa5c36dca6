package mlbstats

import (
	"testing"

	sonic "github.com/bytedance/sonic"
)

func TestNumber_Unmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw   string
		valid bool
		value float64
		text  string
	}{
		{raw: `12`, valid: true, value: 12, text: "12"},
		{raw: `".285"`, valid: true, value: 0.285, text: ".285"},
		{raw: `" 3.45 "`, valid: true, value: 3.45, text: "3.45"},
		{raw: `""`, valid: false},
		{raw: `"-.--"`, valid: false},
		{raw: `null`, valid: false},
		{raw: `true`, valid: false},
	}

	for _, tc := range tests {
		var holder struct {
			N number `json:"n"`
		}
		if err := sonic.Unmarshal([]byte(`{"n":`+tc.raw+`}`), &holder); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.raw, err)
		}
		n := holder.N
		if n.Valid != tc.valid || n.Float() != tc.value || n.String() != tc.text {
			t.Fatalf("raw=%s got=%+v", tc.raw, n)
		}
	}
}

func TestNumber_Pointers(t *testing.T) {
	t.Parallel()

	zero := number{Valid: true}
	if zero.FloatPtr() != nil || zero.IntPtr() != nil {
		t.Fatalf("zero must map to nil pointers")
	}

	distance := number{Value: 410.6, Valid: true}
	if got := distance.IntPtr(); got == nil || *got != 411 {
		t.Fatalf("unexpected distance: %v", got)
	}
}
