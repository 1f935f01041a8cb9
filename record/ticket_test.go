package record

import (
	"strings"
	"testing"
)

// buildTicketRecord builds a pipe-delimited record of n fields with the
// given positional overrides.
func buildTicketRecord(n int, set map[int]string) string {
	fields := make([]string, n)
	for i, v := range set {
		fields[i] = v
	}
	return strings.Join(fields, "|")
}

func TestDecodeTicketRecord(t *testing.T) {
	raw := buildTicketRecord(36, map[int]string{
		3:  "24000000G101",
		6:  "BJP",
		7:  "SHH",
		8:  "09:00",
		9:  "14:28",
		10: "05:28",
		30: "10",
		31: "有",
		26: "无",
	})
	rec, ok := DecodeTicketRecord(raw)
	if !ok {
		t.Fatal("expected record to decode")
	}
	if rec.TrainNo != "24000000G101" {
		t.Errorf("train no: got %q", rec.TrainNo)
	}
	if rec.FromCode != "BJP" || rec.ToCode != "SHH" {
		t.Errorf("segment codes: got %q -> %q", rec.FromCode, rec.ToCode)
	}
	if rec.StartTime != "09:00" || rec.ArriveTime != "14:28" || rec.Duration != "05:28" {
		t.Errorf("schedule: got %q %q %q", rec.StartTime, rec.ArriveTime, rec.Duration)
	}
	want := map[string]string{"second_class": "10", "first_class": "有", "no_seat": "无"}
	if len(rec.Seats) != len(want) {
		t.Fatalf("expected %d seat classes, got %v", len(want), rec.Seats)
	}
	for k, v := range want {
		if rec.Seats[k] != v {
			t.Errorf("seat %s: expected %q, got %q", k, v, rec.Seats[k])
		}
	}
	if _, present := rec.Seats["business"]; present {
		t.Error("empty business field must be omitted")
	}
}

func TestDecodeTicketRecordShort(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"one field", "G1"},
		{"34 fields", buildTicketRecord(34, map[int]string{3: "G1"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := DecodeTicketRecord(tt.raw); ok {
				t.Error("expected no match for short record")
			}
		})
	}
}

func TestFindTrainNumber(t *testing.T) {
	records := []string{
		"x|预订|24000000G501|G5|more",
		"x|预订|24000000G101|G1|more",
		"no marker here|at all",
	}

	t.Run("match is case-insensitive", func(t *testing.T) {
		no, _, ok := FindTrainNumber(records, "g1")
		if !ok || no != "24000000G101" {
			t.Fatalf("got %q, %v", no, ok)
		}
	})

	t.Run("no match reports observed codes", func(t *testing.T) {
		_, observed, ok := FindTrainNumber(records, "D301")
		if ok {
			t.Fatal("expected no match")
		}
		if len(observed) != 2 || observed[0] != "G5" || observed[1] != "G1" {
			t.Errorf("observed codes: %v", observed)
		}
	})

	t.Run("marker at record end", func(t *testing.T) {
		_, _, ok := FindTrainNumber([]string{"a|b|预订"}, "G1")
		if ok {
			t.Error("truncated record must not match")
		}
	})
}
