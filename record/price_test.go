package record

import "testing"

func TestFormatFare(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"5", "0.5"},
		{"1500", "150.0"},
		{"56335", "5633.5"},
		{"0", "0.0"},
		{"005", "0.5"},
		{"", ""},
		{"12.5", "12.5"},
		{"abc", "abc"},
		{"--", "--"},
	}
	for _, tt := range tests {
		if got := FormatFare(tt.in); got != tt.want {
			t.Errorf("FormatFare(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

const priceItemJSON = `{
  "queryLeftNewDTO": {
    "train_no": "24000000G101",
    "station_train_code": "G1",
    "from_station_name": "北京南",
    "to_station_name": "上海虹桥",
    "start_time": "09:00",
    "arrive_time": "14:28",
    "lishi": "05:28",
    "train_class_name": "高速",
    "ze_price": "5530",
    "zy_price": "9330",
    "swz_price": "17485",
    "yz_price": "",
    "wz_price": "--"
  }
}`

func TestDecodePriceItem(t *testing.T) {
	q, ok := DecodePriceItem([]byte(priceItemJSON), "")
	if !ok {
		t.Fatal("expected item to decode")
	}
	if q.TrainCode != "G1" || q.TrainNo != "24000000G101" {
		t.Errorf("identity: %+v", q)
	}
	if q.FromStation != "北京南" || q.ToStation != "上海虹桥" || q.Duration != "05:28" {
		t.Errorf("route: %+v", q)
	}
	want := map[string]string{"二等座": "553.0", "一等座": "933.0", "商务座": "1748.5"}
	if len(q.Prices) != len(want) {
		t.Fatalf("expected %d fares, got %v", len(want), q.Prices)
	}
	for label, fare := range want {
		if q.Prices[label] != fare {
			t.Errorf("fare %s: expected %q, got %q", label, fare, q.Prices[label])
		}
	}
	if _, present := q.Prices["无座"]; present {
		t.Error("-- fare must be omitted")
	}
	if _, present := q.Prices["硬座"]; present {
		t.Error("empty fare must be omitted")
	}
}

func TestDecodePriceItemFilter(t *testing.T) {
	if _, ok := DecodePriceItem([]byte(priceItemJSON), "G2"); ok {
		t.Error("filter mismatch must skip the item")
	}
	if _, ok := DecodePriceItem([]byte(priceItemJSON), "G1"); !ok {
		t.Error("filter match must keep the item")
	}
}

func TestDecodePriceItemMalformed(t *testing.T) {
	if _, ok := DecodePriceItem([]byte("not json"), ""); ok {
		t.Error("malformed item must not decode")
	}
}
