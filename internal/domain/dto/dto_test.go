package dto

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/guttosm/stockapi/internal/domain/models"
)

var profileKeys = []string{
	"symbol", "name", "sector", "industry", "market_cap", "previous_close", "open",
	"day_high", "day_low", "volume", "52_week_high", "52_week_low", "dividend_yield",
	"pe_ratio", "eps", "website",
}

func TestErrorResponse(t *testing.T) {
	e := NewErrorResponse(errors.New("boom"))
	if e.Error() != "boom" {
		t.Fatalf("want 'boom' got %q", e.Error())
	}
	b, _ := json.Marshal(e)
	if string(b) != `{"error":"boom"}` {
		t.Fatalf("unexpected json %s", b)
	}
	if NewErrorResponse(nil).Message == "" {
		t.Fatalf("nil error must still produce a message")
	}
}

func TestNewProfileResponse_AllMissing(t *testing.T) {
	resp := NewProfileResponse("ZZZ", &models.CompanyProfile{})
	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != len(profileKeys) {
		t.Fatalf("want %d keys, got %d: %v", len(profileKeys), len(out), out)
	}
	for _, k := range profileKeys {
		v, ok := out[k]
		if !ok {
			t.Fatalf("missing key %q", k)
		}
		if k == "symbol" {
			if v != "ZZZ" {
				t.Fatalf("symbol fallback: got %v", v)
			}
			continue
		}
		if v != NotAvailable {
			t.Fatalf("key %q: got %v, want N/A", k, v)
		}
	}
}

func TestNewProfileResponse_Populated(t *testing.T) {
	mc := int64(3_400_000_000_000)
	pc := 229.98
	resp := NewProfileResponse("aapl", &models.CompanyProfile{
		Symbol:        "AAPL",
		Name:          "Apple Inc.",
		MarketCap:     &mc,
		PreviousClose: &pc,
	})
	b, _ := json.Marshal(resp)
	s := string(b)
	for _, want := range []string{`"symbol":"AAPL"`, `"market_cap":3400000000000`, `"previous_close":229.98`, `"sector":"N/A"`} {
		if !strings.Contains(s, want) {
			t.Fatalf("%s does not contain %s", s, want)
		}
	}
	if !strings.HasPrefix(s, `{"symbol"`) || !strings.HasSuffix(s, `"website":"N/A"}`) {
		t.Fatalf("unexpected key order: %s", s)
	}
}

func TestNewProfileResponse_Nil(t *testing.T) {
	if got := NewProfileResponse("MSFT", nil); got.Symbol != "MSFT" || got.Name != NotAvailable {
		t.Fatalf("unexpected %+v", got)
	}
}

func TestPriceBarResponses(t *testing.T) {
	d := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := []models.PriceBar{{Date: d, Open: 1, High: 2, Low: 0.5, Close: 1.5, Volume: 10, Symbol: "AAPL"}}

	hist, _ := json.Marshal(NewPriceBarResponse(bars))
	if string(hist) != `[{"Date":"2025-01-02T00:00:00Z","Open":1,"High":2,"Low":0.5,"Close":1.5,"Volume":10}]` {
		t.Fatalf("unexpected history json %s", hist)
	}

	snap, _ := json.Marshal(NewSnapshotResponse(bars))
	if string(snap) != `[{"Date":"2025-01-02T00:00:00Z","Open":1,"High":2,"Low":0.5,"Close":1.5,"Volume":10,"Symbol":"AAPL"}]` {
		t.Fatalf("unexpected snapshot json %s", snap)
	}

	empty, _ := json.Marshal(NewPriceBarResponse(nil))
	if string(empty) != `[]` {
		t.Fatalf("empty input must encode as [], got %s", empty)
	}
}
