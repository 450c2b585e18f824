// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package models

import (
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestGameClone(t *testing.T) {
	t.Parallel()

	orig := Game{ID: "g1", Events: []string{"12:11 P1 GOAL Canada (Bell)"}}
	c := orig.Clone()
	c.Events[0] = "mutated"
	c.Events = append(c.Events, "extra")

	if orig.Events[0] != "12:11 P1 GOAL Canada (Bell)" {
		t.Errorf("clone shares events with original: %v", orig.Events)
	}
	if len(orig.Events) != 1 {
		t.Errorf("original events length changed to %d", len(orig.Events))
	}

	var empty Game
	if empty.Clone().Events != nil {
		t.Error("nil events should stay nil")
	}
}

func TestEnvelopeJSON(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 2, 14, 18, 3, 11, 0, time.UTC)

	t.Run("fresh envelope omits error", func(t *testing.T) {
		t.Parallel()
		b, err := json.Marshal(Envelope[[]int]{Data: []int{1}, CachedAt: at, Provider: "sportradar"})
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		got := string(b)
		want := `{"data":[1],"stale":false,"cachedAt":"2026-02-14T18:03:11Z","provider":"sportradar"}`
		if got != want {
			t.Errorf("got %s\nwant %s", got, want)
		}
	})

	t.Run("stale envelope carries error", func(t *testing.T) {
		t.Parallel()
		b, err := json.Marshal(Envelope[string]{Data: "x", Stale: true, CachedAt: at, Error: "boom"})
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if !strings.Contains(string(b), `"stale":true`) || !strings.Contains(string(b), `"error":"boom"`) {
			t.Errorf("unexpected JSON %s", b)
		}
	})
}

func TestNarrow(t *testing.T) {
	t.Parallel()

	at := time.Now()
	all := &Envelope[[]Game]{
		Data:     []Game{{ID: "g1"}, {ID: "g2"}},
		Stale:    true,
		CachedAt: at,
		Provider: "sportradar",
		Error:    "timeout",
	}
	one := Narrow(all, all.Data[1])

	if one.Data.ID != "g2" {
		t.Errorf("Data.ID = %q, want g2", one.Data.ID)
	}
	if !one.Stale || one.Error != "timeout" || one.Provider != "sportradar" || !one.CachedAt.Equal(at) {
		t.Errorf("metadata not carried over: %+v", one)
	}
}

func TestFieldNamesAreCamelCase(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(PlayerStat{ID: "p1", GamesPlayed: 4, PlusMinus: 7, TOI: "18:35"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for _, key := range []string{`"gamesPlayed":4`, `"plusMinus":7`, `"toi":"18:35"`} {
		if !strings.Contains(string(b), key) {
			t.Errorf("%s missing from %s", key, b)
		}
	}
}
