// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package cache

import (
	"bytes"
	"testing"
	"time"
)

func TestCodecs_RoundTrip(t *testing.T) {
	t.Parallel()

	rec := Record{
		Data:     []byte(`{"events":["12:11 P1 GOAL Canada (Bell)"],"note":"<b>&</b>"}`),
		CachedAt: time.Date(2026, 2, 14, 18, 3, 11, 123456789, time.UTC),
	}

	for _, name := range []string{CodecJSON, CodecCBOR, CodecMsgpack} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c, err := NewCodec(name)
			if err != nil {
				t.Fatalf("NewCodec: %v", err)
			}
			if c.Name() != name {
				t.Errorf("Name = %q, want %q", c.Name(), name)
			}
			b, err := c.Encode(rec)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := c.Decode(b)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if !bytes.Equal(got.Data, rec.Data) {
				t.Errorf("Data = %s, want %s", got.Data, rec.Data)
			}
			if !got.CachedAt.Equal(rec.CachedAt) {
				t.Errorf("CachedAt = %v, want %v", got.CachedAt, rec.CachedAt)
			}
		})
	}
}

func TestCodecs_RejectGarbage(t *testing.T) {
	t.Parallel()

	for _, name := range []string{CodecJSON, CodecCBOR, CodecMsgpack} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c, err := NewCodec(name)
			if err != nil {
				t.Fatalf("NewCodec: %v", err)
			}
			if _, err := c.Decode([]byte{0xff, 0x00, 0x13}); err == nil {
				t.Error("Decode(garbage): expected error")
			}
			if _, err := c.Decode(nil); err == nil {
				t.Error("Decode(nil): expected error")
			}
		})
	}
}

func TestJSONCodec_NoHTMLEscape(t *testing.T) {
	t.Parallel()
	b, err := JSONCodec{}.Encode(Record{Data: []byte(`"a<b"`), CachedAt: time.Unix(0, 0).UTC()})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := `{"data":"a<b","cachedAt":"1970-01-01T00:00:00Z"}`
	if string(b) != want {
		t.Errorf("Encode = %s, want %s", b, want)
	}
}

func TestNewCodec_Unknown(t *testing.T) {
	t.Parallel()
	if _, err := NewCodec("xml"); err == nil {
		t.Error("expected error for unknown codec")
	}
}
