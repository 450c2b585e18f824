// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package cache

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
)

// Codec names accepted by NewCodec.
const (
	CodecJSON    = "json"
	CodecCBOR    = "cbor"
	CodecMsgpack = "msgpack"
)

var errNoData = errors.New("cache: record has no data")

// Codec frames a Record for byte-oriented backends (badger, redis).
type Codec interface {
	Name() string
	Encode(rec Record) ([]byte, error)
	Decode(b []byte) (Record, error)
}

// NewCodec returns the codec registered under name.
func NewCodec(name string) (Codec, error) {
	switch name {
	case "", CodecJSON:
		return JSONCodec{}, nil
	case CodecCBOR:
		return NewCBORCodec()
	case CodecMsgpack:
		return MsgpackCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown cache codec %q", name)
	}
}

// jsonRecord is the on-disk JSON shape: {"data": ..., "cachedAt": ...}.
type jsonRecord struct {
	Data     json.RawMessage `json:"data"`
	CachedAt time.Time       `json:"cachedAt"`
}

// binaryRecord carries the JSON payload as an opaque byte string.
type binaryRecord struct {
	Data     []byte    `cbor:"1,keyasint" msgpack:"d"`
	CachedAt time.Time `cbor:"2,keyasint" msgpack:"t"`
}

// JSONCodec writes the same document FileStore puts on disk.
type JSONCodec struct{}

func (JSONCodec) Name() string { return CodecJSON }

// Encode does not HTML-escape so Data round-trips byte for byte.
func (JSONCodec) Encode(rec Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(jsonRecord{Data: rec.Data, CachedAt: rec.CachedAt}); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (JSONCodec) Decode(b []byte) (Record, error) {
	var jr jsonRecord
	if err := json.Unmarshal(b, &jr); err != nil {
		return Record{}, err
	}
	if len(jr.Data) == 0 {
		return Record{}, errNoData
	}
	return Record{Data: []byte(jr.Data), CachedAt: jr.CachedAt}, nil
}

// CBORCodec frames records with fxamacker/cbor using core deterministic
// encoding and RFC3339Nano timestamps.
type CBORCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

// NewCBORCodec builds the encode and decode modes.
func NewCBORCodec() (*CBORCodec, error) {
	eo := cbor.CoreDetEncOptions()
	eo.Time = cbor.TimeRFC3339Nano
	em, err := eo.EncMode()
	if err != nil {
		return nil, err
	}
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return nil, err
	}
	return &CBORCodec{enc: em, dec: dm}, nil
}

func (*CBORCodec) Name() string { return CodecCBOR }

func (c *CBORCodec) Encode(rec Record) ([]byte, error) {
	return c.enc.Marshal(binaryRecord{Data: rec.Data, CachedAt: rec.CachedAt})
}

func (c *CBORCodec) Decode(b []byte) (Record, error) {
	var br binaryRecord
	if err := c.dec.Unmarshal(b, &br); err != nil {
		return Record{}, err
	}
	return fromBinary(br)
}

// MsgpackCodec frames records with vmihailenco/msgpack.
type MsgpackCodec struct{}

func (MsgpackCodec) Name() string { return CodecMsgpack }

func (MsgpackCodec) Encode(rec Record) ([]byte, error) {
	return msgpack.Marshal(binaryRecord{Data: rec.Data, CachedAt: rec.CachedAt})
}

func (MsgpackCodec) Decode(b []byte) (Record, error) {
	var br binaryRecord
	if err := msgpack.Unmarshal(b, &br); err != nil {
		return Record{}, err
	}
	return fromBinary(br)
}

func fromBinary(br binaryRecord) (Record, error) {
	if len(br.Data) == 0 {
		return Record{}, errNoData
	}
	if !json.Valid(br.Data) {
		return Record{}, errors.New("cache: record data is not valid JSON")
	}
	return Record{Data: br.Data, CachedAt: br.CachedAt.UTC()}, nil
}
