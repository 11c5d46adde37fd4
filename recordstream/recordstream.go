/*
 * recordstream.go, part of poreprofile.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU
 * General Public License for more details.
 */

// Package recordstream writes and reads the per-frame JSON Lines stream of
// spec.md §6: one PerFrameRecord per line, optionally gzip-compressed.
// Modeled on the teacher's json.go conventions (encoding/json,
// bufio-wrapped I/O), generalized from a single-document marshal to a
// streaming line-delimited writer/reader.
package recordstream

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/klauspost/compress/gzip"

	pp "github.com/rmera/poreprofile"
)

// Writer appends PerFrameRecords to an underlying io.Writer, one JSON
// object per line. The per-frame file is append-only and single-producer
// per spec.md §5's resource model.
type Writer struct {
	w   *bufio.Writer
	gz  *gzip.Writer
	enc *json.Encoder
}

// NewWriter wraps w for line-delimited JSON output. If gzipped is true, the
// stream is gzip-compressed.
func NewWriter(w io.Writer, gzipped bool) *Writer {
	bw := bufio.NewWriter(w)
	out := &Writer{w: bw}
	var target io.Writer = bw
	if gzipped {
		out.gz = gzip.NewWriter(bw)
		target = out.gz
	}
	out.enc = json.NewEncoder(target)
	return out
}

// Write appends one record as a single JSON line.
func (s *Writer) Write(rec pp.PerFrameRecord) error {
	if err := s.enc.Encode(rec); err != nil {
		return pp.NewError(pp.KindIO, "recordstream: failed to write frame record: %v", err)
	}
	return nil
}

// Close flushes and closes any gzip layer and the underlying buffered writer.
func (s *Writer) Close() error {
	if s.gz != nil {
		if err := s.gz.Close(); err != nil {
			return pp.NewError(pp.KindIO, "recordstream: failed to close gzip stream: %v", err)
		}
	}
	if err := s.w.Flush(); err != nil {
		return pp.NewError(pp.KindIO, "recordstream: failed to flush output: %v", err)
	}
	return nil
}

// Reader reads PerFrameRecords back from a line-delimited JSON stream,
// opened read-only after all frames finish (spec.md §5).
type Reader struct {
	dec    *json.Decoder
	gz     *gzip.Reader
	closer io.Closer
}

// NewReader wraps r for line-delimited JSON input. If gzipped is true, the
// stream is decompressed on the fly.
func NewReader(r io.Reader, gzipped bool) (*Reader, error) {
	out := &Reader{}
	var source io.Reader = r
	if gzipped {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, pp.NewError(pp.KindIO, "recordstream: failed to open gzip stream: %v", err)
		}
		out.gz = gz
		source = gz
	}
	out.dec = json.NewDecoder(source)
	return out, nil
}

// Next decodes the next record, returning io.EOF when the stream is
// exhausted.
func (r *Reader) Next() (pp.PerFrameRecord, error) {
	var rec pp.PerFrameRecord
	if err := r.dec.Decode(&rec); err != nil {
		if err == io.EOF {
			return rec, io.EOF
		}
		return rec, pp.NewError(pp.KindIO, "recordstream: malformed JSON line: %v", err)
	}
	return rec, nil
}

// Close releases the gzip layer, if any.
func (r *Reader) Close() error {
	if r.gz != nil {
		return r.gz.Close()
	}
	return nil
}
