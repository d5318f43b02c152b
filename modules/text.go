// Copyright 2025 Weave ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package modules

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"

	"github.com/weave-ml/weave/neural"
)

// TokenTextSource is a data-source module tokenizing a fixed corpus of text
// lines into padded token-ID batches.
//
//	output tokens:  [B, T]<TokenIndex> token IDs, padded with PadID
//	output lengths: [B]<Labels>        unpadded line lengths
//
// Supported encodings are the tiktoken ones: "cl100k_base" (GPT-4),
// "p50k_base" and "r50k_base".
type TokenTextSource struct {
	base
	encoding *tiktoken.Tiktoken
	corpus   []string
}

// PadID is the token ID used to pad short lines.
const PadID = 0

// NewTokenTextSource creates a text source over corpus using the named
// tiktoken encoding.
func NewTokenTextSource(encodingName string, corpus []string, opts ...Option) (*TokenTextSource, error) {
	encoding, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken encoding %q: %w", encodingName, err)
	}
	s := &TokenTextSource{
		encoding: encoding,
		corpus:   corpus,
	}
	s.base = newBase(s, applyOptions(opts),
		neural.NewPortMap(),
		neural.NewPortMap().
			Add("tokens", neural.NewType(neural.TokenIndex,
				neural.Axis{Kind: neural.AxisBatch},
				neural.Axis{Kind: neural.AxisTime})).
			Add("lengths", neural.NewType(neural.Labels,
				neural.Axis{Kind: neural.AxisBatch})))
	return s, nil
}

// Encode tokenizes a single line.
func (s *TokenTextSource) Encode(text string) []int {
	return s.encoding.Encode(text, nil, nil)
}

// Compute tokenizes the corpus into a row-major [batch, maxLen] block of
// token IDs plus per-line lengths. IDs are carried as float32 like every
// other payload in the in-memory replay protocol.
func (s *TokenTextSource) Compute(map[string][]float32) (map[string][]float32, error) {
	if len(s.corpus) == 0 {
		return nil, fmt.Errorf("token source %q: empty corpus", s.Name())
	}
	encoded := make([][]int, len(s.corpus))
	maxLen := 0
	for i, line := range s.corpus {
		encoded[i] = s.Encode(line)
		if len(encoded[i]) > maxLen {
			maxLen = len(encoded[i])
		}
	}
	tokens := make([]float32, 0, len(encoded)*maxLen)
	lengths := make([]float32, len(encoded))
	for i, ids := range encoded {
		lengths[i] = float32(len(ids))
		for _, id := range ids {
			tokens = append(tokens, float32(id))
		}
		for j := len(ids); j < maxLen; j++ {
			tokens = append(tokens, PadID)
		}
	}
	return map[string][]float32{"tokens": tokens, "lengths": lengths}, nil
}
