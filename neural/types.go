// Copyright 2025 Weave ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package neural

import (
	"github.com/weave-ml/weave/internal/neural"
)

// NeuralType is the declared shape/semantic contract of a module port.
type NeuralType = neural.NeuralType

// NewType creates a neural type. No axes means a scalar.
func NewType(element *ElementType, axes ...Axis) *NeuralType {
	return neural.NewType(element, axes...)
}

// Axis describes one dimension of a neural type.
type Axis = neural.Axis

// AxisKind identifies the semantic role of a tensor axis.
type AxisKind = neural.AxisKind

// Axis kinds.
const (
	AxisAny       = neural.AxisAny
	AxisBatch     = neural.AxisBatch
	AxisTime      = neural.AxisTime
	AxisDimension = neural.AxisDimension
	AxisChannel   = neural.AxisChannel
)

// ElementType is a semantic tag describing what a tensor's elements mean.
type ElementType = neural.ElementType

// NewElementType creates a new element type derived from parent.
func NewElementType(name string, parent *ElementType) *ElementType {
	return neural.NewElementType(name, parent)
}

// The built-in element hierarchy.
var (
	Void           = neural.Void
	Element        = neural.Element
	Channel        = neural.Channel
	Spectrogram    = neural.Spectrogram
	MelSpectrogram = neural.MelSpectrogram
	Logits         = neural.Logits
	Regression     = neural.Regression
	Labels         = neural.Labels
	TokenIndex     = neural.TokenIndex
	Loss           = neural.Loss
)

// ComparisonResult is the verdict of comparing two neural types.
type ComparisonResult = neural.ComparisonResult

// Comparison verdicts.
const (
	Same            = neural.Same
	Lesser          = neural.Lesser
	Greater         = neural.Greater
	DimIncompatible = neural.DimIncompatible
	TransposeSame   = neural.TransposeSame
	Incompatible    = neural.Incompatible
)

// OperationMode constrains what a graph may be nested into.
type OperationMode = neural.OperationMode

// Operation modes.
const (
	ModeBoth      = neural.ModeBoth
	ModeTraining  = neural.ModeTraining
	ModeInference = neural.ModeInference
)

// ParseMode parses a canonical mode name ("both", "training", "inference").
func ParseMode(s string) (OperationMode, error) {
	return neural.ParseMode(s)
}

// Device identifies the compute device modules are placed on.
type Device = neural.Device

// Supported devices.
const (
	CPU = neural.CPU
	GPU = neural.GPU
)
