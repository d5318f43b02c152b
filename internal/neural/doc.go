// Package neural implements the type system and construction-time bookkeeping
// for Weave neural graphs.
//
// This package provides:
//   - NeuralType: the declared shape/semantic contract of a module port
//   - ElementType: a hierarchy of semantic tags (Logits, Labels, Loss, ...)
//   - Axis / AxisKind: ordered axis descriptors (batch, time, dimension, ...)
//   - Tensor: a handle carrying provenance (producer, producer args, consumers)
//   - Module: the contract every graph-composable unit implements
//   - PortMap / Outputs: ordered port and result collections
//   - The construction-time error taxonomy
//
// The numeric payload of a tensor is deliberately absent: this package records
// how values flow between modules, not the values themselves. Execution
// engines walk the recorded structure and materialize real computation.
package neural
