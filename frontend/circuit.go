package frontend

// Circuit is implemented by user circuits. Configure declares the shape on the
// given ConstraintSystem (implementations typically store the resulting column
// handles on themselves); Synthesize assigns witness values through the
// Layouter.
type Circuit interface {
	Configure(cs *ConstraintSystem)
	Synthesize(l *Layouter) error
}

// ShapeCircuit is implemented by circuits that support a structure-only
// synthesis pass: WithoutWitnesses returns a copy with every input unresolved,
// so Synthesize runs with unknown Values and only the shape is recorded.
type ShapeCircuit interface {
	Circuit
	WithoutWitnesses() Circuit
}
