package identifier

// Row pairs a 1-based position with the identifier generated for it.
type Row struct {
	Index int
	ID    Identifier
}

// Batch returns rows indexed 1..count, each with a fresh identifier. A count
// below 1 yields an empty batch; a count above MaxBatch yields MaxBatch rows.
func (g *Generator) Batch(count int) []Row {
	count = max(0, min(count, MaxBatch))
	rows := make([]Row, 0, count)
	for i := 1; i <= count; i++ {
		rows = append(rows, Row{Index: i, ID: g.Generate()})
	}
	return rows
}

// NewBatch returns a batch from the default generator.
func NewBatch(count int) []Row {
	return defaultGenerator.Batch(count)
}
