package pattern

// ID is a dense, non-negative index into a Table or a GlobalStats.
type ID = uint32
