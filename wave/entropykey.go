package wave

// EntropyKey orders cells for observation: lowest entropy first, ties
// broken by the cell's fixed init-time noise. SnapshotWeightedCount is not
// part of the order; the observer compares it against a cell's live count
// to detect a stale heap entry.
type EntropyKey struct {
	Entropy               float32
	Noise                 uint32
	SnapshotWeightedCount uint32
}

// Less reports whether k sorts before other: lower entropy first, then
// lower noise.
func (k EntropyKey) Less(other EntropyKey) bool {
	if k.Entropy != other.Entropy {
		return k.Entropy < other.Entropy
	}
	return k.Noise < other.Noise
}
