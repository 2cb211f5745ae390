package enclosure

// SealedBox is a closed acoustic-suspension box.
type SealedBox struct {
	base
}

// NewSealed returns a sealed box of the given net volume (litres) with
// Ql = DefaultSealedQL.
func NewSealed(liters float64) *SealedBox {
	return &SealedBox{base{typ: Sealed, volume: liters, ql: DefaultSealedQL}}
}

// WithQL returns a copy of s using loss factor ql.
func (s *SealedBox) WithQL(ql float64) *SealedBox {
	c := *s
	c.ql = ql

	return &c
}

// Record implements Enclosure.
func (s *SealedBox) Record() Record { return s.record() }

// MarshalJSON implements Enclosure.
func (s *SealedBox) MarshalJSON() ([]byte, error) { return marshalRecord(s) }

func sealedFromRecord(rec Record) *SealedBox {
	s := NewSealed(rec.Volume.liters())
	if rec.QL != nil {
		s.ql = *rec.QL
	}

	return s
}
