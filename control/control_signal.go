package control

import "sync"

// Signal holds any data passed between blocks.
type Signal struct {
	name      string
	blockType blockType
	signal    []float64
	time      []int
	dimension int
	mu        *sync.Mutex
}

func makeSignal(name string, blockType blockType, dimension int) *Signal {
	return &Signal{
		name:      name,
		blockType: blockType,
		signal:    make([]float64, dimension),
		time:      make([]int, dimension),
		dimension: dimension,
		mu:        &sync.Mutex{},
	}
}

// NewSignal returns a signal carrying the given values, used to feed external measurements
// such as a vehicle pose into a block.
func NewSignal(name string, values ...float64) *Signal {
	s := makeSignal(name, blockInput, len(values))
	copy(s.signal, values)
	return s
}

// Name returns the name of the block that produced the signal.
func (s *Signal) Name() string {
	return s.name
}

// Dimension returns the number of values carried by the signal.
func (s *Signal) Dimension() int {
	return s.dimension
}

// GetSignalValueAt returns the value of the signal at an index, threadsafe.
func (s *Signal) GetSignalValueAt(i int) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !(i < len(s.signal)) {
		return 0.0
	}
	return s.signal[i]
}

// SetSignalValueAt set the value of a signal at an index, threadsafe.
func (s *Signal) SetSignalValueAt(i int, val float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !(i < len(s.signal)) {
		return
	}
	s.signal[i] = val
}

// values returns a copy of every value carried by the signal.
func (s *Signal) values() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]float64, len(s.signal))
	copy(out, s.signal)
	return out
}
