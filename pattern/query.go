package pattern

// Onsets returns the indices of the steps set to true, in step order.
func (p *Pattern) Onsets() []int {
	var onsets []int
	for i, v := range p.steps {
		if v {
			onsets = append(onsets, i)
		}
	}
	return onsets
}

// Count returns the number of steps set to true.
func (p *Pattern) Count() int {
	n := 0
	for _, v := range p.steps {
		if v {
			n++
		}
	}
	return n
}
