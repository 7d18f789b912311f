package pattern

// Step notation symbols.
const (
	symbolPulse = 'x'
	symbolRest  = '.'
)

// String returns the steps in conventional step notation, using "x"
// for a pulse and "." for a rest.
func (p *Pattern) String() string {
	buf := make([]byte, 0, len(p.steps))
	for _, v := range p.steps {
		if v {
			buf = append(buf, symbolPulse)
		} else {
			buf = append(buf, symbolRest)
		}
	}
	return string(buf)
}
