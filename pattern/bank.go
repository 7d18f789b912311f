package pattern

import (
	"errors"
	"fmt"
	"sync"
)

// Statement operations.
const (
	OpPulses uint8 = iota
	OpRotate
	OpClear
	OpResize
	opUnknown
)

// A Statement represents an operation to perform on a bank.
type Statement struct {
	Key               string
	Op                uint8
	Arg               int
	CreateIfNotExists bool
	CreateWithLength  int
}

// A Bank represents a collection of named Patterns. A Bank can be used
// simultaneously from multiple goroutines.
type Bank struct {
	m  map[string]*Pattern
	mu sync.RWMutex
}

// NewBank creates and initializes a new Bank.
func NewBank() *Bank {
	return &Bank{m: make(map[string]*Pattern)}
}

// New creates and adds a new Pattern of the given length to the bank
// using key as its identifier. If a Pattern already exists for the
// identifier it is silently replaced with the new Pattern.
func (b *Bank) New(key string, length int) {
	b.mu.Lock()
	b.m[key] = WithLength(length)
	b.mu.Unlock()
}

// Add adds a copy of p to the bank using key as its identifier. If a
// Pattern already exists for the identifier it is silently replaced
// with the new Pattern.
func (b *Bank) Add(key string, p *Pattern) {
	b.mu.Lock()
	b.m[key] = p.clone()
	b.mu.Unlock()
}

// Get returns a copy of the Pattern associated to key. The second
// return value is true if the key exists in the bank and false if not.
func (b *Bank) Get(key string) (*Pattern, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	p, ok := b.m[key]
	if !ok {
		return nil, false
	}
	return p.clone(), true
}

// Delete removes the Pattern associated to key from the bank.
func (b *Bank) Delete(key string) {
	b.mu.Lock()
	delete(b.m, key)
	b.mu.Unlock()
}

// Keys returns the identifiers known in the bank.
func (b *Bank) Keys() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	keys := make([]string, len(b.m))
	i := 0
	for k := range b.m {
		keys[i] = k
		i++
	}
	return keys
}

// Execute executes a statement against the bank, returning an error if
// the statement cannot be executed.
func (b *Bank) Execute(statement Statement) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.executeUnsafe(statement)
}

// Batch executes multiple statements against the bank. Individual
// errors are non blocking but if one or more statements could not be
// executed the method will return a global error and a slice holding
// information about each individual error.
func (b *Bank) Batch(statements []Statement) (error, []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var report []string
	for i, v := range statements {
		if err := b.executeUnsafe(v); err != nil {
			report = append(report, fmt.Sprintf("%s, at index %d", err, i))
		}
	}
	if len(report) > 0 {
		return fmt.Errorf("some operations could not be completed"), report
	}
	return nil, report
}

// executeUnsafe executes a statement against the bank, returning an
// error if the statement cannot be executed. This method is not
// goroutine-safe. The caller is responsible for properly acquiring /
// releasing the lock on the bank.
func (b *Bank) executeUnsafe(statement Statement) error {
	if statement.Op >= opUnknown {
		return errors.New("unknown statement operation")
	}
	p, ok := b.m[statement.Key]
	if !ok {
		if !statement.CreateIfNotExists {
			return errors.New("key does not exist")
		}
		p = WithLength(statement.CreateWithLength)
		b.m[statement.Key] = p
	}
	switch statement.Op {
	case OpPulses:
		p.Pulses(statement.Arg)
	case OpRotate:
		p.Rotate(statement.Arg)
	case OpClear:
		p.Clear()
	case OpResize:
		p.Resize(statement.Arg)
	}
	return nil
}
