/*
Package pattern implements fixed-length binary step sequences with pulses
distributed as evenly as possible (Euclidean rhythms). It defines the type
Pattern, with methods for generating, rotating and traversing steps, and
the type Bank, with methods for interacting with a collection of named
patterns.

A Pattern is an ordered sequence of boolean steps, where true marks a
pulse (onset) and false marks a rest, together with a cursor used for
traversal. Pulses distributes a number of onsets as evenly as possible
across the steps, Rotate shifts the starting phase of the sequence, and
Next and NextLooped traverse the steps either as a finite restartable
sequence or as an endless loop.

A Pattern is a plain mutable value and is not safe for concurrent use.
A Bank is essentially a wrapper around a map of patterns that provides
convenience methods safe to use from multiple goroutines.
*/
package pattern
