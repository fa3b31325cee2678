/*
Package domain defines the core types of the training engine: sessions, stage
graphs, score vectors, turn results and grades.

These types carry no I/O and no business orchestration; the engine and the
store adapters both depend on this package, never the other way around.
*/
package domain
