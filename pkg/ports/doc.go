/*
Package ports defines the driven ports (interfaces) of the training engine.

These interfaces decouple the engine from external implementations: session
persistence backends, distributed lockers, and the generative persona backend.
*/
package ports
