/*
Package persona produces counterpart text: in-character client replies and
coach feedback.

Two implementations of ports.PersonaBackend exist: a live OpenAI-compatible
backend and a deterministic fallback. Adapter selects between them per call:
backend failures, timeouts and empty replies all degrade to the fallback, so
the engine never sees a persona error and a hung backend never hangs a turn.
*/
package persona
