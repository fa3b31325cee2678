/*
Package scoring evaluates trainee utterances against a set of lexical quality
metrics, each returning a value in [0,10].

Every metric is a pure function of a normalized text representation (plus the
previous client turn for listening metrics). There is no shared state and no
I/O: metrics are individually testable and trivially parallel.
*/
package scoring
