// Package record decodes the upstream's wire records into typed values.
//
// The 12306 formats are positional or loosely keyed and have drifted across
// versions, so every decoder here is a small pure function that is total
// over malformed input: a record that cannot be decoded yields (zero, false)
// and never an error or panic. This confines upstream schema drift to this
// one layer.
package record
