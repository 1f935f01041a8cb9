// Package station loads, caches and indexes the 12306 station catalog
// (name, telecode, pinyin) and resolves human-entered station tokens to
// telecodes, with substring search for suggesting near-misses.
package station
