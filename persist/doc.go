// Package persist saves and loads ragged containers as compact binary
// snapshots. Sections are s2-compressed and individually checksummed
// with CRC-32C, so storage corruption is detected on load.
//
// Snapshots store raw element bytes in native byte order and are not
// portable across endianness. Element types must be pointer-free.
package persist
