// Package hashing provides MD5 checksum calculation utilities.
//
// Checksums identify configuration text: the reader proxy fingerprints a file
// exactly as it was read from disk, while SumString fingerprints the canonical
// rendering of a section, so two files that differ only in formatting or
// comments share the same canonical checksum.
//
//	proxy := hashing.NewMD5ReaderProxy(f)
//	content, _ := io.ReadAll(proxy)
//	checksum, _ := proxy.GetChecksum()
//
// MD5 is used for change detection only, never for security.
package hashing
