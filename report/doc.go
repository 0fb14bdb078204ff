// Package report turns raw path candidates into an ordered list of dictionary
// words and persists word lists to sinks.
//
// Pipeline (Reporter.Report):
//
//  1. Dedupe      collapse repeated candidates.
//  2. DropBlank   discard empty or whitespace-only entries.
//  3. Lowercase   locale-aware lowercasing (golang.org/x/text/cases), so Å, Ä
//     and Ö fold correctly.
//  4. Intersect   keep only exact members of the dictionary set.
//  5. Order       length in letters ascending, then locale collation
//     (golang.org/x/text/collate), e.g. for Swedish a < z < å < ä < ö.
//
// Collation and lowercasing are injected (Collator, Lowercaser); the defaults
// use the tables bundled with x/text, so results never depend on the host
// locale.
//
// Sinks:
//
//   - DirSink         newline-separated UTF-8 files in a directory.
//   - PocketBaseSink  one record per list in a PocketBase collection.
//   - MultiSink       fan-out to several sinks.
//
// A Reporter is not safe for concurrent use: collators and casers keep
// internal buffers.
package report
