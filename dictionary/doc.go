// Package dictionary loads a line-oriented word list into an in-memory set.
//
// Format:
//
//   - One word per line. Surrounding whitespace is trimmed, blank lines are
//     skipped, and a leading UTF-8 byte order mark is ignored.
//   - Text is UTF-8 by default; EncodingLatin1 decodes ISO-8859-1 files so
//     extended letters (å, ä, ö) survive either way.
//
// Words are stored as read; the file is expected to be lowercase. WithLowercase
// installs a normalization function applied to every word.
//
// Errors:
//
//   - I/O errors from opening or reading the source, wrapped with the path.
//   - ErrUnknownEncoding for an unsupported encoding name.
package dictionary
