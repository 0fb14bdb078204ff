// Package wordgrid finds the dictionary words hidden in a letter grid, the
// way a Boggle player would: by tracing contiguous king-move paths that never
// revisit a cell.
//
// Under the hood, everything is organized under these subpackages:
//
//	gridgraph/     immutable letter grid with Conn8/Conn4 neighbor offsets
//	dfs/           exhaustive simple-path enumeration with backtracking
//	builder/       random (seeded) and literal grid construction
//	dictionary/    line-oriented word lists, UTF-8 or Latin-1
//	report/        dedupe, lowercase, intersect, collate, persist
//	config/        HCL file, .env and WORDGRID_* variables
//	cli/, app/     command-line parsing and the run pipeline
//	cmd/wordgrid   the executable
//
// Quick ASCII example:
//
//	C─A
//	│╳│
//	X─B
//
// On this board every cell touches every other, so each of the 4 roots has
// 6 paths of three cells and 6 of four: 48 candidates, among them "CAB".
//
//	go run ./cmd/wordgrid -grid CA,XB -dict words.txt
package wordgrid
