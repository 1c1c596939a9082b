// Package sawmill provides access-log parsing and analysis for embedding in
// other programs.
//
// Quick start:
//
//	s := sawmill.New(sawmill.WithTopN(5))
//
//	summary, err := s.AnalyzeFile("access.log")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d requests, %.1f%% errors\n", summary.TotalRequests, summary.ErrorRate)
//
// Parsing is lenient: lines that do not match the combined-log shape are
// dropped and processing continues. The only surfaced error is a missing
// input file. A Sawmill instance is safe for concurrent use.
package sawmill
