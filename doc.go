// Package uniq collapses duplicate lines in a text stream, wherever in the
// stream they occur, and reports how often each distinct line was seen.
//
// Like uniq(1), it can prefix lines with their counts, or show only lines that
// are repeated, or only lines that are not. Unlike uniq(1), duplicates need
// not be adjacent: the whole input is read first, and each distinct line is
// output once, in the order it first appeared.
//
// Operations are chained on a Pipe:
//
//	uniq.File("access.log").Uniq(uniq.Options{Count: true}).Stdout()
//
// If any pipe operation results in an error, the pipe's Error method will
// return that error, and all later operations on the pipe are no-ops. So a
// whole chain can be run without checking for errors at each stage:
//
//	p := uniq.File("doesnt_exist.txt").Duplicates()
//	out, err := p.String()
//	fmt.Println(out == "", err)
//	// Output: true open doesnt_exist.txt: no such file or directory
package uniq
