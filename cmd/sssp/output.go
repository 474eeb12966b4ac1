package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/sssp/dijkstra"
)

// pathMissing is printed in place of a path for unreachable vertices.
const pathMissing = "The path does not exist."

// printResult writes one line per vertex:
//
//	4, {Distance: Some(3), Path: 0 -> 3 -> 4}
//	6, {Distance: None, Path: The path does not exist.}
func printResult(w io.Writer, res *dijkstra.Result) error {
	for v := 0; v < res.Size(); v++ {
		d, ok, err := res.Distance(v)
		if err != nil {
			return err
		}
		path, err := res.Path(v)
		if err != nil {
			return err
		}

		distance, route := "None", pathMissing
		if ok {
			distance = fmt.Sprintf("Some(%d)", d)
			route = formatPath(path)
		}
		if _, err = fmt.Fprintf(w, "%d, {Distance: %s, Path: %s}\n", v, distance, route); err != nil {
			return err
		}
	}

	return nil
}

// formatPath joins vertices with " -> ".
func formatPath(path []int) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " -> ")
}
