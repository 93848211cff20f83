package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/coactgraph/core"
)

// writeTSV writes "source\ttarget\tweight" rows in graph edge order.
func writeTSV(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, "source\ttarget\tweight"); err != nil {
		return err
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%d\t%d\t%d\n", e.From, e.To, e.Weight); err != nil {
			return err
		}
	}

	return bw.Flush()
}
