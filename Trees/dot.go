package Trees

import (
	"bufio"
	"fmt"
	"io"
)

// WriteDot writes the tree in the Graphviz DOT language. Edges are labelled
// with the rank gap between parent and child, empty child slots are drawn as
// points and nodes of equal rank are placed on the same row.
// Time: O(n); Space: O(n)
func (u *WAVLTree[T, S]) WriteDot(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, `digraph Tree {subgraph tier1 {node [color="lightblue",style="filled",group="tier1"]`)
	var nils int
	if u.root != 0 {
		for st := []S{u.root}; len(st) > 0; {
			curI := st[len(st)-1]
			st = st[:len(st)-1]
			id := fmt.Sprintf("%q", fmt.Sprint(*u.getV(curI)))
			for _, c := range [2]S{u.ifs[curI].l, u.ifs[curI].r} {
				if c == 0 {
					fmt.Fprintf(bw, "null%d [shape=point];\n%s -> null%d;\n", nils, id, nils)
					nils++
				} else {
					fmt.Fprintf(bw, "%s -> %q [label=\"%d\" style=\"filled\", fillcolor=\"lightblue\"]\n", id, fmt.Sprint(*u.getV(c)), u.gap(curI, c))
				}
			}
			if r := u.ifs[curI].r; r != 0 {
				st = append(st, r)
			}
			if l := u.ifs[curI].l; l != 0 {
				st = append(st, l)
			}
		}
	}
	rows := make([][]string, int(u.RootRank())+1)
	for f := u.InOrder(); ; {
		v, rk, ok := f()
		if !ok {
			break
		}
		rows[rk] = append(rows[rk], fmt.Sprintf("%q", fmt.Sprint(v)))
	}
	for _, row := range rows {
		if len(row) > 0 {
			fmt.Fprint(bw, "{rank = same;")
			for _, id := range row {
				fmt.Fprintf(bw, " %s;", id)
			}
			fmt.Fprintln(bw, "}")
		}
	}
	if nils > 0 {
		fmt.Fprint(bw, "{rank = same;")
		for i := range nils {
			fmt.Fprintf(bw, " null%d;", i)
		}
		fmt.Fprintln(bw, "}")
	}
	fmt.Fprintln(bw, "}}")
	return bw.Flush()
}
