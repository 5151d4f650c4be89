package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gosuda/gobasic/lexer"
	bruntime "github.com/gosuda/gobasic/runtime"
)

// keyword_gap lists the statement and function words the token set
// declares, split by whether the lexer or the interpreter handles them.
// With -strict it exits 1 while any word is unhandled.
func main() {
	strict := len(os.Args) > 1 && os.Args[1] == "-strict"

	declared := map[string]struct{}{}
	for k := lexer.Let; k <= lexer.Right; k++ {
		declared[k.String()] = struct{}{}
	}
	handled := map[string]struct{}{}
	for name := range declared {
		if _, ok := lexer.LookupKeyword(name); ok || bruntime.IsBuiltin(name) {
			handled[name] = struct{}{}
		}
	}

	missing := diff(declared, handled)
	fmt.Printf("declared words: %d\n", len(declared))
	fmt.Printf("handled: %d (%s)\n", len(handled), strings.Join(diff(handled, nil), " "))
	fmt.Printf("declared but unreachable: %d\n", len(missing))
	for _, n := range missing {
		fmt.Println("  - " + n)
	}
	if strict && len(missing) > 0 {
		os.Exit(1)
	}
}

func diff(base, comp map[string]struct{}) []string {
	out := make([]string, 0)
	for n := range base {
		if _, ok := comp[n]; !ok {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}
