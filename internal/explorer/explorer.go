package explorer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pmla-casebook/internal/registry"
)

// Explorer is the interactive search/browse loop over a saved snapshot. It
// only reads the serialized contract; it never touches the pipeline.
type Explorer struct {
	cases registry.Snapshot
	in    io.Reader
	out   io.Writer
}

// New creates an explorer reading from stdin and writing to stdout.
func New(cases registry.Snapshot) *Explorer {
	return &Explorer{cases: cases, in: os.Stdin, out: os.Stdout}
}

// Search returns the cases whose identifier or any involved person contains
// the query, case-insensitively, ordered by identifier.
func (e *Explorer) Search(query string) []registry.CaseJSON {
	query = strings.ToLower(query)

	var results []registry.CaseJSON
	for ecir, c := range e.cases {
		if strings.Contains(strings.ToLower(ecir), query) {
			results = append(results, c)
			continue
		}
		for _, person := range c.PersonsInvolved {
			if strings.Contains(strings.ToLower(person), query) {
				results = append(results, c)
				break
			}
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].ECIRNo < results[j].ECIRNo
	})
	return results
}

// Run drives the prompt loop until EOF or an exit command.
func (e *Explorer) Run() error {
	fmt.Fprintf(e.out, "Loaded %d cases.\n", len(e.cases))

	scanner := bufio.NewScanner(e.in)
	for {
		fmt.Fprint(e.out, "\nEnter ECIR, Name, or 'exit': ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if lower := strings.ToLower(query); lower == "exit" || lower == "quit" {
			return nil
		}

		results := e.Search(query)
		fmt.Fprintf(e.out, "Found %d matches.\n", len(results))

		switch {
		case len(results) == 1:
			e.printCase(results[0])
		case len(results) > 1:
			e.printList(results)
			fmt.Fprint(e.out, "Select # to view (or Enter to skip): ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			if sel, err := strconv.Atoi(strings.TrimSpace(scanner.Text())); err == nil && sel >= 1 && sel <= len(results) {
				e.printCase(results[sel-1])
			}
		}
	}
}

func (e *Explorer) printList(results []registry.CaseJSON) {
	fmt.Fprintln(e.out, "Matches:")
	shown := results
	if len(shown) > 10 {
		shown = shown[:10]
	}
	for i, c := range shown {
		fmt.Fprintf(e.out, " %d. %s (Persons: %d)\n", i+1, c.ECIRNo, len(c.PersonsInvolved))
	}
	if len(results) > 10 {
		fmt.Fprintln(e.out, " ... and more")
	}
}

func (e *Explorer) printCase(c registry.CaseJSON) {
	rule := strings.Repeat("=", 60)

	fmt.Fprintf(e.out, "\n%s\n", rule)
	fmt.Fprintf(e.out, "ECIR NO: %s\n", c.ECIRNo)
	fmt.Fprintf(e.out, "DATE   : %s\n", orNA(c.ECIRDate))
	fmt.Fprintf(e.out, "STATUS : %s\n", c.Status)
	fmt.Fprintf(e.out, "%s\n", rule)

	fmt.Fprintln(e.out, "\n--- PERSONS INVOLVED ---")
	if len(c.PersonsInvolved) == 0 {
		fmt.Fprintln(e.out, "  (None recorded)")
	}
	for _, p := range c.PersonsInvolved {
		fmt.Fprintf(e.out, "  - %s\n", p)
	}

	fmt.Fprintln(e.out, "\n--- SEARCHES ---")
	if len(c.Searches) == 0 {
		fmt.Fprintln(e.out, "  (None recorded)")
	}
	for _, s := range c.Searches {
		fmt.Fprintf(e.out, "  [%s] @ %s (Sheet: %s)\n", orUnknown(s.Date), orUnknown(s.Location), s.Sheet)
	}

	fmt.Fprintln(e.out, "\n--- ARRESTS ---")
	if len(c.Arrests) == 0 {
		fmt.Fprintln(e.out, "  (None recorded)")
	}
	for _, a := range c.Arrests {
		fmt.Fprintf(e.out, "  [%s] %s (Sheet: %s)\n", orUnknown(a.Date), a.Name, a.Sheet)
	}

	fmt.Fprintln(e.out, "\n--- PAO (Attachments) ---")
	if len(c.PAOs) == 0 {
		fmt.Fprintln(e.out, "  (None recorded)")
	} else {
		fmt.Fprintf(e.out, "  %d records found.\n", len(c.PAOs))
	}

	fmt.Fprintln(e.out, "\n--- PROSECUTION COMPLAINTS (PC) ---")
	if len(c.PCs) == 0 {
		fmt.Fprintln(e.out, "  (None recorded)")
	} else {
		fmt.Fprintf(e.out, "  %d records found.\n", len(c.PCs))
	}
	fmt.Fprintf(e.out, "%s\n\n", rule)
}

func orNA(s *string) string {
	if s == nil {
		return "N/A"
	}
	return *s
}

func orUnknown(s string) string {
	if s == "" {
		return "?"
	}
	return s
}
