package app

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/jtd-117/bitbooks/internal/library"
	"github.com/jtd-117/bitbooks/internal/seed"
)

const scriptHelp = `Commands (one per line, fields separated by |):
  add <title>|<author>|<pages>[|<read>]   add a book (read: true/false)
  delete <title>|<author>|<pages>         remove a book
  toggle <title>|<author>|<pages>         flip read status
  sort <added|title|author|pages>         reorder the list
  list [yaml]                             print the list (optionally as YAML)
  help                                    show this help
  quit                                    end the session
`

// runScript executes line-oriented commands against the collection. This is
// the non-interactive surface: rejected adds and missing deletes print a
// notice and the session continues — only a read failure ends it.
func runScript(col *library.Collection, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		verb, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch strings.ToLower(verb) {
		case "add":
			scriptAdd(col, rest, out)
		case "delete", "rm":
			scriptDelete(col, rest, out)
		case "toggle":
			scriptToggle(col, rest, out)
		case "sort":
			scriptSort(col, rest, out)
		case "list", "ls":
			scriptList(col, rest, out)
		case "help":
			fmt.Fprint(out, scriptHelp)
		case "quit", "exit":
			return nil
		default:
			notice(out, "unknown command %q (try help)", verb)
		}
	}
	return sc.Err()
}

func scriptAdd(col *library.Collection, rest string, out io.Writer) {
	in, err := parseAddArgs(rest)
	if err != nil {
		notice(out, "add: %v", err)
		return
	}
	b, added, err := col.Add(in)
	if err != nil {
		notice(out, "add: %v", err)
		return
	}
	if !added {
		notice(out, "already tracking %q by %s (%dp)", in.Title, in.Author, in.Pages)
		return
	}
	fmt.Fprintln(out, color.GreenString("✓"), fmt.Sprintf("added %q by %s", b.Title, b.Author))
}

func scriptDelete(col *library.Collection, rest string, out io.Writer) {
	title, author, pages, err := parseTriple(rest)
	if err != nil {
		notice(out, "delete: %v", err)
		return
	}
	if removed := col.Delete(title, author, pages); removed == 0 {
		notice(out, "no book matching %q by %s (%dp)", title, author, pages)
		return
	}
	fmt.Fprintln(out, color.GreenString("✓"), fmt.Sprintf("deleted %q by %s", title, author))
}

func scriptToggle(col *library.Collection, rest string, out io.Writer) {
	title, author, pages, err := parseTriple(rest)
	if err != nil {
		notice(out, "toggle: %v", err)
		return
	}
	b, found := col.ToggleRead(title, author, pages)
	if !found {
		notice(out, "no book matching %q by %s (%dp)", title, author, pages)
		return
	}
	status := "unread"
	if b.HasRead {
		status = "read"
	}
	fmt.Fprintln(out, color.GreenString("✓"), fmt.Sprintf("%q marked %s", b.Title, status))
}

func scriptSort(col *library.Collection, rest string, out io.Writer) {
	criterion, err := library.ParseCriterion(rest)
	if err != nil {
		notice(out, "sort: %v", err)
		return
	}
	col.SortBy(criterion)
	fmt.Fprintln(out, color.GreenString("✓"), fmt.Sprintf("sorted by %s", criterion))
}

func scriptList(col *library.Collection, format string, out io.Writer) {
	books := col.Books()

	if strings.EqualFold(format, "yaml") {
		data, err := seed.Marshal(seed.FromBooks(books))
		if err != nil {
			notice(out, "list: %v", err)
			return
		}
		fmt.Fprint(out, string(data))
		return
	}

	if len(books) == 0 {
		fmt.Fprintln(out, "no books tracked")
		return
	}

	fmt.Fprintf(out, "%-40s %-24s %6s  %s\n", "TITLE", "AUTHOR", "PAGES", "READ")
	for _, b := range books {
		mark := ""
		if b.HasRead {
			mark = color.GreenString("✓")
		}
		fmt.Fprintf(out, "%-40s %-24s %6d  %s\n", b.Title, b.Author, b.Pages, mark)
	}
	fmt.Fprintf(out, "%d book(s)\n", len(books))
}

// parseAddArgs parses "title|author|pages[|read]".
func parseAddArgs(rest string) (library.Input, error) {
	fields := splitFields(rest)
	if len(fields) < 3 || len(fields) > 4 {
		return library.Input{}, fmt.Errorf("expected <title>|<author>|<pages>[|<read>]")
	}
	pages, err := strconv.Atoi(fields[2])
	if err != nil {
		return library.Input{}, fmt.Errorf("pages %q is not an integer", fields[2])
	}
	in := library.Input{Title: fields[0], Author: fields[1], Pages: pages}
	if len(fields) == 4 {
		read, err := strconv.ParseBool(fields[3])
		if err != nil {
			return library.Input{}, fmt.Errorf("read %q is not a boolean", fields[3])
		}
		in.HasRead = read
	}
	return in, nil
}

// parseTriple parses "title|author|pages".
func parseTriple(rest string) (title, author string, pages int, err error) {
	fields := splitFields(rest)
	if len(fields) != 3 {
		return "", "", 0, fmt.Errorf("expected <title>|<author>|<pages>")
	}
	pages, err = strconv.Atoi(fields[2])
	if err != nil {
		return "", "", 0, fmt.Errorf("pages %q is not an integer", fields[2])
	}
	return fields[0], fields[1], pages, nil
}

func splitFields(rest string) []string {
	parts := strings.Split(rest, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// notice prints a non-fatal yellow notice to the script output.
func notice(out io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(out, color.YellowString("!"), fmt.Sprintf(format, a...))
}
