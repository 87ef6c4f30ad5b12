package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	cyan   = color.New(color.FgCyan)
)

// printSuccess reports a completed operation in green.
func printSuccess(format string, a ...any) {
	green.Printf("✓ "+format, a...)
}

// printWarning reports a degraded but non-fatal condition in yellow.
func printWarning(format string, a ...any) {
	yellow.Printf("⚠ "+format, a...)
}

// printNotice reports a server-pushed event in cyan so it stands out
// from command output.
func printNotice(format string, a ...any) {
	cyan.Printf("→ "+format, a...)
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// renderCards prints a card table in workflow order as delivered by the
// server: name, state, description.
func renderCards(cards [][]string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("CARD", "STATE", "DESCRIPTION")
	for _, row := range cards {
		_ = table.Append(row)
	}
	_ = table.Render()
}

// renderPresence prints the peer presence view sorted by username.
func renderPresence(presence map[string]bool) {
	names := make([]string, 0, len(presence))
	for name := range presence {
		names = append(names, name)
	}
	sort.Strings(names)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("USER", "STATUS")
	for _, name := range names {
		status := "offline"
		if presence[name] {
			status = "online"
		}
		_ = table.Append([]string{name, status})
	}
	_ = table.Render()
}
