package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const (
	// BoxWidth is the standard width for display boxes
	BoxWidth = 80

	// labelWidth aligns wallet record fields in a column
	labelWidth = 20
)

// ColorScheme defines a set of colors for consistent UI formatting
type ColorScheme struct {
	Header   *color.Color // For box borders and section headers
	Title    *color.Color // For main titles
	Subtitle *color.Color // For section titles
	Normal   *color.Color // For normal text
	Param    *color.Color // For parameter names
	Label    *color.Color // For wallet record field labels
	Value    *color.Color // For wallet record field values
	Secret   *color.Color // For key material and seed phrases
	Result   *color.Color // For result messages
	Example  *color.Color // For example commands
	Success  *color.Color // For success messages (valid addresses)
	Error    *color.Color // For error messages (invalid addresses)
}

// DefaultColorScheme returns the default color scheme for the application
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Header:   color.New(color.FgBlue, color.Bold),
		Title:    color.New(color.FgHiWhite, color.Bold),
		Subtitle: color.New(color.FgBlue),
		Normal:   color.New(color.FgWhite),
		Param:    color.New(color.FgCyan),
		Label:    color.New(color.FgCyan),
		Value:    color.New(color.FgHiWhite),
		Secret:   color.New(color.FgYellow),
		Result:   color.New(color.FgBlue),
		Example:  color.New(color.FgGreen),
		Success:  color.New(color.FgGreen, color.Bold),
		Error:    color.New(color.FgRed),
	}
}

// PrintHeader prints a formatted header box with the given title
func PrintHeader(cs *ColorScheme, title string) {
	padding := BoxWidth - 4 - len(title) // 4 is for "│  " and " │"
	if padding < 0 {
		padding = 0
	}

	fmt.Println()
	cs.Header.Println("╭─────────────────────────────────────────────────────────────────────────────╮")
	cs.Header.Printf("│  ")
	cs.Title.Print(title)
	cs.Header.Printf("%s│\n", strings.Repeat(" ", padding))
	cs.Header.Println("╰─────────────────────────────────────────────────────────────────────────────╯")
	fmt.Println()
}

// PrintFooter prints a formatted footer box with the given message
func PrintFooter(cs *ColorScheme, message string) {
	// If message is too long, truncate it
	if len(message) > BoxWidth-6 { // Allow 6 chars for "│  " and " │"
		message = message[:BoxWidth-9] + "..."
	}

	padding := BoxWidth - 4 - len(message) // 4 is for "│  " and " │"
	if padding < 0 {
		padding = 0
	}

	fmt.Println()
	cs.Header.Println("╭──────────────────────────────────────────────────────────────────────────────╮")
	cs.Header.Printf("│  ")
	cs.Result.Print(message)
	cs.Header.Printf("%s│\n", strings.Repeat(" ", padding))
	cs.Header.Println("╰──────────────────────────────────────────────────────────────────────────────╯")
	fmt.Println()
}

// PrintOption prints a command line option with description
func PrintOption(cs *ColorScheme, flag, description string) {
	cs.Normal.Print("  ")
	cs.Param.Print(flag)
	cs.Normal.Println(description)
}

// PrintExample prints a usage example
func PrintExample(cs *ColorScheme, example, description string) {
	cs.Example.Printf("  %s", example)
	if description != "" {
		cs.Example.Printf("  # %s", description)
	}
	fmt.Println()
}

// PrintSectionHeader prints a section header
func PrintSectionHeader(cs *ColorScheme, title string) {
	cs.Subtitle.Println(title)
}

// PrintField prints an aligned label/value pair from a wallet record
func PrintField(cs *ColorScheme, label, value string) {
	cs.Label.Printf("  %-*s", labelWidth, label)
	cs.Value.Println(value)
}

// PrintSecretField prints an aligned label/value pair whose value is key
// material the user should treat as sensitive
func PrintSecretField(cs *ColorScheme, label, value string) {
	cs.Label.Printf("  %-*s", labelWidth, label)
	cs.Secret.Println(value)
}

// PrintValidationResult prints the outcome of an address validation check
func PrintValidationResult(cs *ColorScheme, address string, valid bool) {
	cs.Normal.Print("  ")
	cs.Value.Print(address)
	if valid {
		cs.Success.Println("  VALID")
	} else {
		cs.Error.Println("  INVALID")
	}
}
