package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
)

// confirm asks a y/N question on the terminal. Anything but an explicit yes
// is a decline, including a non-interactive stdin.
func confirm(prompt string) bool {
	if !term.IsTerminal(os.Stdin.Fd()) {
		fmt.Println("Non-interactive session; assuming no.")
		return false
	}
	fmt.Printf("%s [y/N]: ", prompt)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
