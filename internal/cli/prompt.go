package cli

import (
	"bufio"
	"fmt"
	"strings"
)

// promptLine prints a prompt and reads one trimmed line of input
func (a *App) promptLine(prompt string) (string, error) {
	fmt.Fprint(a.stdout, prompt)

	reader := bufio.NewReader(a.stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a yes/no question and returns true only on an explicit yes
func (a *App) confirm(question string) bool {
	answer, err := a.promptLine(question + " [y/N]: ")
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	return false
}
