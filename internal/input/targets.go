// Package input resolves the list of query targets from command-line
// arguments or from a tab-delimited file.
package input

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/orgstats/org-stats/internal/domain"
)

// FromArgs turns positional account names into targets. The display label of
// each target is the account name itself.
func FromArgs(args []string) []domain.Target {
	targets := make([]domain.Target, 0, len(args))
	for _, account := range args {
		targets = append(targets, domain.Target{Account: account, Label: account})
	}
	return targets
}

// FromFile reads targets from a tab-delimited file, one per line:
// account name, then an optional display label. Lines without a tab use the
// account name as the label. Blank lines are skipped.
func FromFile(path string) ([]domain.Target, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open targets file: %w", err)
	}
	defer file.Close()

	var targets []domain.Target
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		columns := strings.Split(line, "\t")
		target := domain.Target{Account: columns[0], Label: columns[0]}
		if len(columns) >= 2 {
			target.Label = columns[1]
		}
		targets = append(targets, target)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read targets file: %w", err)
	}
	return targets, nil
}
