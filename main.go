// org-stats is a CLI tool that counts repositories and total stars for
// GitHub organizations and user accounts.
package main

import (
	"github.com/orgstats/org-stats/cmd"
)

func main() {
	cmd.Execute()
}
