package cli

import "github.com/urfave/cli/v3"

// joinFlags flattens the per-concern flag groups into the single slice
// a command definition takes
func joinFlags(groups ...[]cli.Flag) []cli.Flag {
	var joined []cli.Flag
	for _, g := range groups {
		joined = append(joined, g...)
	}
	return joined
}
