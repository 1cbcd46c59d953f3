// Command pairscore scores every pair of aligned sequences in a FASTA file.
//
// Usage:
//
//	pairscore score <fasta> [params.txt] [output] [flags]
//
// Commands:
//
//	score       Score all sequence pairs
//	info        Show sequence file information
//	params      Show the effective scoring parameters
//	version     Show version information
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
