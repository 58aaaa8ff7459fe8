package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	ptau "github.com/snarkhq/go-ptau"
)

func verifyCmd() *cli.Command {
	var numG1, numG2 int64

	return &cli.Command{
		Name:      "verify",
		Usage:     "Decode a ptau file, checking every point lies on its curve",
		ArgsUsage: "<file.ptau>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "g1", Usage: "number of G1 points to check (0 = all)", Destination: &numG1},
			&cli.IntFlag{Name: "g2", Usage: "number of G2 points to check (0 = all)", Destination: &numG2},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("missing ptau file argument")
			}
			f, err := ptau.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			g1Count := int(numG1)
			if g1Count == 0 {
				g1Count = f.Header.MaxG1Points()
			}
			g2Count := int(numG2)
			if g2Count == 0 {
				g2Count = f.Header.MaxG2Points()
			}

			slog.Info("verifying ptau file", "path", path,
				"power", f.Header.Power, "g1", g1Count, "g2", g2Count)

			if _, err := f.G1Points(g1Count); err != nil {
				return err
			}
			slog.Info("G1 points ok", "count", g1Count)

			if _, err := f.G2Points(g2Count); err != nil {
				return err
			}
			slog.Info("G2 points ok", "count", g2Count)

			fmt.Printf("ok: %d G1 and %d G2 points on curve\n", g1Count, g2Count)
			return nil
		},
	}
}
