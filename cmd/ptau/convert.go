package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	ptau "github.com/snarkhq/go-ptau"
	"github.com/snarkhq/go-ptau/setup"
)

func convertCmd() *cli.Command {
	var size uint64

	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert a ptau file to a gnark KZG SRS binary blob",
		ArgsUsage: "<file.ptau> <out.srs>",
		Flags: []cli.Flag{
			&cli.UintFlag{Name: "size", Usage: "number of G1 powers to include (0 = all)", Destination: &size},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			outPath := cmd.Args().Get(1)
			if path == "" || outPath == "" {
				return fmt.Errorf("usage: ptau convert <file.ptau> <out.srs>")
			}

			if size == 0 {
				f, err := ptau.Open(path)
				if err != nil {
					return err
				}
				size = uint64(f.Header.MaxG1Points())
				f.Close()
			}

			slog.Info("converting ptau file", "path", path, "size", size)
			srs, err := setup.SRS(path, size)
			if err != nil {
				return err
			}

			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("error creating output file: %w", err)
			}
			defer out.Close()

			if _, err := srs.WriteTo(out); err != nil {
				return fmt.Errorf("error writing SRS: %w", err)
			}
			slog.Info("wrote SRS", "path", outPath)
			return nil
		},
	}
}
