package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"aoe/internal/sounds"
)

func newSoundsCommand(ctx *commandContext) *cobra.Command {
	soundsCmd := &cobra.Command{
		Use:   "sounds",
		Short: "Manage session sound effects",
	}

	soundsCmd.AddCommand(newSoundsInstallCommand(ctx))
	soundsCmd.AddCommand(newSoundsListCommand(ctx))
	soundsCmd.AddCommand(newSoundsTestCommand(ctx))

	return soundsCmd
}

func newSoundsInstallCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install bundled sound effects",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := ctx.library()
			if err != nil {
				return err
			}

			result, err := sounds.NewInstaller(lib.Dir()).Install(force)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Installed bundled CC0 sounds to:")
			fmt.Fprintf(out, "  %s\n\n", result.Dir)
			printInstallGroup(out, "Installed", result.Installed)
			printInstallGroup(out, "Already up to date", result.UpToDate)
			printInstallGroup(out, "Preserved (user-modified, use --force to replace)", result.Preserved)

			fmt.Fprintf(out, "\nSounds by %s, %s (%s)\n", sounds.Attribution, sounds.License, sounds.SourceURL)
			fmt.Fprintln(out, "\nNext steps:")
			fmt.Fprintln(out, "  1. Run 'aoe sounds test session_start' to check playback")
			fmt.Fprintln(out, "  2. Replace any file in the directory above with your own .ogg or .wav")
			fmt.Fprintln(out, "  3. Reassign states via [sounds.events] in the config file")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Replace user-modified files with the bundled versions")
	return cmd
}

func printInstallGroup(out io.Writer, label string, names []string) {
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(out, "%s (%d):\n", label, len(names))
	for _, name := range names {
		fmt.Fprintf(out, "  - %s\n", name)
	}
}

type soundListEntry struct {
	Name        string `json:"name"`
	File        string `json:"file"`
	State       string `json:"state,omitempty"`
	Source      string `json:"source"`
	Description string `json:"description,omitempty"`
}

func newSoundsListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List available sounds",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := ctx.library()
			if err != nil {
				return err
			}
			entries, err := lib.List()
			if err != nil {
				return err
			}

			rows := make([]soundListEntry, 0, len(entries))
			for _, entry := range entries {
				row := soundListEntry{
					Name:        entry.Name,
					File:        entry.File,
					Source:      soundSource(entry),
					Description: entry.Description,
				}
				if entry.State != "" {
					row.State = entry.State.DisplayName()
				}
				rows = append(rows, row)
			}

			if jsonOutput {
				return writeJSON(cmd, rows)
			}

			out := cmd.OutOrStdout()
			if stdoutIsTerminal() {
				headers := []string{"NAME", "FILE", "STATE", "SOURCE", "DESCRIPTION"}
				tableRows := make([][]string, 0, len(rows))
				for _, row := range rows {
					tableRows = append(tableRows, []string{row.Name, row.File, row.State, row.Source, row.Description})
				}
				fmt.Fprintln(out, renderTable(headers, tableRows))
			} else {
				for _, row := range rows {
					fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", row.Name, row.File, row.State, row.Source)
				}
			}

			fmt.Fprintf(out, "\nTotal: %d sounds\n", len(rows))
			fmt.Fprintf(out, "Location: %s\n", lib.Dir())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}

func soundSource(entry sounds.Entry) string {
	switch {
	case entry.UserFile && entry.Bundled:
		return "user (overrides bundled)"
	case entry.UserFile:
		return "user"
	default:
		return "bundled"
	}
}

func newSoundsTestCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "test <name>",
		Short: "Test a sound by playing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			player, err := ctx.player()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := player.PlayFile(cmd.Context(), name); err != nil {
				lib, libErr := ctx.library()
				if libErr == nil {
					if entries, listErr := lib.List(); listErr == nil {
						names := make([]string, 0, len(entries))
						for _, entry := range entries {
							names = append(names, entry.Name)
						}
						fmt.Fprintf(out, "Available sounds: %s\n", strings.Join(names, ", "))
					}
				}
				return err
			}

			fmt.Fprintf(out, "Played %q (if you heard nothing, check your audio settings)\n", name)
			return nil
		},
	}
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
