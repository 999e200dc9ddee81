package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/san-kum/palin/internal/config"
	"github.com/san-kum/palin/internal/palindrome"
	"github.com/san-kum/palin/internal/viz"
)

var (
	configFile string
	plot       bool
)

// main is the entry point for the palin CLI; it registers commands and flags
// and launches the interactive checker when no subcommand is provided.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "palin",
		Short: "integer palindrome checker",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to interactive mode when no command given
			return viz.RunInteractive()
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check [number]...",
		Short: "check whether numbers read the same forward and backward",
		RunE:  runCheck,
	}
	checkCmd.Flags().BoolVar(&plot, "plot", false, "plot the digit sequence")
	checkCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	reverseCmd := &cobra.Command{
		Use:   "reverse [number]",
		Short: "reverse the decimal digits of a number",
		Args:  cobra.ExactArgs(1),
		RunE:  runReverse,
	}

	batchCmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "check every value listed in a yaml config",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	initCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "write a starter config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	tutorialCmd := &cobra.Command{
		Use:   "tutorial",
		Short: "where the slice tutorial lives",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("the dynamic-array (slice) tutorial is in docs/slices.md")
		},
	}

	rootCmd.AddCommand(checkCmd, reverseCmd, batchCmd, initCmd, tutorialCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	values := make([]int64, 0, len(args))
	for _, arg := range args {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("not an integer: %s", arg)
		}
		values = append(values, n)
	}

	// Config supplies values only when none were given; CLI flags override config.
	if len(values) == 0 && configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		values = cfg.Values
		if !cmd.Flags().Changed("plot") {
			plot = cfg.Plot
		}
	}

	if len(values) == 0 {
		return fmt.Errorf("nothing to check (pass numbers or --config)")
	}

	for _, n := range values {
		fmt.Println(viz.Verdict(n, palindrome.Check(n)))
		if plot {
			fmt.Println(viz.DigitPlot(n))
			fmt.Println()
		}
	}

	return nil
}

func runReverse(cmd *cobra.Command, args []string) error {
	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("not an integer: %s", args[0])
	}

	rev, err := palindrome.Reverse(n)
	if err != nil {
		return err
	}

	fmt.Printf("%d reversed is %d\n", n, rev)
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if len(cfg.Values) == 0 {
		fmt.Println("no values in config")
		return nil
	}

	found := 0
	for _, n := range cfg.Values {
		ok := palindrome.Check(n)
		if ok {
			found++
		}
		fmt.Println(viz.Verdict(n, ok))
		if cfg.Plot {
			fmt.Println(viz.DigitPlot(n))
			fmt.Println()
		}
	}

	fmt.Printf("\n%d of %d values are palindromes\n", found, len(cfg.Values))
	return nil
}
