package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "qosf",
	Short: "Quantum circuit editor and transpiler",
	Long: `qosf is a terminal quantum circuit editor with a transpiler that
rewrites circuits into the native gate set {RX, RZ, CZ, MEASURE} and merges
adjacent same-axis rotations.

Run without arguments for the interactive editor, or use the compile
subcommand to transpile a QASM file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// the TUI owns stderr, so the console logger has to go
		DisableLogging()
		p := tea.NewProgram(initialModel(), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

var compileCmd = &cobra.Command{
	Use:   "compile <file.qasm>",
	Short: "Transpile a QASM circuit to the native gate set",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompile,
}

var (
	flagNoOpt   bool
	flagVerify  bool
	flagOutput  string
	flagVerbose bool
)

func init() {
	compileCmd.Flags().BoolVar(&flagNoOpt, "no-opt", false, "decompose only, skip rotation merging")
	compileCmd.Flags().BoolVar(&flagVerify, "verify", false, "check global-phase unitary equivalence of input and output")
	compileCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write the result to a file instead of stdout")
	compileCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		SetLogLevel(zerolog.DebugLevel)
	}
	log := Logger()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	circuit, err := ParseQASM(string(data))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}
	log.Info().
		Int("qubits", circuit.NumQubits).
		Int("ops", len(circuit.Ops)).
		Msg("parsed circuit")

	result, err := Decompose(circuit)
	if err != nil {
		return err
	}
	if !flagNoOpt {
		result, err = Optimize(result)
		if err != nil {
			return err
		}
	}
	log.Info().
		Int("source_ops", len(circuit.Ops)).
		Int("result_ops", len(result.Ops)).
		Msg("transpiled circuit")

	if flagVerify {
		if circuit.NumQubits > maxVerifyQubits {
			log.Warn().
				Int("qubits", circuit.NumQubits).
				Int("limit", maxVerifyQubits).
				Msg("register too large for unitary verification, skipping")
		} else if !GlobalPhaseEquivalent(UnitaryOf(circuit), UnitaryOf(result)) {
			return fmt.Errorf("verification failed: output is not phase-equivalent to input")
		} else {
			log.Info().Msg("verified: output is phase-equivalent to input")
		}
	}

	out := ToQASM(result)
	if flagOutput != "" {
		if err := os.WriteFile(flagOutput, []byte(out), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", flagOutput, err)
		}
		log.Info().Str("path", flagOutput).Msg("wrote output")
		return nil
	}
	fmt.Print(out)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
