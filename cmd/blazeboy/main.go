package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mikky-j/blazeboy/pkg/cart"
	"github.com/mikky-j/blazeboy/pkg/cpu"
	"github.com/mikky-j/blazeboy/pkg/mem"
	"github.com/mikky-j/blazeboy/pkg/reg"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "blazeboy",
		Short: "Blazeboy — a handheld-console CPU core and bank-switched memory bus",
	}

	var steps int
	var verbose bool
	var jsonOut bool

	runCmd := &cobra.Command{
		Use:   "run [rom]",
		Short: "Load a ROM and step the CPU a fixed number of instructions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading rom: %w", err)
			}

			bus, err := mem.NewFromROM(rom)
			if err != nil {
				return fmt.Errorf("loading cartridge: %w", err)
			}

			c := cpu.New(bus)
			c.Reg.PC = 0x0100 // cartridge entry point, past the boot ROM

			var totalCycles, ran int
			for i := 0; i < steps; i++ {
				pc := c.Reg.PC
				cycles := c.Step()
				totalCycles += cycles
				ran++
				if verbose {
					fmt.Printf("%04d  PC=0x%04X  cycles=%-3d  A=%02X F=%02X BC=%04X DE=%04X HL=%04X SP=%04X\n",
						i, pc, cycles, c.Reg.A, c.Reg.F,
						c.Reg.Get16(reg.BC), c.Reg.Get16(reg.DE), c.Reg.Get16(reg.HL), c.Reg.SP)
				}
				if c.Stopped {
					fmt.Println("CPU stopped")
					break
				}
			}

			fmt.Printf("Ran %d steps, %d T-cycles\n", ran, totalCycles)
			return nil
		},
	}
	runCmd.Flags().IntVar(&steps, "steps", 1000, "Number of instructions to execute")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print register state after every step")

	inspectCmd := &cobra.Command{
		Use:   "inspect [rom]",
		Short: "Parse and print a cartridge header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading rom: %w", err)
			}

			h, err := cart.ParseHeader(rom)
			if err != nil {
				return fmt.Errorf("parsing header: %w", err)
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(h)
			}

			fmt.Printf("Title:     %s\n", h.Title)
			fmt.Printf("Licensee:  %s\n", h.Licensee)
			fmt.Printf("ROM size:  %d bytes\n", h.ROMSize)
			fmt.Printf("RAM size:  %d bytes\n", h.RAMSize)
			fmt.Printf("SGB:       %v\n", h.SGB)
			fmt.Printf("Japanese:  %v\n", h.Japanese)
			fmt.Printf("Version:   %d\n", h.Version)
			fmt.Printf("Checksum:  0x%04X\n", h.GlobalChecksum)
			return nil
		},
	}
	inspectCmd.Flags().BoolVar(&jsonOut, "json", false, "Print header as JSON")

	rootCmd.AddCommand(runCmd, inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
