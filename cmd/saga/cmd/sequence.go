package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saga-io/saga/pkg/codec"
)

// sequenceCmd represents the sequence command
var sequenceCmd = &cobra.Command{
	Use:   "sequence",
	Short: "Encode and decode an ordered list of uint32 values",
}

var sequenceEncodeCmd = &cobra.Command{
	Use:   "encode <count>",
	Short: "Persist a sequence of consecutive integers",
	Long: `Persist a sequence of consecutive integers starting at 0 to an
order-preserving binary blob file.

Example:
  saga sequence encode 100000`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fs, ok := storeFromContext(cmd)
		if !ok {
			fmt.Printf("Error: store not found in context\n")
			return
		}

		count, err := codec.ParseUint32(args[0])
		if err != nil {
			fmt.Printf("Error parsing count: %v\n", err)
			return
		}

		sequence := make([]uint32, count)
		for i := range sequence {
			sequence[i] = uint32(i)
		}

		file, _ := cmd.Flags().GetString("file")
		if err := fs.PersistSequence(file, sequence); err != nil {
			fmt.Printf("Error persisting sequence: %v\n", err)
			return
		}

		fmt.Printf("Persisted %d values to '%s'\n", count, file)
	},
}

var sequenceDecodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Load a sequence blob and print a summary",
	Run: func(cmd *cobra.Command, args []string) {
		fs, ok := storeFromContext(cmd)
		if !ok {
			fmt.Printf("Error: store not found in context\n")
			return
		}

		file, _ := cmd.Flags().GetString("file")
		sequence, err := fs.LoadSequence(file)
		if err != nil {
			fmt.Printf("Error loading sequence: %v\n", err)
			return
		}

		fmt.Printf("Loaded %d values\n", len(sequence))
		if len(sequence) > 0 {
			fmt.Printf("First: %d, last: %d\n", sequence[0], sequence[len(sequence)-1])
		}
	},
}

func init() {
	rootCmd.AddCommand(sequenceCmd)
	sequenceCmd.AddCommand(sequenceEncodeCmd)
	sequenceCmd.AddCommand(sequenceDecodeCmd)

	for _, c := range []*cobra.Command{sequenceEncodeCmd, sequenceDecodeCmd} {
		c.Flags().String("file", "sequence.bin", "Sequence blob file")
	}
}
