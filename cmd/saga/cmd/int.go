package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saga-io/saga/pkg/codec"
)

// intCmd represents the int command
var intCmd = &cobra.Command{
	Use:   "int",
	Short: "Encode and decode a uint32 value",
}

var intEncodeCmd = &cobra.Command{
	Use:   "encode <value>",
	Short: "Write a uint32 as decimal text and fixed big-endian bytes",
	Long: `Write a uint32 to two files under the data directory: a UTF-8
decimal text file and a fixed 4-byte big-endian file.

Example:
  saga int encode 33`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fs, ok := storeFromContext(cmd)
		if !ok {
			fmt.Printf("Error: store not found in context\n")
			return
		}

		value, err := codec.ParseUint32(args[0])
		if err != nil {
			fmt.Printf("Error parsing value: %v\n", err)
			return
		}

		textFile, _ := cmd.Flags().GetString("text-file")
		bytesFile, _ := cmd.Flags().GetString("bytes-file")

		if err := fs.WriteUint32String(textFile, value); err != nil {
			fmt.Printf("Error writing text file: %v\n", err)
			return
		}
		if err := fs.WriteUint32Bytes(bytesFile, value); err != nil {
			fmt.Printf("Error writing bytes file: %v\n", err)
			return
		}

		fmt.Printf("Wrote %d to '%s' and '%s'\n", value, textFile, bytesFile)
	},
}

var intDecodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Read a uint32 back from its text and bytes files",
	Run: func(cmd *cobra.Command, args []string) {
		fs, ok := storeFromContext(cmd)
		if !ok {
			fmt.Printf("Error: store not found in context\n")
			return
		}

		textFile, _ := cmd.Flags().GetString("text-file")
		bytesFile, _ := cmd.Flags().GetString("bytes-file")

		fromText, err := fs.ReadUint32String(textFile)
		if err != nil {
			fmt.Printf("Error reading text file: %v\n", err)
			return
		}
		fromBytes, err := fs.ReadUint32Bytes(bytesFile)
		if err != nil {
			fmt.Printf("Error reading bytes file: %v\n", err)
			return
		}

		fmt.Printf("From text: %d\n", fromText)
		fmt.Printf("From bytes: %d\n", fromBytes)
	},
}

func init() {
	rootCmd.AddCommand(intCmd)
	intCmd.AddCommand(intEncodeCmd)
	intCmd.AddCommand(intDecodeCmd)

	for _, c := range []*cobra.Command{intEncodeCmd, intDecodeCmd} {
		c.Flags().String("text-file", "value.txt", "Decimal text file")
		c.Flags().String("bytes-file", "value.bytes", "Fixed 4-byte file")
	}
}
