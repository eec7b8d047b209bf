package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saga-io/saga/pkg/codec"
)

// recordCmd represents the record command
var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Convert an institution record between JSON and CBOR",
}

var recordEncodeCmd = &cobra.Command{
	Use:   "encode <json-file>",
	Short: "Parse an institution JSON file and persist it as CBOR",
	Long: `Parse an institution record from a JSON file and persist it to
a compact CBOR file under the data directory.

Example:
  saga record encode uchicago.json`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fs, ok := storeFromContext(cmd)
		if !ok {
			fmt.Printf("Error: store not found in context\n")
			return
		}

		text, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Printf("Error reading JSON file: %v\n", err)
			return
		}

		record, err := codec.UnmarshalInstitutionJSON(string(text))
		if err != nil {
			fmt.Printf("Error parsing record: %v\n", err)
			return
		}

		file, _ := cmd.Flags().GetString("file")
		if err := fs.WriteInstitutionCBOR(file, record); err != nil {
			fmt.Printf("Error persisting record: %v\n", err)
			return
		}

		fmt.Printf("Persisted '%s' to '%s'\n", record.Name, file)
	},
}

var recordDecodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Load a CBOR record file and print it as JSON",
	Run: func(cmd *cobra.Command, args []string) {
		fs, ok := storeFromContext(cmd)
		if !ok {
			fmt.Printf("Error: store not found in context\n")
			return
		}

		file, _ := cmd.Flags().GetString("file")
		record, err := fs.ReadInstitutionCBOR(file)
		if err != nil {
			fmt.Printf("Error loading record: %v\n", err)
			return
		}

		text, err := codec.MarshalInstitutionJSON(record)
		if err != nil {
			fmt.Printf("Error rendering record: %v\n", err)
			return
		}

		fmt.Printf("%s\n", text)
	},
}

func init() {
	rootCmd.AddCommand(recordCmd)
	recordCmd.AddCommand(recordEncodeCmd)
	recordCmd.AddCommand(recordDecodeCmd)

	for _, c := range []*cobra.Command{recordEncodeCmd, recordDecodeCmd} {
		c.Flags().String("file", "institution.cbor", "CBOR record file")
	}
}
