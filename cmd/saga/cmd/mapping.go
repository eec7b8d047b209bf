package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// mappingCmd represents the mapping command
var mappingCmd = &cobra.Command{
	Use:   "mapping",
	Short: "Encode and decode a string-to-int32 mapping",
}

var mappingEncodeCmd = &cobra.Command{
	Use:   "encode <key=value>...",
	Short: "Persist a mapping as a framed binary blob",
	Long: `Persist a string-to-int32 mapping to a self-describing binary
blob file.

Example:
  saga mapping encode Mercury=4 Venus=7 Earth=0 Mars=5`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fs, ok := storeFromContext(cmd)
		if !ok {
			fmt.Printf("Error: store not found in context\n")
			return
		}

		mapping := make(map[string]int32, len(args))
		for _, arg := range args {
			key, raw, found := strings.Cut(arg, "=")
			if !found {
				fmt.Printf("Error: %q is not of the form key=value\n", arg)
				return
			}
			value, err := strconv.ParseInt(raw, 10, 32)
			if err != nil {
				fmt.Printf("Error parsing value for key %q: %v\n", key, err)
				return
			}
			mapping[key] = int32(value)
		}

		file, _ := cmd.Flags().GetString("file")
		if err := fs.PersistMapping(file, mapping); err != nil {
			fmt.Printf("Error persisting mapping: %v\n", err)
			return
		}

		fmt.Printf("Persisted %d entries to '%s'\n", len(mapping), file)
	},
}

var mappingDecodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Load a mapping blob and print its entries",
	Run: func(cmd *cobra.Command, args []string) {
		fs, ok := storeFromContext(cmd)
		if !ok {
			fmt.Printf("Error: store not found in context\n")
			return
		}

		file, _ := cmd.Flags().GetString("file")
		mapping, err := fs.LoadMapping(file)
		if err != nil {
			fmt.Printf("Error loading mapping: %v\n", err)
			return
		}

		keys := make([]string, 0, len(mapping))
		for key := range mapping {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		fmt.Printf("Loaded %d entries\n", len(mapping))
		for _, key := range keys {
			fmt.Printf("%s: %d\n", key, mapping[key])
		}
	},
}

func init() {
	rootCmd.AddCommand(mappingCmd)
	mappingCmd.AddCommand(mappingEncodeCmd)
	mappingCmd.AddCommand(mappingDecodeCmd)

	for _, c := range []*cobra.Command{mappingEncodeCmd, mappingDecodeCmd} {
		c.Flags().String("file", "mapping.bin", "Mapping blob file")
	}
}
