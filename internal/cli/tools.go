package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// toolInfo is one row of the tool listing.
type toolInfo struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List available tools",
	Long:  `List the registered tools together with their descriptions.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listTools(cmd)
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}

func listTools(cmd *cobra.Command) error {
	descriptors := registry.List()

	infos := make([]toolInfo, 0, len(descriptors))
	for _, d := range descriptors {
		infos = append(infos, toolInfo{Name: d.Name, Description: d.Description})
	}

	switch viper.GetString("output") {
	case "json":
		return printJSON(cmd.OutOrStdout(), infos)
	case "yaml":
		return printYAML(cmd.OutOrStdout(), infos)
	default:
		headers := []string{"Name", "Description"}
		rows := make([][]string, len(infos))
		for i, info := range infos {
			rows[i] = []string{info.Name, info.Description}
		}
		printTable(cmd.OutOrStdout(), headers, rows)
	}

	return nil
}
