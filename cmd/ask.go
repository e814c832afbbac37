package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wilbanksalexis/Powering/internal/chat"
)

var askJSON bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a question about data center impacts",
	Long: `Prints the canned impact answer for a question. Mention Virginia, Phoenix
or Chicago, optionally with an environmental (environment, ecological,
climate) or social (social, community, justice) topic.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reply := chat.Answer(strings.Join(args, " "))

		if askJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(reply)
		}

		fmt.Println(reply.Text)
		return nil
	},
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "print the answer and its classification as JSON")
	rootCmd.AddCommand(askCmd)
}
