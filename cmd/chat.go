package cmd

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/wilbanksalexis/Powering/internal/chat"
)

const (
	choiceType = "Type my own question"
	choiceQuit = "Quit"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat about data center impacts in the terminal",
	Long:  `Starts an interactive chat. Pick one of the example questions or type your own; answers arrive after the configured delay.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		transcript := chat.NewTranscript(cfg.Chat.Delay, nil)
		transcript.OnAppend(printMessage)
		composer := chat.NewComposer(transcript)

		items := append(append([]string{}, chat.ExamplePrompts...), choiceType, choiceQuit)
		for {
			sel := promptui.Select{
				Label: "Ask about data center impacts",
				Items: items,
				Size:  len(items),
			}
			idx, choice, err := sel.Run()
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil
			}
			exitOnError(err)

			switch {
			case choice == choiceQuit:
				return nil
			case choice == choiceType:
				prompt := promptui.Prompt{Label: "Question"}
				input, err := prompt.Run()
				if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
					return nil
				}
				exitOnError(err)
				composer.Input = input
			default:
				exitOnError(composer.SelectExample(idx))
			}

			if composer.Submit() {
				transcript.Wait()
			}
		}
	},
}

func printMessage(m chat.Message) {
	switch m.Sender {
	case chat.SenderUser:
		fmt.Printf("\nYou: %s\n", m.Text)
	default:
		fmt.Printf("\n%s\n\n", m.Text)
	}
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
