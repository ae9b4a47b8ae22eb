package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"profeia.dev/profeia/pkg/ai"
	"profeia.dev/profeia/pkg/commands/options"
	"profeia.dev/profeia/pkg/runner/chat"
	"profeia.dev/profeia/pkg/store"
)

func addChat(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "ask the teaching assistant",
		Example: `
profeia chat plan fracciones equivalentes con material concreto
profeia chat exam --topics="la célula" --questions=5
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addChatFeature(cmd, "plan", "generate a class plan", ai.FeaturePlanner, options.AddPlannerArgs)
	addChatFeature(cmd, "exam", "generate an exam", ai.FeatureExamGenerator, options.AddExamArgs)
	addChatFeature(cmd, "correct", "correct a student exam", ai.FeatureExamCorrector, options.AddCorrectorArgs)
	addChatFeature(cmd, "speech", "write a speech for a school occasion", ai.FeatureSpeech, options.AddSpeechArgs)

	topLevel.AddCommand(cmd)
}

func addChatFeature(topLevel *cobra.Command, use, short string, feature ai.Feature, addArgs func(*cobra.Command, *options.AssistantOptions)) {
	ao := &options.AssistantOptions{}
	po := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   use + " <prompt>",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := chat.Chat{
				Persistence: p,
				Feature:     feature,
				Params:      ao.Params,
				Prompt:      strings.Join(args, " "),
			}
			err = s.Do(context.Background())
			return po.HandleError(err)
		},
	}

	addArgs(cmd, ao)
	options.AddOutputArg(cmd, po)

	topLevel.AddCommand(cmd)
}
