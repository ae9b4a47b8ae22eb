package options

import (
	"strings"

	"github.com/spf13/cobra"

	"profeia.dev/profeia/pkg/ai"
)

// AssistantOptions
type AssistantOptions struct {
	Params ai.Params
}

func AddPlannerArgs(cmd *cobra.Command, o *AssistantOptions) {
	cmd.Flags().StringVar(&o.Params.PlanType, "type", "",
		"Plan type: Diaria, Semanal, Mensual or Anual.")
	cmd.Flags().StringVar(&o.Params.Duration, "duration", "",
		"Class duration in minutes.")
	cmd.Flags().StringVar(&o.Params.Objectives, "objectives", "",
		"Learning objectives for the plan.")
	cmd.Flags().StringVar(&o.Params.Materials, "materials", "",
		"Materials available in the classroom.")
}

func AddExamArgs(cmd *cobra.Command, o *AssistantOptions) {
	cmd.Flags().StringVar(&o.Params.ExamType, "type", "",
		"Exam type: Opción Múltiple, Desarrollo, Verdadero/Falso or Mixto.")
	cmd.Flags().StringVar(&o.Params.Difficulty, "difficulty", "",
		"Difficulty: Fácil, Medio or Difícil.")
	cmd.Flags().StringVar(&o.Params.NumQuestions, "questions", "",
		"Number of questions.")
	cmd.Flags().StringVar(&o.Params.EstimatedTime, "time", "",
		"Estimated completion time in minutes.")
	cmd.Flags().StringVar(&o.Params.Topics, "topics", "",
		"Topics the exam covers.")
}

func AddCorrectorArgs(cmd *cobra.Command, o *AssistantOptions) {
	cmd.Flags().StringVar(&o.Params.CorrectionCriteria, "criteria", "",
		"Correction criteria to apply.")
	cmd.Flags().StringVar(&o.Params.GradingSystem, "grading", "",
		"Grading system, example: Numérico (1-10).")
	cmd.Flags().StringVar(&o.Params.GradingScale, "scale", "",
		"Grading scale description.")
}

func AddSpeechArgs(cmd *cobra.Command, o *AssistantOptions) {
	cmd.Flags().StringVar(&o.Params.EventType, "event", "",
		"School occasion, one of: "+strings.Join(ai.SpeechEvents, "; ")+".")
	cmd.Flags().StringVar(&o.Params.Audience, "audience", "",
		"Audience, one of: "+strings.Join(ai.SpeechAudiences, ", ")+".")
	cmd.Flags().StringVar(&o.Params.SpeechDuration, "duration", "",
		"Speech duration in minutes.")
	cmd.Flags().StringVar(&o.Params.SpeechTone, "tone", "",
		"Tone: Formal, Emotivo, Inspirador or Cercano.")
}
