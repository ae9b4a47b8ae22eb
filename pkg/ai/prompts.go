package ai

import (
	"fmt"
	"strings"

	"profeia.dev/profeia/pkg/profile"
)

// Feature selects which assistant persona a chat session uses.
type Feature string

const (
	FeaturePlanner       Feature = "planner"
	FeatureExamGenerator Feature = "exam_generator"
	FeatureExamCorrector Feature = "exam_corrector"
	FeatureSpeech        Feature = "speech_generator"
)

// SpeechEvents lists the school occasions the speech generator knows.
var SpeechEvents = []string{
	"Acto de Inicio de Ciclo Lectivo",
	"Día de la Bandera",
	"Día de la Independencia",
	"Paso a la Inmortalidad del Gral. San Martín",
	"Día del Maestro",
	"Día de la Diversidad Cultural",
	"Acto de Fin de Ciclo Lectivo",
}

// SpeechAudiences lists the audiences a speech can address.
var SpeechAudiences = []string{"Directivos", "Docentes", "Alumnos", "Padres", "Comunidad Educativa"}

// Params carries the per-feature knobs a teacher tunes before a
// session starts. Zero values fall back to sensible defaults.
type Params struct {
	// Planner
	PlanType  string
	Duration  string
	Objectives string
	Materials string

	// Exam generator
	ExamType      string
	Difficulty    string
	NumQuestions  string
	EstimatedTime string
	Topics        string

	// Exam corrector
	CorrectionCriteria string
	GradingSystem      string
	GradingScale       string

	// Speech generator
	EventType      string
	Audience       string
	SpeechDuration string
	SpeechTone     string
}

func (p *Params) defaults() {
	fallback := func(field *string, value string) {
		if strings.TrimSpace(*field) == "" {
			*field = value
		}
	}
	fallback(&p.PlanType, "Diaria")
	fallback(&p.Duration, "40")
	fallback(&p.Objectives, "no especificados")
	fallback(&p.Materials, "no especificados")
	fallback(&p.ExamType, "Opción Múltiple")
	fallback(&p.Difficulty, "Medio")
	fallback(&p.NumQuestions, "10")
	fallback(&p.EstimatedTime, "60")
	fallback(&p.Topics, "no especificados")
	fallback(&p.CorrectionCriteria, "no especificados")
	fallback(&p.GradingSystem, "Numérico (1-10)")
	fallback(&p.GradingScale, "10-9: Excelente, 8-7: Bueno, 6: Aprobado, 5-1: Desaprobado")
	fallback(&p.EventType, SpeechEvents[0])
	fallback(&p.Audience, SpeechAudiences[0])
	fallback(&p.SpeechDuration, "5")
	fallback(&p.SpeechTone, "Formal")
}

// SystemInstruction builds the persona prompt for a feature, grounded
// in the teacher's profile and the provincial curriculum sources.
func SystemInstruction(feature Feature, teacher *profile.Config, params Params) string {
	params.defaults()

	var b strings.Builder
	fmt.Fprintf(&b,
		`Eres "ProfeIA", un asistente experto para docentes de %s en Argentina. Ayudas a %s a crear materiales para la materia de %s, específicamente para %s. Sé profesional, creativo y pedagógicamente sólido. CRÍTICO: Debes basar todas tus respuestas y la creación de material ESTRICTAMENTE en los lineamientos y currículo educativo vigentes para la provincia de San Luis, Argentina.`,
		teacher.Level, teacher.Name, teacher.Subject, teacher.Grade)

	switch feature {
	case FeaturePlanner:
		fmt.Fprintf(&b,
			` Te especializas en crear planificaciones de clase. La planificación es de tipo "%s", para una clase de %s minutos. Los objetivos son: "%s". Los materiales disponibles son: "%s".`,
			params.PlanType, params.Duration, params.Objectives, params.Materials)
	case FeatureExamGenerator:
		fmt.Fprintf(&b,
			` Te especializas en diseñar exámenes. El examen es de tipo "%s", con un nivel de dificultad "%s". Incluirá %s preguntas y un tiempo estimado de %s minutos. Los temas a evaluar son: "%s".`,
			params.ExamType, params.Difficulty, params.NumQuestions, params.EstimatedTime, params.Topics)
	case FeatureExamCorrector:
		fmt.Fprintf(&b,
			` Te especializas en corregir exámenes. La corrección debe ser detallada y basarse en los siguientes parámetros: CRITERIOS: "%s". SISTEMA DE CALIFICACIÓN: "%s". ESCALA DE CALIFICACIÓN: "%s". Proporciona una devolución detallada, pregunta por pregunta, y asigna una calificación final.`,
			params.CorrectionCriteria, params.GradingSystem, params.GradingScale)
	case FeatureSpeech:
		fmt.Fprintf(&b,
			` Te especializas en redactar discursos para actos escolares. El discurso es para el evento "%s", está dirigido a %s, debe durar aproximadamente %s minutos y tener un tono %s.`,
			params.EventType, params.Audience, params.SpeechDuration, params.SpeechTone)
	}
	return b.String()
}

// Greeting returns the canned opener printed before the first prompt.
func Greeting(feature Feature) string {
	switch feature {
	case FeaturePlanner:
		return "Listo para planificar. Describe el tema, las actividades, y cualquier otro detalle para tu planificación de clase."
	case FeatureExamGenerator:
		return "Listo para crear el examen. Detalla cualquier otra indicación o formato específico que necesites."
	case FeatureExamCorrector:
		return "Listo para corregir. Proporciona el examen del alumno y las respuestas correctas si es necesario."
	case FeatureSpeech:
		return "Listo para redactar el discurso. ¿Cuáles son los puntos clave o el mensaje que te gustaría transmitir?"
	}
	return ""
}
