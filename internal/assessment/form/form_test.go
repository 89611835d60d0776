package form

import (
	"reflect"
	"testing"
)

func TestValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"correo@empresa.com", true},
		{"a@b.co", true},
		{"nombre.apellido@sub.dominio.com", true},
		{"", false},
		{"sin-arroba.com", false},
		{"@empresa.com", false},
		{"correo@", false},
		{"correo@empresa", false},
		{"correo@.com", false},
		{"correo@empresa.", false},
		{"con espacio@empresa.com", false},
		{"dos@@empresa.com", false},
	}
	for _, tc := range cases {
		if got := validEmail(tc.email); got != tc.want {
			t.Errorf("validEmail(%q) = %t, want %t", tc.email, got, tc.want)
		}
	}
}

func TestQuestionValid(t *testing.T) {
	text, _ := QuestionByID(QuestionEmpresa)
	if text.Valid(Value{Text: "   "}) {
		t.Error("whitespace-only text should be invalid")
	}
	if !text.Valid(Value{Text: "Acme"}) {
		t.Error("non-empty text should be valid")
	}

	single, _ := QuestionByID(QuestionSector)
	if single.Valid(Value{}) {
		t.Error("empty single-select should be invalid")
	}
	if !single.Valid(Value{Text: "Salud"}) {
		t.Error("chosen single-select should be valid")
	}

	multi, _ := QuestionByID(QuestionTecnologias)
	if multi.Valid(Value{}) {
		t.Error("empty multi-select should be invalid")
	}
	if !multi.Valid(Value{Options: []string{"Teletrabajo"}}) {
		t.Error("non-empty multi-select should be valid")
	}
}

func TestSessionStartsAtFirstQuestion(t *testing.T) {
	s := NewSession()
	if s.Step() != 0 {
		t.Fatalf("Step() = %d, want 0", s.Step())
	}
	if s.Question().ID != QuestionEmpresa {
		t.Fatalf("Question().ID = %q, want %q", s.Question().ID, QuestionEmpresa)
	}
	if s.Progress() != 0 {
		t.Fatalf("Progress() = %d, want 0", s.Progress())
	}
	if s.Completed() {
		t.Fatal("new session should not be completed")
	}
}

func TestNextBlockedOnInvalidAnswer(t *testing.T) {
	s := NewSession()
	if got := s.Next(); got != NextBlocked {
		t.Fatalf("Next() = %v, want NextBlocked", got)
	}
	if s.Step() != 0 {
		t.Fatalf("Step() = %d, want 0 after blocked advance", s.Step())
	}
	if !s.Touched(QuestionEmpresa) || !s.Invalid(QuestionEmpresa) {
		t.Fatal("blocked advance should mark the question touched and invalid")
	}
}

func TestNextAdvancesOnValidAnswer(t *testing.T) {
	s := NewSession()
	s.SetValue(QuestionEmpresa, Value{Text: "Acme"})
	if got := s.Next(); got != NextAdvanced {
		t.Fatalf("Next() = %v, want NextAdvanced", got)
	}
	if s.Step() != 1 {
		t.Fatalf("Step() = %d, want 1", s.Step())
	}
	if s.Invalid(QuestionEmpresa) {
		t.Fatal("valid answer should clear the error flag")
	}
}

func TestSetValueIgnoresOtherQuestions(t *testing.T) {
	s := NewSession()
	s.SetValue(QuestionSector, Value{Text: "Salud"})
	if s.Answers().Sector != "" {
		t.Fatal("answer for a non-current question should be ignored")
	}
	if s.Touched(QuestionSector) {
		t.Fatal("non-current question should stay untouched")
	}
}

func TestPreviousKeepsAnswers(t *testing.T) {
	s := completeUpTo(t, QuestionSector)
	s.SetValue(QuestionSector, Value{Text: "Finanzas"})
	s.Previous()
	if s.Question().ID != QuestionEmail {
		t.Fatalf("Question().ID = %q, want %q", s.Question().ID, QuestionEmail)
	}
	if got := s.Answers().Sector; got != "Finanzas" {
		t.Fatalf("Sector = %q, want preserved answer", got)
	}
}

func TestPreviousAtFirstStepIsNoop(t *testing.T) {
	s := NewSession()
	s.Previous()
	if s.Step() != 0 {
		t.Fatalf("Step() = %d, want 0", s.Step())
	}
}

func TestToggleAddsAndRemoves(t *testing.T) {
	s := completeUpTo(t, QuestionTecnologias)

	s.Toggle(QuestionTecnologias, "Teletrabajo", true)
	if got := s.Answers().Tecnologias; !reflect.DeepEqual(got, []string{"Teletrabajo"}) {
		t.Fatalf("Tecnologias = %v, want [Teletrabajo]", got)
	}

	s.Toggle(QuestionTecnologias, "Página web", true)
	if got := s.Answers().Tecnologias; !reflect.DeepEqual(got, []string{"Teletrabajo", "Página web"}) {
		t.Fatalf("Tecnologias = %v after second toggle", got)
	}

	s.Toggle(QuestionTecnologias, "Teletrabajo", false)
	if got := s.Answers().Tecnologias; !reflect.DeepEqual(got, []string{"Página web"}) {
		t.Fatalf("Tecnologias = %v, want [Página web] after removal", got)
	}
}

func TestToggleIsIdempotent(t *testing.T) {
	s := completeUpTo(t, QuestionTecnologias)

	s.Toggle(QuestionTecnologias, "Teletrabajo", true)
	s.Toggle(QuestionTecnologias, "Teletrabajo", true)
	if got := s.Answers().Tecnologias; !reflect.DeepEqual(got, []string{"Teletrabajo"}) {
		t.Fatalf("after double add Tecnologias = %v, want [Teletrabajo]", got)
	}

	s.Toggle(QuestionTecnologias, "Teletrabajo", false)
	s.Toggle(QuestionTecnologias, "Teletrabajo", false)
	if got := s.Answers().Tecnologias; len(got) != 0 {
		t.Fatalf("after double remove Tecnologias = %v, want none", got)
	}
}

func TestToggleOnSingleSelectIsIgnored(t *testing.T) {
	s := completeUpTo(t, QuestionSector)
	s.Toggle(QuestionSector, "Salud", true)
	if s.Answers().Sector != "" {
		t.Fatal("toggle must only apply to multi-select questions")
	}
}

func TestFullRunCompletes(t *testing.T) {
	s := NewSession()
	answers := map[string]Value{
		QuestionEmpresa:               {Text: "Acme"},
		QuestionEmail:                 {Text: "ceo@acme.com"},
		QuestionSector:                {Text: "Tecnología"},
		QuestionTecnologias:           {Options: []string{"Correo electrónico"}},
		QuestionMantenimientoTI:       {Text: "Mixto"},
		QuestionHerramientasSeguridad: {Text: "Antivirus básico"},
		QuestionFormacion:             {Text: "Ninguna"},
		QuestionPoliticaContrasenas:   {Text: "Política básica"},
		QuestionEliminacionDatos:      {Text: "Eliminación básica"},
		QuestionRedesSociales:         {Text: "Sin presencia"},
	}

	for i := 0; i < QuestionCount(); i++ {
		q := s.Question()
		s.SetValue(q.ID, answers[q.ID])
		outcome := s.Next()
		if i < QuestionCount()-1 && outcome != NextAdvanced {
			t.Fatalf("step %d: Next() = %v, want NextAdvanced", i, outcome)
		}
		if i == QuestionCount()-1 && outcome != NextCompleted {
			t.Fatalf("final step: Next() = %v, want NextCompleted", outcome)
		}
	}

	if !s.Completed() {
		t.Fatal("session should be completed after the last step")
	}
	got := s.Answers()
	if got.Empresa != "Acme" || got.Email != "ceo@acme.com" || got.RedesSociales != "Sin presencia" {
		t.Fatalf("unexpected answer snapshot: %+v", got)
	}
}

func TestProgressGrowsWithSteps(t *testing.T) {
	s := NewSession()
	s.SetValue(QuestionEmpresa, Value{Text: "Acme"})
	s.Next()
	if got := s.Progress(); got != 100/QuestionCount() {
		t.Fatalf("Progress() = %d, want %d", got, 100/QuestionCount())
	}
}

func TestAnswersSnapshotIsDetached(t *testing.T) {
	s := completeUpTo(t, QuestionTecnologias)
	s.Toggle(QuestionTecnologias, "Teletrabajo", true)

	snapshot := s.Answers()
	snapshot.Tecnologias[0] = "mutated"

	if got := s.Answers().Tecnologias[0]; got != "Teletrabajo" {
		t.Fatalf("session answer mutated through snapshot: %q", got)
	}
}

// completeUpTo answers questions in order until target becomes current.
func completeUpTo(t *testing.T, target string) *Session {
	t.Helper()
	fill := map[string]Value{
		QuestionEmpresa: {Text: "Acme"},
		QuestionEmail:   {Text: "ceo@acme.com"},
		QuestionSector:  {Text: "Tecnología"},
	}
	s := NewSession()
	for s.Question().ID != target {
		q := s.Question()
		value, ok := fill[q.ID]
		if !ok {
			t.Fatalf("no fill value for question %q", q.ID)
		}
		s.SetValue(q.ID, value)
		if got := s.Next(); got != NextAdvanced {
			t.Fatalf("Next() = %v while advancing to %q", got, target)
		}
	}
	return s
}
