package form

// AnswerSet is the complete mapping of question identifier to submitted
// value for one questionnaire session.
type AnswerSet struct {
	Empresa               string
	Email                 string
	Sector                string
	Tecnologias           []string
	MantenimientoTI       string
	HerramientasSeguridad string
	Formacion             string
	PoliticaContrasenas   string
	EliminacionDatos      string
	RedesSociales         string
}

// Value returns the current answer for a question identifier.
func (a AnswerSet) Value(id string) Value {
	switch id {
	case QuestionEmpresa:
		return Value{Text: a.Empresa}
	case QuestionEmail:
		return Value{Text: a.Email}
	case QuestionSector:
		return Value{Text: a.Sector}
	case QuestionTecnologias:
		return Value{Options: a.Tecnologias}
	case QuestionMantenimientoTI:
		return Value{Text: a.MantenimientoTI}
	case QuestionHerramientasSeguridad:
		return Value{Text: a.HerramientasSeguridad}
	case QuestionFormacion:
		return Value{Text: a.Formacion}
	case QuestionPoliticaContrasenas:
		return Value{Text: a.PoliticaContrasenas}
	case QuestionEliminacionDatos:
		return Value{Text: a.EliminacionDatos}
	case QuestionRedesSociales:
		return Value{Text: a.RedesSociales}
	}
	return Value{}
}

func (a *AnswerSet) setValue(id string, v Value) {
	switch id {
	case QuestionEmpresa:
		a.Empresa = v.Text
	case QuestionEmail:
		a.Email = v.Text
	case QuestionSector:
		a.Sector = v.Text
	case QuestionTecnologias:
		a.Tecnologias = v.Options
	case QuestionMantenimientoTI:
		a.MantenimientoTI = v.Text
	case QuestionHerramientasSeguridad:
		a.HerramientasSeguridad = v.Text
	case QuestionFormacion:
		a.Formacion = v.Text
	case QuestionPoliticaContrasenas:
		a.PoliticaContrasenas = v.Text
	case QuestionEliminacionDatos:
		a.EliminacionDatos = v.Text
	case QuestionRedesSociales:
		a.RedesSociales = v.Text
	}
}

// HasOption reports whether a multi-select answer currently contains option.
func (a AnswerSet) HasOption(id, option string) bool {
	for _, existing := range a.Value(id).Options {
		if existing == option {
			return true
		}
	}
	return false
}
