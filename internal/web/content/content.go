// Package content holds the static marketing copy rendered on the public
// site. Pure data, no behavior.
package content

// Service is one entry in the services grid.
type Service struct {
	Title       string
	Description string
}

// Workshop is one training offering card.
type Workshop struct {
	Title        string
	Description  string
	Duration     string
	Participants string
	Level        string
	Price        string
}

// Plan is one pricing card.
type Plan struct {
	Name        string
	Price       string
	Description string
	Features    []string
	CTA         string
	Popular     bool
}

// Testimonial is one customer quote.
type Testimonial struct {
	Name     string
	Position string
	Content  string
}

// FAQ is one frequently asked question.
type FAQ struct {
	Question string
	Answer   string
}

// Services returns the services grid entries.
func Services() []Service {
	return []Service{
		{
			Title:       "Evaluación de Riesgos",
			Description: "Identificamos y evaluamos las vulnerabilidades en tu infraestructura tecnológica.",
		},
		{
			Title:       "Gestión de Amenazas",
			Description: "Desarrollamos estrategias para mitigar riesgos y proteger tus activos digitales.",
		},
		{
			Title:       "Formación en Seguridad",
			Description: "Capacitamos a tu equipo para reconocer y responder ante amenazas cibernéticas.",
		},
	}
}

// Workshops returns the training offering cards.
func Workshops() []Workshop {
	return []Workshop{
		{
			Title:        "Fundamentos de Ciberseguridad",
			Description:  "Aprende los conceptos básicos de la seguridad informática y cómo proteger tu empresa de las amenazas más comunes.",
			Duration:     "4 horas",
			Participants: "Hasta 15 personas",
			Level:        "Principiante",
			Price:        "350.000",
		},
		{
			Title:        "Gestión de Incidentes de Seguridad",
			Description:  "Desarrolla un plan efectivo para responder a incidentes de seguridad y minimizar el impacto en tu organización.",
			Duration:     "6 horas",
			Participants: "Hasta 12 personas",
			Level:        "Intermedio",
			Price:        "450.000",
		},
		{
			Title:        "Seguridad en el Desarrollo de Software",
			Description:  "Implementa prácticas de desarrollo seguro y aprende a identificar vulnerabilidades en el código desde las primeras etapas.",
			Duration:     "8 horas",
			Participants: "Hasta 10 personas",
			Level:        "Avanzado",
			Price:        "600.000",
		},
		{
			Title:        "Protección de Datos y Cumplimiento Normativo",
			Description:  "Conoce las regulaciones de protección de datos aplicables y cómo implementar medidas para cumplir con la normativa.",
			Duration:     "5 horas",
			Participants: "Hasta 15 personas",
			Level:        "Intermedio",
			Price:        "400.000",
		},
	}
}

// Plans returns the pricing cards.
func Plans() []Plan {
	return []Plan{
		{
			Name:        "Plan Básico",
			Price:       "200.000",
			Description: "Ideal para pequeñas empresas y startups",
			Features: []string{
				"1 evaluación de seguridad",
				"Acceso a informes básicos",
				"Soporte por correo electrónico",
				"Recomendaciones generales",
				"Validez de 3 meses",
			},
			CTA: "Contratar",
		},
		{
			Name:        "Plan Profesional",
			Price:       "500.000",
			Description: "Perfecto para empresas en crecimiento",
			Features: []string{
				"3 evaluaciones de seguridad",
				"Informes detallados y personalizados",
				"Soporte prioritario",
				"1 workshop incluido",
				"Validez de 6 meses",
				"Análisis de vulnerabilidades",
			},
			CTA:     "Contratar",
			Popular: true,
		},
		{
			Name:        "Plan Enterprise",
			Price:       "1.200.000",
			Description: "Solución completa para grandes organizaciones",
			Features: []string{
				"Evaluaciones ilimitadas",
				"Informes ejecutivos y técnicos",
				"Soporte 24/7",
				"3 workshops incluidos",
				"Validez de 12 meses",
				"Análisis de vulnerabilidades avanzado",
				"Consultoría personalizada",
				"Auditoría de seguridad",
			},
			CTA: "Contratar",
		},
	}
}

// Testimonials returns the customer quotes.
func Testimonials() []Testimonial {
	return []Testimonial{
		{
			Name:     "Carlos Ramírez",
			Position: "Director de TI, TechSolutions Colombia",
			Content:  "SECURELUPS transformó nuestra postura de seguridad. Su evaluación identificó vulnerabilidades críticas que habíamos pasado por alto durante años. El informe fue claro y las recomendaciones, implementables de inmediato.",
		},
		{
			Name:     "María Fernanda López",
			Position: "CEO, FinTech Innovations",
			Content:  "Los workshops de formación fueron excelentes. Nuestro equipo ahora está mucho más consciente de las amenazas de seguridad y ha implementado prácticas que han fortalecido significativamente nuestra protección de datos.",
		},
		{
			Name:     "Andrés Gutiérrez",
			Position: "CISO, Banco Nacional",
			Content:  "Como institución financiera, la seguridad es nuestra prioridad. El Plan Enterprise de SECURELUPS nos ha proporcionado una visión completa de nuestras vulnerabilidades y un roadmap claro para remediarlas.",
		},
		{
			Name:     "Laura Sánchez",
			Position: "Gerente General, Retail Express",
			Content:  "Después de sufrir un incidente de seguridad, contratamos a SECURELUPS para evaluar nuestros sistemas. Su enfoque metódico y recomendaciones precisas nos ayudaron a recuperar la confianza en nuestra infraestructura.",
		},
	}
}

// FAQs returns the frequently asked questions.
func FAQs() []FAQ {
	return []FAQ{
		{
			Question: "¿Qué incluye la evaluación de seguridad?",
			Answer:   "Nuestra evaluación de seguridad incluye un análisis completo de tu infraestructura tecnológica, políticas de seguridad, prácticas de gestión de datos y formación de personal. Identificamos vulnerabilidades, evaluamos riesgos y proporcionamos recomendaciones específicas para mejorar tu postura de seguridad.",
		},
		{
			Question: "¿Cuánto tiempo toma completar una evaluación?",
			Answer:   "El tiempo varía según el tamaño y complejidad de tu organización. Típicamente, una evaluación básica puede completarse en 1-2 semanas, mientras que evaluaciones más exhaustivas para empresas grandes pueden tomar 3-4 semanas. Trabajamos contigo para establecer un cronograma que minimice las interrupciones en tus operaciones.",
		},
		{
			Question: "¿Cómo se diferencian los planes entre sí?",
			Answer:   "Los planes se diferencian principalmente en la profundidad del análisis, el número de evaluaciones incluidas, el nivel de soporte proporcionado y los servicios adicionales como workshops y consultoría personalizada. El Plan Básico es ideal para pequeñas empresas, el Profesional para empresas medianas, y el Enterprise para grandes organizaciones con necesidades complejas.",
		},
		{
			Question: "¿Puedo actualizar mi plan más adelante?",
			Answer:   "Sí, puedes actualizar tu plan en cualquier momento. Te recomendaremos el mejor camino de actualización basado en tus necesidades específicas y te ofreceremos un descuento proporcional al tiempo restante en tu plan actual.",
		},
		{
			Question: "¿Ofrecen soporte después de la evaluación?",
			Answer:   "Absolutamente. Todos nuestros planes incluyen algún nivel de soporte post-evaluación. Desde asistencia por correo electrónico en el Plan Básico hasta soporte 24/7 en el Plan Enterprise. Además, ofrecemos servicios de consultoría continua para ayudarte a implementar nuestras recomendaciones.",
		},
		{
			Question: "¿Los workshops pueden personalizarse para mi empresa?",
			Answer:   "Sí, todos nuestros workshops pueden adaptarse a las necesidades específicas de tu organización. Podemos enfocarnos en las áreas más relevantes para tu industria y ajustar el contenido según el nivel de conocimiento de tus empleados.",
		},
	}
}
