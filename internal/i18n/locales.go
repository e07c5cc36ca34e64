package i18n

// Built-in locale tables for the document output languages.

var enUS = map[string]string{
	"about":             "About",
	"skills":            "Skills",
	"experience":        "Experience",
	"education":         "Education",
	"languages":         "Languages",
	"projects":          "Projects",
	"social_networks":   "Social networks",
	"native":            "native",
	"present":           "present",
	"years_old":         "years old",
	"at":                "at",
	"in_progress":       "in progress",
	"email.cv_subject":  "Your CV is awaiting for you",
	"email.cv_body":     "your generated CV is attached to this email.",
	"email.cv_greeting": "Hello",
}

var ptBR = map[string]string{
	"about":             "Sobre",
	"skills":            "Habilidades",
	"experience":        "Experiência",
	"education":         "Educação",
	"languages":         "Idiomas",
	"projects":          "Projetos",
	"social_networks":   "Redes sociais",
	"native":            "nativo",
	"present":           "presente",
	"years_old":         "anos",
	"at":                "em",
	"in_progress":       "em andamento",
	"email.cv_subject":  "Seu currículo está esperando por você",
	"email.cv_body":     "seu currículo gerado está anexado a este email.",
	"email.cv_greeting": "Olá",
}
