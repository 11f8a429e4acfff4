package repository

import "estudiapro_client/internal/model"

// Demo credentials. These are published in the product's login screen, the
// whole point of demo mode is that anyone can get in with them.
const (
	DemoEmail    = "demo@estudiapro.com"
	DemoUsername = "daniela.demo"
	DemoPassword = "demo123"
)

func seedDemoProfile() model.RawProfile {
	return model.RawProfile{
		ID:                 "demo-1",
		Username:           DemoUsername,
		Email:              DemoEmail,
		FirstName:          "Daniela",
		LastName:           "Yáñez",
		Name:               "Daniela Yáñez",
		Rol:                "ESTUDIANTE",
		Nivel:              3,
		PuntosGamificacion: 820,
		Streak:             6,
	}
}

func seedSubjectsCatalog() []model.Subject {
	return []model.Subject{
		{
			ID:          "calc-1",
			Title:       "Cálculo Diferencial",
			Description: "Domina límites, derivadas y aplicaciones esenciales para ingeniería.",
			Professor:   "Dra. Sofía Reyes",
			School:      "ESCOM",
			Progress:    68,
			Level:       "Intermedio",
			Syllabus: []model.SyllabusItem{
				{Title: "Límites y continuidad"},
				{Title: "Derivadas y reglas principales"},
				{Title: "Aplicaciones de la derivada"},
				{Title: "Optimización y máximos relativos"},
			},
		},
		{
			ID:          "alg-2",
			Title:       "Álgebra Lineal Avanzada",
			Description: "Matrices, espacios vectoriales y diagonalización con casos reales.",
			Professor:   "Mtro. Armando Flores",
			School:      "ESCOM",
			Progress:    55,
			Level:       "Avanzado",
			Syllabus: []model.SyllabusItem{
				{Title: "Matrices y determinantes"},
				{Title: "Sistemas de ecuaciones"},
				{Title: "Espacios vectoriales"},
				{Title: "Transformaciones lineales"},
			},
		},
		{
			ID:          "ecu-1",
			Title:       "Ecuaciones Diferenciales",
			Description: "Aprende a modelar sistemas dinámicos con ecuaciones reales.",
			Professor:   "Dra. Julieta Morales",
			School:      "IPN",
			Progress:    32,
			Level:       "Intermedio",
			Syllabus: []model.SyllabusItem{
				{Title: "Ecuaciones de primer orden"},
				{Title: "Método de coeficientes indeterminados"},
				{Title: "Transformada de Laplace"},
			},
		},
		{
			ID:          "prob-1",
			Title:       "Probabilidad y Estadística",
			Description: "Distribuciones, inferencia y visualización de datos aplicada.",
			Professor:   "Mtra. Paula Navarro",
			School:      "ESCOM",
			Progress:    40,
			Level:       "Básico",
			Syllabus: []model.SyllabusItem{
				{Title: "Combinatoria y conteo"},
				{Title: "Variables aleatorias"},
				{Title: "Distribuciones clásicas"},
				{Title: "Intervalos de confianza"},
			},
		},
	}
}

func seedUserSubjects() []model.UserSubject {
	return []model.UserSubject{
		{
			ID:        "calc-1",
			Title:     "Cálculo Diferencial",
			Professor: "Dra. Sofía Reyes",
			School:    "ESCOM",
			Progress:  68,
			ExamDate:  "2025-09-22",
			Syllabus: []model.SyllabusItem{
				{Title: "Límites y continuidad"},
				{Title: "Derivadas y reglas principales"},
				{Title: "Aplicaciones de la derivada"},
				{Title: "Optimización y máximos relativos"},
			},
		},
		{
			ID:        "alg-2",
			Title:     "Álgebra Lineal Avanzada",
			Professor: "Mtro. Armando Flores",
			School:    "ESCOM",
			Progress:  55,
			ExamDate:  "2025-10-15",
			Syllabus: []model.SyllabusItem{
				{Title: "Matrices y determinantes"},
				{Title: "Sistemas de ecuaciones"},
				{Title: "Espacios vectoriales"},
				{Title: "Transformaciones lineales"},
			},
		},
		{
			ID:        "prob-1",
			Title:     "Probabilidad y Estadística",
			Professor: "Mtra. Paula Navarro",
			School:    "ESCOM",
			Progress:  40,
			ExamDate:  "2025-11-05",
			Syllabus: []model.SyllabusItem{
				{Title: "Combinatoria y conteo"},
				{Title: "Variables aleatorias"},
				{Title: "Distribuciones clásicas"},
			},
		},
	}
}

func seedResources() []model.Resource {
	return []model.Resource{
		{
			ID:          "res-001",
			Title:       "Guía Premium de Derivadas",
			Author:      "Andrea Ríos",
			SubjectID:   "calc-1",
			SubjectName: "Cálculo Diferencial",
			Type:        model.ResourcePDF,
			Price:       89,
			Rating:      4.9,
			Downloads:   245,
		},
		{
			ID:          "res-002",
			Title:       "Banco de Exámenes ESCOM - Álgebra",
			Author:      "Carlos Trejo",
			SubjectID:   "alg-2",
			SubjectName: "Álgebra Lineal Avanzada",
			Type:        model.ResourceExam,
			Price:       129,
			Rating:      4.8,
			Downloads:   178,
		},
		{
			ID:          "res-003",
			Title:       "Formulario Visual de Integrales",
			Author:      "Mariana Pineda",
			SubjectID:   "calc-1",
			SubjectName: "Cálculo Diferencial",
			Type:        model.ResourceFormula,
			Price:       0,
			Rating:      4.7,
			Downloads:   312,
			Free:        true,
		},
		{
			ID:          "res-004",
			Title:       "Plantillas Notion para plan de estudio",
			Author:      "Edgar Díaz",
			SubjectID:   "prob-1",
			SubjectName: "Probabilidad",
			Type:        model.ResourcePDF,
			Price:       59,
			Rating:      4.5,
			Downloads:   97,
		},
	}
}

func seedPurchasedResourceIDs() map[string]bool {
	return map[string]bool{
		"res-001": true,
		"res-003": true,
	}
}

func seedExams() []model.Exam {
	return []model.Exam{
		{
			ID:          "exam-derivadas",
			SubjectID:   "calc-1",
			SubjectName: "Cálculo Diferencial",
			Title:       "Simulacro Parcial 1 - Derivadas",
			Duration:    3600,
			Questions: []model.Question{
				{
					ID:           "q-1",
					Text:         "Calcula la derivada de f(x) = 3x^4 - 5x^2 + 2",
					Answer:       "12x^3-10x",
					Explanation:  "Aplica la regla del poder a cada término.",
					WolframQuery: "derivative 3x^4-5x^2+2",
				},
				{
					ID:           "q-2",
					Text:         "Evalúa la integral \\int_0^1 2x \\; dx",
					Answer:       "1",
					Explanation:  "La antiderivada de 2x es x^2. Evalúa entre 0 y 1.",
					WolframQuery: "integrate 2x from 0 to 1",
				},
				{
					ID:           "q-3",
					Text:         "Resuelve el límite \\lim_{x \\to 0} \\frac{\\sin(3x)}{x}",
					Answer:       "3",
					Explanation:  "Usa el límite notable sin(x)/x = 1.",
					WolframQuery: "limit sin(3x)/x as x->0",
				},
			},
		},
		{
			ID:          "exam-algebra",
			SubjectID:   "alg-2",
			SubjectName: "Álgebra Lineal Avanzada",
			Title:       "Simulacro Matrices y Determinantes",
			Duration:    2700,
			Questions: []model.Question{
				{
					ID:           "alg-q1",
					Text:         "Calcula el determinante de la matriz [[2,3],[1,4]]",
					Answer:       "5",
					Explanation:  "det(A)=ad-bc = (2)(4)-(3)(1).",
					WolframQuery: "determinant [[2,3],[1,4]]",
				},
				{
					ID:           "alg-q2",
					Text:         "¿Cuál es el valor propio restante de A = [[4,1],[0,3]] además de 4?",
					Answer:       "3",
					Explanation:  "Los valores propios de una matriz triangular son su diagonal.",
					WolframQuery: "eigenvalues [[4,1],[0,3]]",
				},
			},
		},
	}
}

func seedFormularies() []model.Formulary {
	return []model.Formulary{
		{ID: "form-1", Title: "Tabla Premium de Derivadas", Subject: "Cálculo", Type: "PDF", URL: "#"},
		{ID: "form-2", Title: "Identidades Trigonométricas", Subject: "Álgebra", Type: "PDF", URL: "#"},
		{ID: "form-3", Title: "Formulario de Laplace", Subject: "Ecuaciones Diferenciales", Type: "PDF", URL: "#"},
	}
}

func seedTutors() []model.Tutor {
	return []model.Tutor{
		{
			ID:          "tutor-ale",
			Name:        "Alejandra Ruiz",
			Rating:      4.9,
			Sessions:    128,
			Specialties: "Cálculo, Álgebra",
			Bio:         "Coach académica con 6 años ayudando a pasar extraordinarios.",
			Tariff30:    180,
			Tariff60:    320,
		},
		{
			ID:          "tutor-ian",
			Name:        "Ian Salazar",
			Rating:      4.7,
			Sessions:    86,
			Specialties: "Probabilidad, Estadística",
			Bio:         "Te ayudo a traducir problemas de datos a pasos simples.",
			Tariff30:    160,
			Tariff60:    290,
		},
		{
			ID:          "tutor-rosa",
			Name:        "Rosa Vera",
			Rating:      4.8,
			Sessions:    102,
			Specialties: "Ecuaciones Diferenciales",
			Bio:         "Explico con gráficas interactivas y ejemplos reales.",
			Tariff30:    200,
			Tariff60:    340,
		},
	}
}

func seedForums() []model.ForumTopic {
	return []model.ForumTopic{
		{
			ID:           "forum-1",
			Title:        "¿Cómo factorizar un polinomio cúbico rápido?",
			SubjectName:  "Álgebra Lineal",
			PostCount:    12,
			LastActivity: "2024-05-23T12:30:00Z",
		},
		{
			ID:           "forum-2",
			Title:        "Tips para dominar integrales por partes",
			SubjectName:  "Cálculo Diferencial",
			PostCount:    18,
			LastActivity: "2024-05-22T19:10:00Z",
		},
		{
			ID:           "forum-3",
			Title:        "¿Cómo iniciar con ecuaciones diferenciales?",
			SubjectName:  "Ecuaciones Diferenciales",
			PostCount:    9,
			LastActivity: "2024-05-21T08:45:00Z",
		},
	}
}

func seedAchievements() []model.Achievement {
	return []model.Achievement{
		{ID: "ach-1", Title: "Primer Sprint", Description: "Completaste tu primera semana estudiando diario.", Icon: "🚀", Date: "2024-05-10"},
		{ID: "ach-2", Title: "Explorador", Description: "Agregaste 3 materias a tu panel.", Icon: "🧭", Date: "2024-05-14"},
		{ID: "ach-3", Title: "SOS Master", Description: "Agendaste 2 tutorías en un mes.", Icon: "🧑‍🏫", Date: "2024-05-18"},
	}
}

func seedNotifications() []model.Notification {
	return []model.Notification{
		{
			ID:      "notif-1",
			Title:   "Examen de Álgebra en 48h",
			Message: "Agenda un simulacro corto para validar tu progreso antes del examen de Álgebra.",
			Type:    "alert",
			Date:    "2024-05-24T10:02:00Z",
		},
		{
			ID:      "notif-2",
			Title:   "Nuevo recurso recomendado",
			Message: "Andrea Ríos compartió el formulario actualizado de integrales que buscabas.",
			Type:    "info",
			Date:    "2024-05-23T15:45:00Z",
		},
		{
			ID:      "notif-3",
			Title:   "Racha de estudio activa",
			Message: "Ya llevas 6 días seguidos cumpliendo tu meta diaria. ¡No rompas la racha!",
			Type:    "success",
			Read:    true,
			Date:    "2024-05-22T08:15:00Z",
		},
	}
}
