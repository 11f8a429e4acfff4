// Exporta el grafo de datos demo a JSON.
//
// Útil para generar fixtures del frontend o inspeccionar qué datos sirve el
// simulador sin levantar el servidor.
//
// Uso: go run scripts/export_seed.go > seed.json

package main

import (
	"encoding/json"
	"log"
	"os"

	"estudiapro_client/internal/repository"
)

func main() {
	store := repository.NewStore()

	subjects := repository.NewSubjectRepository(store)
	resources := repository.NewResourceRepository(store)
	exams := repository.NewExamRepository(store)
	tutors := repository.NewTutorRepository(store)
	forums := repository.NewForumRepository(store)
	achievements := repository.NewAchievementRepository(store)
	notifications := repository.NewNotificationRepository(store)
	users := repository.NewUserRepository(store)

	dump := map[string]any{
		"subjectsCatalog": subjects.Catalog(),
		"userSubjects":    subjects.UserSubjects(),
		"resources":       resources.All(),
		"purchased":       resources.Purchased(),
		"formularies":     resources.Formularies(),
		"exams":           exams.All(),
		"tutors":          tutors.All(),
		"forums":          forums.All(),
		"achievements":    achievements.All(),
		"notifications":   notifications.All(),
		"demoProfile":     users.DemoProfile(),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(dump); err != nil {
		log.Fatalf("no se pudo serializar el seed: %v", err)
	}
}
