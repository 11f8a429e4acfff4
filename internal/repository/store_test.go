package repository

import (
	"errors"
	"testing"

	"estudiapro_client/internal/util"
)

func TestNewStoreSeedsGraph(t *testing.T) {
	store := NewStore()

	if got := len(NewSubjectRepository(store).Catalog()); got != 4 {
		t.Errorf("catalog size = %d, want 4", got)
	}
	if got := len(NewSubjectRepository(store).UserSubjects()); got != 3 {
		t.Errorf("user subjects = %d, want 3", got)
	}
	if got := len(NewResourceRepository(store).Purchased()); got != 2 {
		t.Errorf("purchased = %d, want 2", got)
	}
	if got := len(NewExamRepository(store).All()); got != 2 {
		t.Errorf("exams = %d, want 2", got)
	}
}

func TestResetDiscardsMutations(t *testing.T) {
	store := NewStore()
	resources := NewResourceRepository(store)
	subjects := NewSubjectRepository(store)

	resources.Purchase("res-002")
	if err := subjects.AddUserSubject("ecu-1"); err != nil {
		t.Fatalf("AddUserSubject: %v", err)
	}

	store.Reset()

	if resources.IsPurchased("res-002") {
		t.Error("purchase survived Reset")
	}
	if got := len(subjects.UserSubjects()); got != 3 {
		t.Errorf("user subjects = %d after Reset, want 3", got)
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a, b := NewStore(), NewStore()

	NewResourceRepository(a).Purchase("res-002")

	if NewResourceRepository(b).IsPurchased("res-002") {
		t.Error("purchase leaked across store instances")
	}
}

func TestRepositoriesReturnCopies(t *testing.T) {
	store := NewStore()
	subjects := NewSubjectRepository(store)

	list := subjects.Catalog()
	list[0].Title = "mutated"
	list[0].Syllabus[0].Title = "mutated item"

	fresh := subjects.Catalog()
	if fresh[0].Title == "mutated" {
		t.Error("caller mutation reached the store")
	}
	if fresh[0].Syllabus[0].Title == "mutated item" {
		t.Error("caller mutation reached nested seed data")
	}
}

func TestVerifyCredentials(t *testing.T) {
	repo := NewUserRepository(NewStore())

	if _, err := repo.VerifyCredentials(DemoEmail, DemoPassword); err != nil {
		t.Fatalf("valid credentials rejected: %v", err)
	}
	if _, err := repo.VerifyCredentials("DEMO@ESTUDIAPRO.COM", DemoPassword); err != nil {
		t.Errorf("case-insensitive email rejected: %v", err)
	}
	if _, err := repo.VerifyCredentials(DemoUsername, DemoPassword); err != nil {
		t.Errorf("username identifier rejected: %v", err)
	}
	if _, err := repo.VerifyCredentials(DemoEmail, "wrong"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := repo.VerifyCredentials("otra@estudiapro.com", DemoPassword); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Errorf("unknown identifier err = %v, want ErrInvalidCredentials", err)
	}
}
