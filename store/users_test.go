package store_test

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"food-marketplace-datastore/models"
	"food-marketplace-datastore/storage"
	"food-marketplace-datastore/store"
)

func newUsers() *store.Users {
	return store.NewUsers(storage.NewMem(), zerolog.Nop())
}

func TestUsersCreate(t *testing.T) {
	users := newUsers()

	created, err := users.Create(models.User{
		Name: "Ann", Email: "ann@example.com", Password: "$2a$10$fakehash", Role: models.RoleCustomer,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.Password != "" {
		t.Fatal("create returned the password hash")
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatal("createdAt and updatedAt differ on a fresh record")
	}
}

func TestUsersDuplicateEmail(t *testing.T) {
	users := newUsers()

	first, err := users.Create(models.User{Name: "Ann", Email: "ann@example.com", Password: "$2a$10$one"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err = users.Create(models.User{Name: "Imposter", Email: "ann@example.com", Password: "$2a$10$two"})
	if !errors.Is(err, store.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	// first user untouched
	got := users.FindByEmail("ann@example.com")
	if got == nil {
		t.Fatal("first user missing")
	}
	if got.ID != first.ID || got.Name != "Ann" || got.Password != "$2a$10$one" {
		t.Fatalf("first user changed: %+v", got)
	}
}

func TestUsersRedaction(t *testing.T) {
	users := newUsers()
	created, err := users.Create(models.User{Name: "Ann", Email: "ann@example.com", Password: "$2a$10$hash"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("FindByID strips hash", func(t *testing.T) {
		got := users.FindByID(created.ID)
		if got == nil {
			t.Fatal("user not found")
		}
		if got.Password != "" {
			t.Fatal("FindByID leaked the password hash")
		}
	})

	t.Run("FindByEmail keeps hash", func(t *testing.T) {
		got := users.FindByEmail("ann@example.com")
		if got == nil {
			t.Fatal("user not found")
		}
		if got.Password != "$2a$10$hash" {
			t.Fatalf("expected stored hash, got %q", got.Password)
		}
	})

	t.Run("FindByID missing", func(t *testing.T) {
		if got := users.FindByID("nope"); got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})
}
