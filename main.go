package main

import (
	"errors"
	"flag"
	"os"

	"github.com/rs/zerolog"

	"food-marketplace-datastore/auth"
	"food-marketplace-datastore/config"
	"food-marketplace-datastore/models"
	"food-marketplace-datastore/storage"
	"food-marketplace-datastore/store"
)

// Seeds a demo data set through the public store surface, the same calls
// the route handlers of the full application make. Safe to re-run: existing
// demo accounts are reused.
func main() {
	cfg := config.Load()
	dataDir := flag.String("data", cfg.DataDir, "directory for collection files")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	handle, err := storage.NewDir(*dataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("data directory unavailable")
	}

	users := store.NewUsers(handle, log)
	shops := store.NewShops(handle, log)
	items := store.NewMenuItems(handle, log)
	orders := store.NewOrders(handle, log)
	reviews := store.NewReviews(handle, log)
	creds := auth.New(users, cfg, log)

	owner := seedUser(log, creds, users, auth.RegisterInput{
		Name: "Demo Owner", Email: "owner@example.com", Password: "hunter22", Role: models.RoleOwner,
	})
	customer := seedUser(log, creds, users, auth.RegisterInput{
		Name: "Demo Customer", Email: "customer@example.com", Password: "hunter22", Role: models.RoleCustomer,
	})

	token, err := creds.IssueToken(customer.ID)
	if err != nil {
		log.Fatal().Err(err).Msg("issue token")
	}

	shop := shops.Create(models.Shop{
		Owner: owner.ID, Name: "Cafe Mocha", Cuisine: "coffee", Address: "12 Bean St",
	})
	approved := true
	shops.Update(shop.ID, store.ShopUpdate{IsApproved: &approved})

	latte := items.Create(models.MenuItem{
		Shop: shop.ID, Name: "Latte", Price: 3.5, Category: "drinks",
	})
	items.Create(models.MenuItem{
		Shop: shop.ID, Name: "Carrot Cake", Price: 4.2, Category: "desserts",
	})

	order := orders.Create(models.Order{
		Customer:        customer.ID,
		Shop:            shop.ID,
		Items:           []models.OrderLine{{MenuItem: latte.ID, Name: latte.Name, Price: latte.Price, Quantity: 2}},
		Total:           7.0,
		DeliveryAddress: "34 Rye Ave",
	})

	review := reviews.Create(models.Review{
		Shop: shop.ID, User: customer.ID, Rating: 5, Comment: "Great coffee",
	})
	rating := 5.0
	total := len(reviews.FindAll(store.ReviewFilter{Shop: &shop.ID}))
	shops.Update(shop.ID, store.ShopUpdate{Rating: &rating, TotalReviews: &total})

	log.Info().
		Str("shop", shop.ID).
		Str("order", order.ID).
		Str("review", review.ID).
		Str("token", token).
		Msg("seed complete")
}

func seedUser(log zerolog.Logger, creds *auth.Service, users *store.Users, in auth.RegisterInput) models.User {
	user, err := creds.Register(in)
	if errors.Is(err, store.ErrDuplicateEmail) {
		if existing := users.FindByEmail(in.Email); existing != nil {
			return existing.Redacted()
		}
	}
	if err != nil {
		log.Fatal().Err(err).Str("email", in.Email).Msg("seed user")
	}
	return user
}
