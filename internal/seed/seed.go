// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"mosaic/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	NumProducts int
	ShouldClean bool
	// SkipBcrypt stores plain passwords. Dev fast mode only; logins will fail.
	SkipBcrypt bool
}

var categoryNames = []string{
	"Electronics", "Books", "Clothing", "Home & Garden", "Sports",
	"Toys", "Music", "Groceries", "Health", "Outdoors",
}

// Seeder populates the database with demo data.
type Seeder struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run seeds users, friendships, posts, and the product catalog.
func (s *Seeder) Run() error {
	log.Printf("Seeding %d users, %d posts, %d products...",
		s.opts.NumUsers, s.opts.NumPosts, s.opts.NumProducts)

	if s.opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	users, err := s.CreateUsers(s.opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("created %d users", len(users))

	if err := s.CreateFriendships(users); err != nil {
		return fmt.Errorf("failed to create friendships: %w", err)
	}

	posts, err := s.CreatePosts(users, s.opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("created %d posts", len(posts))

	categories, err := s.CreateCategories()
	if err != nil {
		return fmt.Errorf("failed to create categories: %w", err)
	}
	log.Printf("created %d categories", len(categories))

	products, err := s.CreateProducts(categories, s.opts.NumProducts)
	if err != nil {
		return fmt.Errorf("failed to create products: %w", err)
	}
	log.Printf("created %d products", len(products))

	if err := s.CreateCarts(users, products); err != nil {
		return fmt.Errorf("failed to create carts: %w", err)
	}

	return nil
}

// ClearAll truncates all seeded tables.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE cart_items, carts, products, categories, posts,
		friend_requests, user_friends, users RESTART IDENTITY CASCADE;`
	return s.db.Exec(sql).Error
}

// CreateUsers inserts n demo users. Every user gets the password "password123".
func (s *Seeder) CreateUsers(n int) ([]models.User, error) {
	password := "password123"
	if !s.opts.SkipBcrypt {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		password = string(hashed)
	}

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			Email:    gofakeit.Email(),
			Password: password,
		})
	}
	if err := s.db.Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// CreateFriendships links roughly a third of user pairs: most accepted, some
// left pending, a few declined, so every request state shows up in demo data.
func (s *Seeder) CreateFriendships(users []models.User) error {
	for i := range users {
		for j := i + 1; j < len(users); j++ {
			if s.rng.Intn(3) != 0 {
				continue
			}

			status := models.FriendRequestStatusAccepted
			switch s.rng.Intn(5) {
			case 0:
				status = models.FriendRequestStatusPending
			case 1:
				status = models.FriendRequestStatusDeclined
			}

			request := models.FriendRequest{
				FromID: users[i].ID,
				ToID:   users[j].ID,
				Status: status,
			}
			if err := s.db.Create(&request).Error; err != nil {
				return err
			}

			if status == models.FriendRequestStatusAccepted {
				rows := []models.UserFriend{
					{UserID: users[i].ID, FriendID: users[j].ID},
					{UserID: users[j].ID, FriendID: users[i].ID},
				}
				if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).
					Create(&rows).Error; err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// CreatePosts inserts n demo posts with authors drawn from users and a
// realistic created_at spread over the last 90 days.
func (s *Seeder) CreatePosts(users []models.User, n int) ([]models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}

	posts := make([]models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.rng.Intn(len(users))]
		createdAt := time.Now().
			Add(-time.Duration(s.rng.Intn(90)) * 24 * time.Hour).
			Add(-time.Duration(s.rng.Intn(24)) * time.Hour)
		posts = append(posts, models.Post{
			Title:     gofakeit.Sentence(5),
			Content:   gofakeit.Paragraph(1, 3, 5, "\n"),
			AuthorID:  author.ID,
			CreatedAt: createdAt,
		})
	}
	if err := s.db.Create(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// CreateCategories inserts the fixed demo category set.
func (s *Seeder) CreateCategories() ([]models.Category, error) {
	categories := make([]models.Category, 0, len(categoryNames))
	for _, name := range categoryNames {
		categories = append(categories, models.Category{
			Name:        name,
			Description: gofakeit.Sentence(8),
		})
	}
	if err := s.db.Create(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateProducts inserts n demo products spread across the categories.
func (s *Seeder) CreateProducts(categories []models.Category, n int) ([]models.Product, error) {
	if len(categories) == 0 {
		return nil, nil
	}

	products := make([]models.Product, 0, n)
	for i := 0; i < n; i++ {
		category := categories[s.rng.Intn(len(categories))]
		products = append(products, models.Product{
			Name:        gofakeit.ProductName(),
			Description: gofakeit.ProductDescription(),
			Price:       gofakeit.Price(1, 500),
			CategoryID:  category.ID,
		})
	}
	if err := s.db.Create(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// CreateCarts gives roughly half the users a cart with a few product lines.
func (s *Seeder) CreateCarts(users []models.User, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}

	for _, user := range users {
		if s.rng.Intn(2) != 0 {
			continue
		}

		cart := models.Cart{UserID: user.ID}
		if err := s.db.Create(&cart).Error; err != nil {
			return err
		}

		seen := map[uint]bool{}
		for i := 0; i < 1+s.rng.Intn(3); i++ {
			product := products[s.rng.Intn(len(products))]
			if seen[product.ID] {
				continue
			}
			seen[product.ID] = true

			item := models.CartItem{
				CartID:    cart.ID,
				ProductID: product.ID,
				Quantity:  1 + s.rng.Intn(4),
			}
			if err := s.db.Create(&item).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
