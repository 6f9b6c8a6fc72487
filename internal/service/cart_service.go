package service

import (
	"context"

	"mosaic/internal/models"
	"mosaic/internal/repository"
)

// CartService provides cart business logic. A cart is created lazily on the
// first add; quantities accumulate for repeated adds of the same product.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService returns a new CartService.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddItem adds a product to the user's cart, incrementing the quantity when
// the product is already present.
func (s *CartService) AddItem(ctx context.Context, userID, productID uint, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		quantity = 1
	}

	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = &models.Cart{UserID: userID}
		if err := s.cartRepo.Create(ctx, cart); err != nil {
			return nil, err
		}
	}

	if item := findItem(cart, productID); item != nil {
		if err := s.cartRepo.UpdateItemQuantity(ctx, item.ID, item.Quantity+quantity); err != nil {
			return nil, err
		}
	} else {
		newItem := &models.CartItem{CartID: cart.ID, ProductID: productID, Quantity: quantity}
		if err := s.cartRepo.AddItem(ctx, newItem); err != nil {
			return nil, err
		}
	}

	return s.cartRepo.GetByUser(ctx, userID)
}

// GetCart returns the user's cart with products populated.
func (s *CartService) GetCart(ctx context.Context, userID uint) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, models.NewNotFoundError("Cart", userID)
	}
	return cart, nil
}

// UpdateItem sets the quantity for a product already in the cart. A quantity
// of zero or less removes the item.
func (s *CartService) UpdateItem(ctx context.Context, userID, productID uint, quantity int) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, models.NewNotFoundError("Cart", userID)
	}

	item := findItem(cart, productID)
	if item == nil {
		return nil, models.NewNotFoundError("Product in cart", productID)
	}

	if quantity <= 0 {
		if err := s.cartRepo.DeleteItem(ctx, item.ID); err != nil {
			return nil, err
		}
	} else {
		if err := s.cartRepo.UpdateItemQuantity(ctx, item.ID, quantity); err != nil {
			return nil, err
		}
	}

	return s.cartRepo.GetByUser(ctx, userID)
}

// RemoveItem removes a product line from the cart. Removing an absent product
// is a no-op, matching the filter semantics of the list it replaces.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID uint) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, models.NewNotFoundError("Cart", userID)
	}

	if item := findItem(cart, productID); item != nil {
		if err := s.cartRepo.DeleteItem(ctx, item.ID); err != nil {
			return nil, err
		}
	}

	return s.cartRepo.GetByUser(ctx, userID)
}

func findItem(cart *models.Cart, productID uint) *models.CartItem {
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			return &cart.Items[i]
		}
	}
	return nil
}
