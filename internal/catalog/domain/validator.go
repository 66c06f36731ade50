package domain

import (
	validation "github.com/jellydator/validation"

	"github.com/Elena0909/AuctionsProduced/internal/clock"
	apperrors "github.com/Elena0909/AuctionsProduced/internal/errors"
	userDomain "github.com/Elena0909/AuctionsProduced/internal/user/domain"
	appValidation "github.com/Elena0909/AuctionsProduced/internal/validation"
)

// ProductValidator checks product admissibility. Categories and products
// reference each other, so the two validators are built together by
// NewValidators and hold explicit references instead of package-level state.
type ProductValidator struct {
	users      *userDomain.Validator
	categories *CategoryValidator
	clock      clock.Clock
}

// CategoryValidator checks category admissibility, walking the category
// graph and the products filed under each category.
type CategoryValidator struct {
	products *ProductValidator
}

// NewValidators builds the mutually referencing product and category
// validators. The clock drives the not-in-the-past check on inserts.
func NewValidators(users *userDomain.Validator, clk clock.Clock) (*ProductValidator, *CategoryValidator) {
	products := &ProductValidator{users: users, clock: clk}
	categories := &CategoryValidator{products: products}
	products.categories = categories
	return products, categories
}

// ValidateInsert checks a product that is about to be listed: the field
// checks plus a bidding window that does not start in the past, an
// admissible offerer as owner and a fully valid category.
func (v *ProductValidator) ValidateInsert(product *Product) error {
	if product == nil {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "product is required")
	}
	if product.StartTime.Before(v.clock.Now()) {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "bidding window must not start in the past")
	}
	if err := v.checkFields(product); err != nil {
		return err
	}
	if err := v.checkOwner(product.Owner); err != nil {
		return err
	}
	return v.categories.Validate(product.Category)
}

// Validate checks an already-listed product: field checks only. Used for
// updates, where the window may legitimately have started in the past and
// owner and category are known to be persisted.
func (v *ProductValidator) Validate(product *Product) error {
	if product == nil {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "product is required")
	}
	return v.checkFields(product)
}

// ValidateNested checks a product filed inside a category that is itself
// being validated: field checks plus the owner check, but no category check.
// The asymmetry breaks the mutual recursion between category and product
// validation.
func (v *ProductValidator) ValidateNested(product *Product) error {
	if product == nil {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "product is required")
	}
	if err := v.checkFields(product); err != nil {
		return err
	}
	return v.checkOwner(product.Owner)
}

// checkFields runs the field-level rules shared by all three entry points.
func (v *ProductValidator) checkFields(product *Product) error {
	err := validation.ValidateStruct(product,
		validation.Field(&product.Name,
			validation.Required.Error("name is required"),
			validation.Length(2, 100).Error("name must be between 2 and 100 characters"),
			appValidation.NameCharset,
			appValidation.TitleCase,
		),
		validation.Field(&product.Description,
			validation.Required.Error("description is required"),
			validation.Length(10, 200).Error("description must be between 10 and 200 characters"),
		),
		validation.Field(&product.StartTime,
			validation.Required.Error("start time is required"),
		),
		validation.Field(&product.EndTime,
			validation.Required.Error("end time is required"),
		),
		validation.Field(&product.Currency,
			validation.In(CurrencyEUR, CurrencyRON, CurrencyUSD, CurrencyGBP).
				Error("currency must be one of EUR, RON, USD, GBP"),
		),
		validation.Field(&product.Price,
			validation.Min(0.0).Exclusive().Error("price must be positive"),
		),
	)
	if err != nil {
		return appValidation.WrapValidationError(err)
	}

	if !product.StartTime.Before(product.EndTime) {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "start time must be before end time")
	}
	return nil
}

// checkOwner requires an admissible user with the offerer role.
func (v *ProductValidator) checkOwner(owner *userDomain.User) error {
	if err := v.users.Validate(owner); err != nil {
		return err
	}
	if owner.Role != userDomain.RoleOfferer {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "product owner must be an offerer")
	}
	return nil
}

// Validate checks the category and, recursively, every parent and child in
// the graph plus every directly-filed product. The walk keeps a visited set:
// a node reached again through a second path (a diamond) is skipped, while a
// node found on the current path means the graph has a cycle and validation
// fails with ErrCategoryCycle.
func (v *CategoryValidator) Validate(category *Category) error {
	return v.validate(category, &categoryWalk{
		done:   map[*Category]struct{}{},
		onPath: map[*Category]struct{}{},
	})
}

// categoryWalk tracks DFS state over the category graph.
type categoryWalk struct {
	done   map[*Category]struct{}
	onPath map[*Category]struct{}
}

func (v *CategoryValidator) validate(category *Category, walk *categoryWalk) error {
	if category == nil {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "category is required")
	}
	if _, ok := walk.done[category]; ok {
		return nil
	}
	if _, ok := walk.onPath[category]; ok {
		return ErrCategoryCycle
	}
	walk.onPath[category] = struct{}{}
	defer func() {
		delete(walk.onPath, category)
		walk.done[category] = struct{}{}
	}()

	err := validation.ValidateStruct(category,
		validation.Field(&category.Name,
			validation.Required.Error("name is required"),
			validation.Length(2, 100).Error("name must be between 2 and 100 characters"),
			appValidation.NameCharset,
			appValidation.TitleCase,
		),
	)
	if err != nil {
		return appValidation.WrapValidationError(err)
	}

	for _, parent := range category.Parents {
		if err := v.validate(parent, walk); err != nil {
			return err
		}
	}
	for _, child := range category.Children {
		if err := v.validate(child, walk); err != nil {
			return err
		}
	}
	for _, product := range category.Products {
		if err := v.products.ValidateNested(product); err != nil {
			return err
		}
	}
	return nil
}
