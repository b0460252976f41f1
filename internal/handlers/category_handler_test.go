package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "kwarta/internal/errors"
	"kwarta/internal/models"
	"kwarta/internal/pagination"
)

type mockCategoryService struct {
	createCategoryFn         func(userID, name string, categoryType models.CategoryType, icon, color string) (*models.Category, error)
	getUserCategoriesFn      func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	getUserCategoriesByTypeFn func(userID string, categoryType models.CategoryType, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	getCategoryByIDFn        func(userID, categoryID string) (*models.Category, error)
	updateCategoryFn         func(userID, categoryID, name, icon, color string) (*models.Category, error)
	deleteCategoryFn         func(userID, categoryID string) error
}

func (m *mockCategoryService) CreateCategory(userID, name string, categoryType models.CategoryType, icon, color string) (*models.Category, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(userID, name, categoryType, icon, color)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) GetUserCategories(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
	if m.getUserCategoriesFn != nil {
		return m.getUserCategoriesFn(userID, page)
	}
	return &pagination.PageResponse[models.Category]{Data: []models.Category{}}, nil
}

func (m *mockCategoryService) GetUserCategoriesByType(userID string, categoryType models.CategoryType, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
	if m.getUserCategoriesByTypeFn != nil {
		return m.getUserCategoriesByTypeFn(userID, categoryType, page)
	}
	return &pagination.PageResponse[models.Category]{Data: []models.Category{}}, nil
}

func (m *mockCategoryService) GetCategoryByID(userID, categoryID string) (*models.Category, error) {
	if m.getCategoryByIDFn != nil {
		return m.getCategoryByIDFn(userID, categoryID)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) UpdateCategory(userID, categoryID, name, icon, color string) (*models.Category, error) {
	if m.updateCategoryFn != nil {
		return m.updateCategoryFn(userID, categoryID, name, icon, color)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) DeleteCategory(userID, categoryID string) error {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(userID, categoryID)
	}
	return nil
}

func setupCategoryRouter(handler *CategoryHandler) *gin.Engine {
	r := gin.New()
	auth := injectUserID(testUserID)
	r.POST("/categories", auth, handler.CreateCategory)
	r.GET("/categories", auth, handler.GetCategories)
	r.GET("/categories/:id", auth, handler.GetCategory)
	r.PUT("/categories/:id", auth, handler.UpdateCategory)
	r.DELETE("/categories/:id", auth, handler.DeleteCategory)
	return r
}

func TestCategoryHandler_CreateCategory(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		categorySvc := &mockCategoryService{
			createCategoryFn: func(userID, name string, categoryType models.CategoryType, _, _ string) (*models.Category, error) {
				return &models.Category{
					Base:   models.Base{ID: testCategoryID},
					UserID: userID,
					Name:   name,
					Type:   categoryType,
				}, nil
			},
		}
		handler := NewCategoryHandler(categorySvc)
		r := setupCategoryRouter(handler)

		rec := doRequest(r, "POST", "/categories", `{"name":"Food","type":"expense"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["name"] != "Food" {
			t.Errorf("expected name Food, got %v", result["name"])
		}
	})

	t.Run("returns 400 on unknown type", func(t *testing.T) {
		handler := NewCategoryHandler(&mockCategoryService{})
		r := setupCategoryRouter(handler)

		rec := doRequest(r, "POST", "/categories", `{"name":"Food","type":"misc"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on duplicate name", func(t *testing.T) {
		categorySvc := &mockCategoryService{
			createCategoryFn: func(_, _ string, _ models.CategoryType, _, _ string) (*models.Category, error) {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category with this name already exists")
			},
		}
		handler := NewCategoryHandler(categorySvc)
		r := setupCategoryRouter(handler)

		rec := doRequest(r, "POST", "/categories", `{"name":"Food","type":"expense"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestCategoryHandler_GetCategories(t *testing.T) {
	t.Run("filters by type when given", func(t *testing.T) {
		var gotType models.CategoryType
		categorySvc := &mockCategoryService{
			getUserCategoriesByTypeFn: func(_ string, categoryType models.CategoryType, _ pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
				gotType = categoryType
				return &pagination.PageResponse[models.Category]{Data: []models.Category{}}, nil
			},
		}
		handler := NewCategoryHandler(categorySvc)
		r := setupCategoryRouter(handler)

		rec := doRequest(r, "GET", "/categories?type=income", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotType != models.CategoryTypeIncome {
			t.Errorf("expected income type filter, got %v", gotType)
		}
	})

	t.Run("returns 400 on unknown type filter", func(t *testing.T) {
		handler := NewCategoryHandler(&mockCategoryService{})
		r := setupCategoryRouter(handler)

		rec := doRequest(r, "GET", "/categories?type=misc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestCategoryHandler_DeleteCategory(t *testing.T) {
	t.Run("returns 204 on success", func(t *testing.T) {
		handler := NewCategoryHandler(&mockCategoryService{})
		r := setupCategoryRouter(handler)

		rec := doRequest(r, "DELETE", "/categories/"+testCategoryID, "")

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})

	t.Run("returns 409 while referenced", func(t *testing.T) {
		categorySvc := &mockCategoryService{
			deleteCategoryFn: func(_, _ string) error {
				return apperrors.ErrCategoryInUse
			},
		}
		handler := NewCategoryHandler(categorySvc)
		r := setupCategoryRouter(handler)

		rec := doRequest(r, "DELETE", "/categories/"+testCategoryID, "")

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_IN_USE")
	})
}
