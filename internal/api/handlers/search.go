package handlers

import (
	"recipe-api/domain"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// bindSearch reads a search request from the JSON body on POST and from the
// query string otherwise, then fills defaults and validates it.
func bindSearch(c *fiber.Ctx, v *validator.Validate, defaultSort string, req *domain.SearchRequest) error {
	var err error
	if c.Method() == fiber.MethodPost {
		err = c.BodyParser(req)
	} else {
		err = c.QueryParser(req)
	}
	if err != nil {
		return err
	}

	*req = req.WithDefaults(defaultSort)
	return v.Struct(req)
}

func bindRecipeSearch(c *fiber.Ctx, v *validator.Validate, defaultSort string) (domain.RecipeSearchRequest, error) {
	var req domain.RecipeSearchRequest
	if c.Method() == fiber.MethodPost {
		if err := c.BodyParser(&req); err != nil {
			return req, err
		}
	} else {
		if err := c.QueryParser(&req.SearchRequest); err != nil {
			return req, err
		}
		req.CategoryName = c.Query("category_name")
	}

	req.SearchRequest = req.SearchRequest.WithDefaults(defaultSort)
	return req, v.Struct(req.SearchRequest)
}
